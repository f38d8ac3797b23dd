package supplier

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

func validDetails() Details {
	return Details{
		Name:              "Acme",
		SIRET:             "12345678900011",
		IBAN:              "FR76 3000 6000 0112 3456 7890 189",
		Emails:            []string{"billing@acme.test", "ops@acme.test"},
		ContractVariables: map[string]any{"PaymentTerms": "30 days"},
	}
}

func TestNewSupplier(t *testing.T) {
	s, err := NewSupplier("cmp_1", validDetails(), now)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(s.ID(), "sup_"))
	assert.Equal(t, StatusActive, s.Status())
	assert.Equal(t, "FR7630006000011234567890189", s.IBAN())
	assert.Equal(t, "billing@acme.test", s.PrimaryEmail())
	assert.Equal(t, "30 days", s.ContractVariables()["PaymentTerms"])
}

func TestNewSupplier_Validation(t *testing.T) {
	d := validDetails()
	d.Name = ""
	_, err := NewSupplier("cmp_1", d, now)
	assert.Error(t, err)

	d = validDetails()
	d.Emails = []string{"not-an-email"}
	_, err = NewSupplier("cmp_1", d, now)
	assert.Error(t, err)

	_, err = NewSupplier("", validDetails(), now)
	assert.Error(t, err)
}

func TestPrimaryEmail_Empty(t *testing.T) {
	d := validDetails()
	d.Emails = nil
	s, err := NewSupplier("cmp_1", d, now)
	require.NoError(t, err)
	assert.Equal(t, "", s.PrimaryEmail())
}

func TestUpdate_ReplacesContractVariables(t *testing.T) {
	s, err := NewSupplier("cmp_1", validDetails(), now)
	require.NoError(t, err)

	d := s.Details()
	d.ContractVariables = map[string]any{"Ville": "Lyon"}
	require.NoError(t, s.Update(d, now.Add(time.Hour)))

	vars := s.ContractVariables()
	assert.Equal(t, map[string]any{"Ville": "Lyon"}, vars)
	assert.Equal(t, now.Add(time.Hour), s.UpdatedAt())
}

func TestContractVariablesReturnsCopy(t *testing.T) {
	s, err := NewSupplier("cmp_1", validDetails(), now)
	require.NoError(t, err)

	vars := s.ContractVariables()
	vars["PaymentTerms"] = "changed"
	assert.Equal(t, "30 days", s.ContractVariables()["PaymentTerms"])
}

func TestSetStatus(t *testing.T) {
	s, err := NewSupplier("cmp_1", validDetails(), now)
	require.NoError(t, err)

	require.NoError(t, s.SetStatus(StatusInactive, now))
	assert.Equal(t, StatusInactive, s.Status())
	assert.Error(t, s.SetStatus("archived", now))
}
