package generalconditions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneralConditions(t *testing.T) {
	gc, err := NewGeneralConditions(NewGeneralConditionsParams{
		CompanyID: "cmp_1",
		Version:   " 2026.1 ",
		Content:   "# Terms",
		IsActive:  true,
		CreatedBy: "usr_admin",
		Now:       time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026.1", gc.Version())
	assert.True(t, gc.IsActive())

	_, err = NewGeneralConditions(NewGeneralConditionsParams{CompanyID: "cmp_1", Version: "1", Content: "  "})
	assert.ErrorIs(t, err, ErrContentRequired)
	_, err = NewGeneralConditions(NewGeneralConditionsParams{CompanyID: "cmp_1", Content: "x"})
	assert.ErrorIs(t, err, ErrVersionRequired)
}

func TestGeneralConditions_Update(t *testing.T) {
	gc, err := NewGeneralConditions(NewGeneralConditionsParams{CompanyID: "cmp_1", Version: "1", Content: "a", Now: time.Now()})
	require.NoError(t, err)

	on := true
	activated, err := gc.Update(UpdateParams{IsActive: &on}, time.Now())
	require.NoError(t, err)
	assert.True(t, activated)

	activated, err = gc.Update(UpdateParams{IsActive: &on}, time.Now())
	require.NoError(t, err)
	assert.False(t, activated)

	empty := ""
	_, err = gc.Update(UpdateParams{Version: &empty}, time.Now())
	assert.ErrorIs(t, err, ErrVersionRequired)
	assert.Equal(t, "1", gc.Version())
}

func TestNewAcceptance(t *testing.T) {
	a, err := NewAcceptance(NewAcceptanceParams{ConditionsID: "gcd_1", SupplierID: "sup_1", CompanyID: "cmp_1", AcceptedBy: "usr_s", IPAddress: "10.0.0.1", Now: time.Now()})
	require.NoError(t, err)
	assert.Contains(t, a.ID(), "gca_")
	assert.Equal(t, "10.0.0.1", a.IPAddress())

	_, err = NewAcceptance(NewAcceptanceParams{SupplierID: "sup_1"})
	assert.Error(t, err)
}
