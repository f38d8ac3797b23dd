package template

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func newTemplate(t *testing.T, validity *int) *Template {
	t.Helper()
	tpl, err := NewTemplate(NewTemplateParams{
		CompanyID:          "cmp_1",
		Name:               " Services ",
		FileName:           "services.md",
		FilePath:           "templates/cmp_1/a.md",
		Variables:          []string{"IBAN", "SupplierName", "IBAN"},
		ValidityPeriodDays: validity,
		CreatedBy:          "usr_1",
		Now:                now,
	})
	require.NoError(t, err)
	return tpl
}

func TestNewTemplate(t *testing.T) {
	tpl := newTemplate(t, nil)

	assert.True(t, strings.HasPrefix(tpl.ID(), "tpl_"))
	assert.Equal(t, "Services", tpl.Name())
	assert.Equal(t, []string{"IBAN", "SupplierName"}, tpl.Variables())
	assert.Nil(t, tpl.ExpiryFrom(now))
}

func TestNewTemplate_Validation(t *testing.T) {
	_, err := NewTemplate(NewTemplateParams{CompanyID: "cmp_1", Name: "", FilePath: "x"})
	assert.Error(t, err)

	_, err = NewTemplate(NewTemplateParams{CompanyID: "", Name: "n", FilePath: "x"})
	assert.Error(t, err)

	_, err = NewTemplate(NewTemplateParams{CompanyID: "cmp_1", Name: "n", FilePath: "x", ValidityPeriodDays: intPtr(0)})
	assert.ErrorIs(t, err, ErrInvalidValidity)
}

func TestReplaceFile_ReplacesVariableSet(t *testing.T) {
	tpl := newTemplate(t, nil)

	require.NoError(t, tpl.ReplaceFile("v2.md", "templates/cmp_1/b.md", []string{"Ville"}, now.Add(time.Hour)))

	assert.Equal(t, []string{"Ville"}, tpl.Variables())
	assert.Equal(t, "templates/cmp_1/b.md", tpl.FilePath())
	assert.Equal(t, "v2.md", tpl.FileName())

	require.NoError(t, tpl.ReplaceFile("v3.md", "templates/cmp_1/c.md", nil, now))
	assert.Empty(t, tpl.Variables())
}

func TestUpdateMetadata(t *testing.T) {
	tpl := newTemplate(t, intPtr(30))

	desc := "Updated"
	require.NoError(t, tpl.UpdateMetadata(nil, &desc, intPtr(90), false, now))
	assert.Equal(t, "Updated", tpl.Description())
	assert.Equal(t, 90, *tpl.ValidityPeriodDays())

	require.NoError(t, tpl.UpdateMetadata(nil, nil, nil, true, now))
	assert.Nil(t, tpl.ValidityPeriodDays())

	blank := " "
	assert.Error(t, tpl.UpdateMetadata(&blank, nil, nil, false, now))
	assert.ErrorIs(t, tpl.UpdateMetadata(nil, nil, intPtr(-3), false, now), ErrInvalidValidity)
}

func TestExpiryFrom(t *testing.T) {
	tpl := newTemplate(t, intPtr(30))

	expiry := tpl.ExpiryFrom(now)
	require.NotNil(t, expiry)
	assert.Equal(t, now.AddDate(0, 0, 30), *expiry)
}

func TestVariablesReturnsCopy(t *testing.T) {
	tpl := newTemplate(t, nil)
	vars := tpl.Variables()
	vars[0] = "mutated"
	assert.Equal(t, "IBAN", tpl.Variables()[0])
}
