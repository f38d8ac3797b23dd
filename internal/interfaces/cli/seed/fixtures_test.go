package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFixtures = `
companies:
  - name: Acme
    siret: "12345678900011"
    admins:
      - email: admin@acme.test
        password: password123
        name: Ada
        surname: Admin
    suppliers:
      - name: Plumbing SARL
        siret: "98765432100022"
        iban: FR7630006000011234567890189
        emails: [billing@plumbing.test]
        contract_variables:
          DailyRate: 450
        users:
          - email: sam@plumbing.test
            password: password123
            name: Sam
            surname: Supplier
`

func TestLoadFixtures(t *testing.T) {
	f, err := LoadFixtures(strings.NewReader(validFixtures))
	require.NoError(t, err)

	require.Len(t, f.Companies, 1)
	c := f.Companies[0]
	assert.Equal(t, "Acme", c.Name)
	require.Len(t, c.Admins, 1)
	require.Len(t, c.Suppliers, 1)
	assert.Equal(t, 450, c.Suppliers[0].ContractVariables["DailyRate"])
	assert.Equal(t, "sam@plumbing.test", c.Suppliers[0].Users[0].Email)
}

func TestLoadFixtures_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "companies:\n  - name: Acme\n    siret: \"1\"\n    color: red\n"},
		{"missing siret", "companies:\n  - name: Acme\n"},
		{"bad admin email", "companies:\n  - name: Acme\n    siret: \"1\"\n    admins:\n      - {email: nope, password: password123, name: A, surname: B}\n"},
		{"short password", "companies:\n  - name: Acme\n    siret: \"1\"\n    admins:\n      - {email: a@b.test, password: short, name: A, surname: B}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFixtures(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}
