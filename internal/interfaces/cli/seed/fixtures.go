package seed

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/prism-finance/prism/internal/shared/utils"
)

// Fixtures describes tenants to provision from a YAML file.
type Fixtures struct {
	Companies []CompanyFixture `yaml:"companies" validate:"dive"`
}

type CompanyFixture struct {
	Name      string            `yaml:"name" validate:"required,max=200"`
	SIRET     string            `yaml:"siret" validate:"required,max=20"`
	Address   string            `yaml:"address"`
	Admins    []UserFixture     `yaml:"admins" validate:"dive"`
	Suppliers []SupplierFixture `yaml:"suppliers" validate:"dive"`
}

type SupplierFixture struct {
	Name              string         `yaml:"name" validate:"required,max=200"`
	SIRET             string         `yaml:"siret" validate:"required,max=20"`
	VATNumber         string         `yaml:"vat_number"`
	Profession        string         `yaml:"profession"`
	Address           string         `yaml:"address"`
	PostalCode        string         `yaml:"postal_code"`
	City              string         `yaml:"city"`
	Country           string         `yaml:"country"`
	IBAN              string         `yaml:"iban"`
	BIC               string         `yaml:"bic"`
	Emails            []string       `yaml:"emails" validate:"omitempty,dive,email"`
	Phone             string         `yaml:"phone"`
	ContractVariables map[string]any `yaml:"contract_variables"`
	Users             []UserFixture  `yaml:"users" validate:"dive"`
}

type UserFixture struct {
	Email    string `yaml:"email" validate:"required,email"`
	Password string `yaml:"password" validate:"required,min=8,max=72"`
	Name     string `yaml:"name" validate:"required"`
	Surname  string `yaml:"surname" validate:"required"`
}

// LoadFixtures decodes and validates a fixture document.
func LoadFixtures(r io.Reader) (*Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	if err := utils.ValidateStruct(&f); err != nil {
		return nil, err
	}
	return &f, nil
}
