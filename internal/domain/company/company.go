package company

import (
	"fmt"
	"strings"
	"time"

	"github.com/prism-finance/prism/internal/shared/id"
)

// Company is a tenant. Every tenant-scoped record carries its ID.
type Company struct {
	id        string
	name      string
	siret     string
	address   string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewCompany(name, siret, address string, now time.Time) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("company name is required")
	}
	siret = strings.TrimSpace(siret)
	if siret == "" {
		return nil, fmt.Errorf("company SIRET is required")
	}

	companyID, err := id.NewCompanyID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate company ID: %w", err)
	}

	return &Company{
		id:        companyID,
		name:      name,
		siret:     siret,
		address:   address,
		isActive:  true,
		createdAt: now.UTC(),
		updatedAt: now.UTC(),
	}, nil
}

func ReconstructCompany(id, name, siret, address string, isActive bool, createdAt, updatedAt time.Time) (*Company, error) {
	if id == "" {
		return nil, fmt.Errorf("company ID cannot be empty")
	}
	return &Company{
		id:        id,
		name:      name,
		siret:     siret,
		address:   address,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Company) ID() string           { return c.id }
func (c *Company) Name() string         { return c.name }
func (c *Company) SIRET() string        { return c.siret }
func (c *Company) Address() string      { return c.address }
func (c *Company) IsActive() bool       { return c.isActive }
func (c *Company) CreatedAt() time.Time { return c.createdAt }
func (c *Company) UpdatedAt() time.Time { return c.updatedAt }
