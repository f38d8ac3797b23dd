package generalconditions

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prism-finance/prism/internal/shared/id"
)

var (
	ErrVersionRequired = errors.New("general conditions version is required")
	ErrContentRequired = errors.New("general conditions content is required")
)

// GeneralConditions is one version of the terms a company asks its
// suppliers to accept. At most one version per company is active.
type GeneralConditions struct {
	id        string
	companyID string
	version   string
	content   string
	isActive  bool
	createdBy string
	createdAt time.Time
	updatedAt time.Time
}

type NewGeneralConditionsParams struct {
	CompanyID string
	Version   string
	Content   string
	IsActive  bool
	CreatedBy string
	Now       time.Time
}

func NewGeneralConditions(p NewGeneralConditionsParams) (*GeneralConditions, error) {
	if p.CompanyID == "" {
		return nil, fmt.Errorf("company is required")
	}
	version := strings.TrimSpace(p.Version)
	if version == "" {
		return nil, ErrVersionRequired
	}
	if strings.TrimSpace(p.Content) == "" {
		return nil, ErrContentRequired
	}

	gcID, err := id.NewConditionsID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate general conditions ID: %w", err)
	}

	return &GeneralConditions{
		id:        gcID,
		companyID: p.CompanyID,
		version:   version,
		content:   p.Content,
		isActive:  p.IsActive,
		createdBy: p.CreatedBy,
		createdAt: p.Now.UTC(),
		updatedAt: p.Now.UTC(),
	}, nil
}

type ReconstructParams struct {
	ID        string
	CompanyID string
	Version   string
	Content   string
	IsActive  bool
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ReconstructGeneralConditions(p ReconstructParams) (*GeneralConditions, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("general conditions ID cannot be empty")
	}
	return &GeneralConditions{
		id:        p.ID,
		companyID: p.CompanyID,
		version:   p.Version,
		content:   p.Content,
		isActive:  p.IsActive,
		createdBy: p.CreatedBy,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}, nil
}

func (g *GeneralConditions) ID() string           { return g.id }
func (g *GeneralConditions) CompanyID() string    { return g.companyID }
func (g *GeneralConditions) Version() string      { return g.version }
func (g *GeneralConditions) Content() string      { return g.content }
func (g *GeneralConditions) IsActive() bool       { return g.isActive }
func (g *GeneralConditions) CreatedBy() string    { return g.createdBy }
func (g *GeneralConditions) CreatedAt() time.Time { return g.createdAt }
func (g *GeneralConditions) UpdatedAt() time.Time { return g.updatedAt }

type UpdateParams struct {
	Version  *string
	Content  *string
	IsActive *bool
}

// Update applies the non-nil fields and reports whether the version went
// from inactive to active.
func (g *GeneralConditions) Update(p UpdateParams, now time.Time) (activated bool, err error) {
	if p.Version != nil {
		version := strings.TrimSpace(*p.Version)
		if version == "" {
			return false, ErrVersionRequired
		}
		g.version = version
	}
	if p.Content != nil {
		if strings.TrimSpace(*p.Content) == "" {
			return false, ErrContentRequired
		}
		g.content = *p.Content
	}
	if p.IsActive != nil {
		activated = *p.IsActive && !g.isActive
		g.isActive = *p.IsActive
	}
	g.updatedAt = now.UTC()
	return activated, nil
}

// Acceptance records that a supplier agreed to one version.
type Acceptance struct {
	id           string
	conditionsID string
	supplierID   string
	companyID    string
	acceptedBy   string
	ipAddress    string
	acceptedAt   time.Time
}

type NewAcceptanceParams struct {
	ConditionsID string
	SupplierID   string
	CompanyID    string
	AcceptedBy   string
	IPAddress    string
	Now          time.Time
}

func NewAcceptance(p NewAcceptanceParams) (*Acceptance, error) {
	if p.ConditionsID == "" || p.SupplierID == "" {
		return nil, fmt.Errorf("conditions and supplier are required")
	}
	accID, err := id.NewAcceptanceID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate acceptance ID: %w", err)
	}
	return &Acceptance{
		id:           accID,
		conditionsID: p.ConditionsID,
		supplierID:   p.SupplierID,
		companyID:    p.CompanyID,
		acceptedBy:   p.AcceptedBy,
		ipAddress:    p.IPAddress,
		acceptedAt:   p.Now.UTC(),
	}, nil
}

type ReconstructAcceptanceParams struct {
	ID           string
	ConditionsID string
	SupplierID   string
	CompanyID    string
	AcceptedBy   string
	IPAddress    string
	AcceptedAt   time.Time
}

func ReconstructAcceptance(p ReconstructAcceptanceParams) *Acceptance {
	return &Acceptance{
		id:           p.ID,
		conditionsID: p.ConditionsID,
		supplierID:   p.SupplierID,
		companyID:    p.CompanyID,
		acceptedBy:   p.AcceptedBy,
		ipAddress:    p.IPAddress,
		acceptedAt:   p.AcceptedAt,
	}
}

func (a *Acceptance) ID() string            { return a.id }
func (a *Acceptance) ConditionsID() string  { return a.conditionsID }
func (a *Acceptance) SupplierID() string    { return a.supplierID }
func (a *Acceptance) CompanyID() string     { return a.companyID }
func (a *Acceptance) AcceptedBy() string    { return a.acceptedBy }
func (a *Acceptance) IPAddress() string     { return a.ipAddress }
func (a *Acceptance) AcceptedAt() time.Time { return a.acceptedAt }
