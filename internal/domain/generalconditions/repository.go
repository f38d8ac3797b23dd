package generalconditions

import "context"

type Repository interface {
	Create(ctx context.Context, gc *GeneralConditions) error
	// GetByID returns nil, nil when the version does not exist.
	GetByID(ctx context.Context, id string) (*GeneralConditions, error)
	Update(ctx context.Context, gc *GeneralConditions) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]*GeneralConditions, error)
	// GetActive returns nil, nil when the company has no active version.
	GetActive(ctx context.Context, companyID string) (*GeneralConditions, error)
	// DeactivateOthers clears is_active on every version of companyID
	// except keepID.
	DeactivateOthers(ctx context.Context, companyID, keepID string) error
}

type ListFilter struct {
	CompanyID  string
	ActiveOnly bool
}

type AcceptanceRepository interface {
	Create(ctx context.Context, a *Acceptance) error
	// Find returns nil, nil when the supplier has not accepted conditionsID.
	Find(ctx context.Context, supplierID, conditionsID string) (*Acceptance, error)
	ListByConditions(ctx context.Context, conditionsID string) ([]*Acceptance, error)
	CountByConditions(ctx context.Context, conditionsID string) (int64, error)
}
