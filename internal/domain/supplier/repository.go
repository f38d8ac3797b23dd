package supplier

import "context"

type Repository interface {
	Create(ctx context.Context, supplier *Supplier) error
	// GetByID returns nil, nil when the supplier does not exist.
	GetByID(ctx context.Context, id string) (*Supplier, error)
	Update(ctx context.Context, supplier *Supplier) error
	List(ctx context.Context, filter ListFilter) ([]*Supplier, int64, error)
	ExistsBySIRET(ctx context.Context, companyID, siret string) (bool, error)
}

type ListFilter struct {
	CompanyID  string
	SupplierID string
	Status     *Status
	Search     string
	Page       int
	PageSize   int
}
