package invoice

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	// GetByID returns nil, nil when the invoice does not exist.
	GetByID(ctx context.Context, id string) (*Invoice, error)
	Update(ctx context.Context, inv *Invoice) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]*Invoice, int64, error)
	ExistsByNumber(ctx context.Context, supplierID, number string) (bool, error)
}

type ListFilter struct {
	CompanyID       string
	SupplierID      string
	PurchaseOrderID string
	Status          *Status
	Page            int
	PageSize        int
}
