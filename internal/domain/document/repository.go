package document

import "context"

type Repository interface {
	Create(ctx context.Context, doc *Document) error
	// GetByID returns nil, nil when the document does not exist.
	GetByID(ctx context.Context, id string) (*Document, error)
	Update(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]*Document, int64, error)
}

type ListFilter struct {
	SupplierID string
	Category   string
	Status     *Status
	Page       int
	PageSize   int
}
