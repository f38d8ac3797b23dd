package purchaseorder

import "context"

type Repository interface {
	Create(ctx context.Context, po *PurchaseOrder) error
	// GetByID returns nil, nil when the purchase order does not exist.
	GetByID(ctx context.Context, id string) (*PurchaseOrder, error)
	// Update saves the editable fields of a draft.
	Update(ctx context.Context, po *PurchaseOrder) error
	// ApplyTransition writes status and its timestamps only when the stored
	// status still equals from. A lost race yields ErrConcurrentModification.
	ApplyTransition(ctx context.Context, po *PurchaseOrder, from Status) error
	List(ctx context.Context, filter ListFilter) ([]*PurchaseOrder, int64, error)
	ExistsByNumber(ctx context.Context, companyID, number string) (bool, error)
}

type ListFilter struct {
	CompanyID  string
	SupplierID string
	Status     *Status
	// HideDrafts drops orders the company has not sent yet.
	HideDrafts bool
	Page       int
	PageSize   int
}
