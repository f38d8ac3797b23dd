package contract

import (
	"context"
	"time"

	vo "github.com/prism-finance/prism/internal/domain/contract/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, contract *Contract) error
	// GetByID returns nil, nil when the contract does not exist.
	GetByID(ctx context.Context, id string) (*Contract, error)
	List(ctx context.Context, filter ListFilter) ([]*Contract, int64, error)
	CountByTemplateID(ctx context.Context, templateID string) (int64, error)

	// ApplyTransition writes status, signatures and updated_at only when the
	// stored status still equals from. A lost race yields ErrConcurrentModification.
	ApplyTransition(ctx context.Context, contract *Contract, from vo.ContractStatus) error

	// ListExpirable returns non-terminal contracts whose expiry date is before now.
	ListExpirable(ctx context.Context, now time.Time, limit int) ([]*Contract, error)
}

type ListFilter struct {
	CompanyID  string
	SupplierID string
	TemplateID string
	Status     *vo.ContractStatus
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
