package company

import "context"

type Repository interface {
	Create(ctx context.Context, company *Company) error
	// GetByID returns nil, nil when the company does not exist.
	GetByID(ctx context.Context, id string) (*Company, error)
	List(ctx context.Context, page, pageSize int) ([]*Company, int64, error)
	ExistsBySIRET(ctx context.Context, siret string) (bool, error)
}
