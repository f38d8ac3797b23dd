package template

import "context"

type Repository interface {
	Create(ctx context.Context, template *Template) error
	// GetByID returns nil, nil when the template does not exist or was deleted.
	GetByID(ctx context.Context, id string) (*Template, error)
	Update(ctx context.Context, template *Template) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]*Template, int64, error)
}

type ListFilter struct {
	CompanyID string
	Search    string
	Page      int
	PageSize  int
}
