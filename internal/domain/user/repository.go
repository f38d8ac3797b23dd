package user

import (
	"context"

	"github.com/prism-finance/prism/internal/shared/authorization"
)

// Repository defines the interface for user data operations
type Repository interface {
	Create(ctx context.Context, user *User) error

	// GetByID returns nil, nil when the user does not exist.
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail returns nil, nil when no user has this email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)

	// FindActive returns active users matching the filter, unpaginated.
	FindActive(ctx context.Context, filter ListFilter) ([]*User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ListFilter represents filtering and pagination options for user queries
type ListFilter struct {
	CompanyID  string
	SupplierID string
	Role       *authorization.UserRole
	Page       int
	PageSize   int
}
