package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/domain/user"
	"github.com/prism-finance/prism/internal/shared/authorization"
)

type mockUserRepository struct {
	users      map[string]*user.User
	GetErr     error
	lastFilter user.ListFilter
}

func newMockUserRepository(seed ...*user.User) *mockUserRepository {
	r := &mockUserRepository{users: map[string]*user.User{}}
	for _, u := range seed {
		r.users[u.ID()] = u
	}
	return r
}

func (r *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	r.users[u.ID()] = u
	return nil
}

func (r *mockUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	return r.users[id], nil
}

func (r *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	r.lastFilter = filter
	var out []*user.User
	for _, u := range r.users {
		if filter.CompanyID != "" && u.CompanyID() != filter.CompanyID {
			continue
		}
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (r *mockUserRepository) FindActive(ctx context.Context, filter user.ListFilter) ([]*user.User, error) {
	out, _, err := r.List(ctx, filter)
	return out, err
}

func (r *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := r.GetByEmail(ctx, email)
	return u != nil, err
}

// plainHasher avoids bcrypt cost in tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "h:" + password, nil
}

func (plainHasher) Verify(password, hash string) error {
	if !strings.HasPrefix(hash, "h:") || hash[2:] != password {
		return errors.New("mismatch")
	}
	return nil
}

type mockJWTService struct {
	GenerateErr error
	issuedFor   string
}

func (m *mockJWTService) Generate(userID string, role authorization.UserRole) (string, int64, error) {
	if m.GenerateErr != nil {
		return "", 0, m.GenerateErr
	}
	m.issuedFor = userID
	return "token-" + userID, 3600, nil
}

type mockSupplierReader map[string]*supplier.Supplier

func (m mockSupplierReader) GetByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	return m[id], nil
}
