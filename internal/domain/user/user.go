package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/id"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User is an account. Admins belong to a company; supplier users belong to
// a company and a supplier; super admins belong to neither.
type User struct {
	id           string
	email        string
	passwordHash string
	name         string
	surname      string
	role         authorization.UserRole
	companyID    string
	supplierID   string
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

type NewUserParams struct {
	Email      string
	Password   string
	Name       string
	Surname    string
	Role       authorization.UserRole
	CompanyID  string
	SupplierID string
	Now        time.Time
}

func NewUser(p NewUserParams, hasher PasswordHasher) (*User, error) {
	email, err := normalizeEmail(p.Email)
	if err != nil {
		return nil, err
	}
	if err := validateMembership(p.Role, p.CompanyID, p.SupplierID); err != nil {
		return nil, err
	}
	if len(p.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := hasher.Hash(p.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := id.NewUserID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	companyID, supplierID := p.CompanyID, p.SupplierID
	if p.Role == authorization.RoleSuperAdmin {
		companyID, supplierID = "", ""
	}
	if p.Role == authorization.RoleAdmin {
		supplierID = ""
	}

	return &User{
		id:           userID,
		email:        email,
		passwordHash: hash,
		name:         strings.TrimSpace(p.Name),
		surname:      strings.TrimSpace(p.Surname),
		role:         p.Role,
		companyID:    companyID,
		supplierID:   supplierID,
		isActive:     true,
		createdAt:    p.Now.UTC(),
		updatedAt:    p.Now.UTC(),
	}, nil
}

type ReconstructParams struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Surname      string
	Role         authorization.UserRole
	CompanyID    string
	SupplierID   string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ReconstructUser(p ReconstructParams) (*User, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("user ID cannot be empty")
	}
	if !p.Role.IsValid() {
		return nil, fmt.Errorf("invalid user role: %s", p.Role)
	}
	return &User{
		id:           p.ID,
		email:        p.Email,
		passwordHash: p.PasswordHash,
		name:         p.Name,
		surname:      p.Surname,
		role:         p.Role,
		companyID:    p.CompanyID,
		supplierID:   p.SupplierID,
		isActive:     p.IsActive,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}, nil
}

func (u *User) ID() string                   { return u.id }
func (u *User) Email() string                { return u.email }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Name() string                 { return u.name }
func (u *User) Surname() string              { return u.surname }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) CompanyID() string            { return u.companyID }
func (u *User) SupplierID() string           { return u.supplierID }
func (u *User) IsActive() bool               { return u.isActive }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

func (u *User) FullName() string {
	return strings.TrimSpace(u.name + " " + u.surname)
}

func (u *User) VerifyPassword(plain string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("user has no password set")
	}
	if err := hasher.Verify(plain, u.passwordHash); err != nil {
		return fmt.Errorf("invalid password")
	}
	return nil
}

// Identity projects the user onto the authorization model.
func (u *User) Identity() *authorization.Identity {
	return &authorization.Identity{
		UserID:     u.id,
		Role:       u.role,
		CompanyID:  u.companyID,
		SupplierID: u.supplierID,
	}
}

func (u *User) Deactivate(now time.Time) {
	u.isActive = false
	u.updatedAt = now.UTC()
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid email address")
	}
	return strings.ToLower(addr.Address), nil
}

func validateMembership(role authorization.UserRole, companyID, supplierID string) error {
	switch role {
	case authorization.RoleSuperAdmin:
		return nil
	case authorization.RoleAdmin:
		if companyID == "" {
			return fmt.Errorf("admin users must belong to a company")
		}
		return nil
	case authorization.RoleSupplier:
		if companyID == "" || supplierID == "" {
			return fmt.Errorf("supplier users must belong to a company and a supplier")
		}
		return nil
	default:
		return fmt.Errorf("invalid user role: %s", role)
	}
}
