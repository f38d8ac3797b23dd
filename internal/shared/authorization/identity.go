package authorization

import "context"

// Identity is the authenticated caller as loaded from the user record.
// CompanyID is empty for super admins; SupplierID is set only for supplier users.
type Identity struct {
	UserID     string
	Role       UserRole
	CompanyID  string
	SupplierID string
}

func (i *Identity) IsSuperAdmin() bool {
	return i != nil && i.Role == RoleSuperAdmin
}

// IsAdminFor reports whether the caller administers companyID.
func (i *Identity) IsAdminFor(companyID string) bool {
	if i == nil {
		return false
	}
	if i.Role == RoleSuperAdmin {
		return true
	}
	return i.Role == RoleAdmin && i.CompanyID != "" && i.CompanyID == companyID
}

// CanAccessCompany reports whether the caller may read data scoped to companyID.
func (i *Identity) CanAccessCompany(companyID string) bool {
	if i == nil {
		return false
	}
	if i.Role == RoleSuperAdmin {
		return true
	}
	return i.CompanyID != "" && i.CompanyID == companyID
}

// CanAccessSupplier reports whether the caller may act on a supplier of companyID.
func (i *Identity) CanAccessSupplier(supplierID, companyID string) bool {
	if i == nil {
		return false
	}
	switch i.Role {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		return i.CompanyID != "" && i.CompanyID == companyID
	case RoleSupplier:
		return i.SupplierID != "" && i.SupplierID == supplierID
	}
	return false
}

// ScopeCompanyID returns the company filter list queries must apply.
// Super admins get "" meaning all companies.
func (i *Identity) ScopeCompanyID() string {
	if i == nil || i.Role == RoleSuperAdmin {
		return ""
	}
	return i.CompanyID
}

type identityKey struct{}

func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// FromContext returns the identity stored by the auth middleware, or nil.
func FromContext(ctx context.Context) *Identity {
	identity, _ := ctx.Value(identityKey{}).(*Identity)
	return identity
}
