package authorization

type UserRole string

const (
	RoleSupplier   UserRole = "supplier"
	RoleAdmin      UserRole = "admin"
	RoleSuperAdmin UserRole = "super_admin"
)

func (r UserRole) String() string {
	return string(r)
}

// IsAdmin is true for company admins and super admins.
func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleSupplier, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// ParseUserRole returns the role and whether it was recognised.
func ParseUserRole(s string) (UserRole, bool) {
	role := UserRole(s)
	return role, role.IsValid()
}
