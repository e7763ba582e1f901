package domain

// Role identifies which section of the portal an identity may access.
type Role string

const (
	RoleFarmer     Role = "farmer"
	RoleGovernment Role = "government"
	RoleBusiness   Role = "business"
)

// ParseRole converts a raw string into a Role, rejecting anything outside
// the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleFarmer, RoleGovernment, RoleBusiness:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// DashboardPath returns the role's home path, e.g. "/farmer/dashboard".
func (r Role) DashboardPath() string {
	return "/" + string(r) + "/dashboard"
}
