package domain

// Role is the access tag carried by a user account.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// AllRoles contains all valid roles
var AllRoles = []Role{RoleAdmin, RoleStandard}

// IsValid checks if a role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStandard:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}
