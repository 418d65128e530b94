// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular account.
	RoleUser Role = "ROLE_USER"
	// RoleAdmin indicates an administrator who may bypass ownership checks.
	RoleAdmin Role = "ROLE_ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a claim value to a Role, falling back to RoleUser for unknown input.
func RoleFromString(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}

	return RoleUser
}
