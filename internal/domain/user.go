package domain

import "errors"

// User is the caller identity supplied by the external auth provider.
// The core trusts it; it performs no credential handling of its own.
type User struct {
	ID   string
	Name string
	Role Role
}

// Role is a user's access level.
type Role string

const (
	// RoleAdmin can do everything, including deletes, settings and
	// reconciliations.
	RoleAdmin Role = "admin"

	// RoleEmployee can record cash events and expenses and read views.
	RoleEmployee Role = "employee"
)

// IsValid checks if the role is known.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// CanDelete checks if the role can delete entries and expenses.
func (r Role) CanDelete() bool {
	return r == RoleAdmin
}

// CanReconcile checks if the role can record reconciliations.
func (r Role) CanReconcile() bool {
	return r == RoleAdmin
}

// CanManageSettings checks if the role can save settings.
func (r Role) CanManageSettings() bool {
	return r == RoleAdmin
}

// Authentication errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInsufficientRole = errors.New("insufficient role for this operation")
)
