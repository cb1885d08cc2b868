package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical textual form of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// Role is the authorization level of a user.
type Role string

const (
	// RoleUser is the default role: a user can only see and edit their own brands.
	RoleUser Role = "user"
	// RoleSuperAdmin grants access to the super-admin console.
	RoleSuperAdmin Role = "superadmin"
)

// User is an account known to the application. Identity is owned by the
// external auth provider; the row mirrors the token claims on each sync.
type User struct {
	// ID is the subject of the auth provider token.
	ID UserID `json:"id"`
	// Email is the primary email address, used for newsletters.
	Email string `json:"email"`
	// Name is the display name.
	Name string `json:"name"`
	// Role is the authorization level stored for the user.
	Role Role `json:"role"`

	CreatedAt  time.Time `json:"createdAt"`
	LastSeenAt time.Time `json:"lastSeenAt"`
}

// IsSuperAdmin reports whether the user may access the super-admin console.
func (u User) IsSuperAdmin() bool { return u.Role == RoleSuperAdmin }
