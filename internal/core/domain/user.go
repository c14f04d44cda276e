package domain

import "time"

// UserRole defines the two roles a user account can hold. The role is fixed at
// registration and never changes afterwards.
type UserRole string

const (
	RoleClient   UserRole = "CLIENT"
	RoleEmployee UserRole = "EMPLOYEE"
)

// IsValid reports whether the role is one of the two known roles.
func (r UserRole) IsValid() bool {
	return r == RoleClient || r == RoleEmployee
}

// Auth provider identifiers for User.AuthProvider.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User represents an account that can authenticate against the system.
// A user is linked 1:1 to either a Client or an Employee profile depending on Role.
type User struct {
	UserID                 string     `json:"userID"`
	Email                  string     `json:"email"`
	PasswordHash           *string    `json:"-"` // nil for externally-authenticated users
	Role                   UserRole   `json:"role"`
	AuthProvider           string     `json:"authProvider"`
	ProviderUserID         *string    `json:"-"`
	RefreshTokenHash       *string    `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
}
