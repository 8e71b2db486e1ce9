package models

import "time"

// User represents a user row in the database.
// Includes username and password hash for local authentication plus the
// external provider identity for OAuth sign-ins.
type User struct {
	UserID         string `json:"userID" db:"user_id"`
	Username       string `json:"username" db:"username"`
	PasswordHash   string `json:"-" db:"password_hash"`
	Name           string `json:"name" db:"name"`
	AuthProvider   string `json:"authProvider" db:"auth_provider"`
	ProviderUserID string `json:"-" db:"provider_user_id"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}
