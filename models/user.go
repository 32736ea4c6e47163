package models

import "time"

// Role values assigned to user accounts. Admins may manage fiscal years
// and delete ledger records; regular users may only add and edit entries
// in open years.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique user identifier used during authentication.
	Email string `json:"email"`

	// Password carries the plaintext password only on inbound register/login
	// requests. It is hashed with bcrypt before storage and never echoed back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash persisted for the account.
	// Never serialized.
	PasswordHash string `json:"-"`

	// Role is either RoleUser or RoleAdmin.
	Role string `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
