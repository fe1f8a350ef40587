package domain

import (
	"errors"
	"time"
)

// Role is the closed set of roles an account can hold.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Status is the lifecycle state of a user account.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive || s == StatusSuspended
}

var (
	ErrUserExists   = errors.New("username already exists")
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is the single failure returned by login for an
	// unknown username, a wrong password, or a non-active account. Callers
	// must not be able to tell these apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordUpdateForbidden rejects password changes through the
	// administrative user-update surface.
	ErrPasswordUpdateForbidden = errors.New("password updates are not allowed via this endpoint")
	ErrInvalidToken            = errors.New("invalid or expired token")
)

// User models a registered account. Username is a globally unique email
// address. PasswordHash never leaves the server boundary.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         Role      `json:"role" bson:"role"`
	Status       Status    `json:"status" bson:"status"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
