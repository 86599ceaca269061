package domain

import (
	"errors"
	"time"
)

const (
	RoleCreator  = "creator"
	RoleBusiness = "business"
	RoleAdmin    = "admin"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User models an authenticated account. Role is assigned at registration and
// is immutable afterwards except by administrative action.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the registrable roles.
// Admin accounts are provisioned out of band, never via registration.
func ValidRole(role string) bool {
	return role == RoleCreator || role == RoleBusiness
}
