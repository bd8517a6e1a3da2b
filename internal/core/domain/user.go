package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidRole reports whether role is one of the recognised account roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCustomer
}

// User models an authenticated actor in the system. PasswordHash is opaque
// secret material and is never serialized outward.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
