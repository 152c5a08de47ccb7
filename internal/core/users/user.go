package users

import (
	"time"
)

// User represents a registered account.
// PasswordHash is never serialized to API responses.
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	ID           string    `json:"id" db:"id"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
}

// DisplayName returns the name shown alongside a user's posts.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// RegisterRequest represents the input for creating a new account
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest represents the input for authenticating an existing account
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
