package users

import "context"

// Repository defines the data access interface for users
type Repository interface {
	// Create inserts a new user. Returns ErrEmailTaken when the email is
	// already registered.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByEmail retrieves a user by their (lowercased) email address.
	// Returns ErrUserNotFound when no account matches.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID retrieves a user by id. Returns ErrUserNotFound when no
	// account matches.
	GetByID(ctx context.Context, id string) (*User, error)
}

// Service defines the business logic interface for accounts
type Service interface {
	// Register validates the request, hashes the password and persists a
	// new user.
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Login verifies email/password and returns the matching user.
	// Returns ErrInvalidCredentials for unknown email or wrong password.
	Login(ctx context.Context, req LoginRequest) (*User, error)

	// GetByID retrieves a user by id.
	GetByID(ctx context.Context, id string) (*User, error)
}
