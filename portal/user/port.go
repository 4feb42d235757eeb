package user

import (
	"context"

	"github.com/TechnologicalJerry/job-portal-website/pkg/kernel"
)

type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id kernel.UserID) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Exists checks if a user exists by ID
	Exists(ctx context.Context, id kernel.UserID) (bool, error)
}

// PasswordHasher abstracts password hashing so the service stays free of
// the hashing implementation.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}
