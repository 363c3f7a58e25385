// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no account matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for account persistence.
// The application layer depends on this interface, never on the concrete implementation.
type UserRepository interface {
	// Create persists a new account. The database's unique constraint on
	// email is the race-safe guarantee against duplicate registration; a
	// violation surfaces as a conflict error.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves an account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves an account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
