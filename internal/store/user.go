package store

import (
	"context"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/google/uuid"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// GetAll returns every persisted user in storage insertion order.
	// The order is stable within one storage session.
	GetAll(ctx context.Context) ([]*domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address, the natural key.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create appends a new user to the store. Uniqueness (e.g. unique email)
	// is a use-case concern and is not checked at this layer.
	Create(ctx context.Context, user *domain.User) error

	// Update replaces the first user with a matching ID.
	// It is a silent no-op when no user matches.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes all users with the matching ID.
	// Deleting a nonexistent ID is a no-op, not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
