package store

import (
	"context"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/google/uuid"
)

// SpaceStore defines the interface for space data persistence.
type SpaceStore interface {
	// GetAll returns every persisted space in storage insertion order.
	GetAll(ctx context.Context) ([]*domain.Space, error)

	// GetByID retrieves a space by its unique ID.
	// Returns ErrSpaceNotFound if the space does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Space, error)

	// Create appends a new space to the store.
	Create(ctx context.Context, space *domain.Space) error

	// Update replaces the first space with a matching ID.
	// It is a silent no-op when no space matches.
	Update(ctx context.Context, space *domain.Space) error

	// Delete removes all spaces with the matching ID.
	// Deleting a nonexistent ID is a no-op, not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
