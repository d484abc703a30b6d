package store

import (
	"context"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/google/uuid"
)

// RentalStore defines the interface for rental data persistence.
type RentalStore interface {
	// GetAll returns every persisted rental in storage insertion order.
	GetAll(ctx context.Context) ([]*domain.Rental, error)

	// GetByID retrieves a rental by its unique ID.
	// Returns ErrRentalNotFound if the rental does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error)

	// Create appends a new rental to the store.
	Create(ctx context.Context, rental *domain.Rental) error

	// Update replaces the first rental with a matching ID.
	// It is a silent no-op when no rental matches. No core flow calls it
	// today; it exists for repository contract uniformity.
	Update(ctx context.Context, rental *domain.Rental) error

	// Delete removes all rentals with the matching ID.
	// Deleting a nonexistent ID is a no-op, not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
