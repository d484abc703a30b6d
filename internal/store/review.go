package store

import (
	"context"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/google/uuid"
)

// ReviewStore defines the interface for review data persistence.
type ReviewStore interface {
	// GetAll returns every persisted review in storage insertion order.
	GetAll(ctx context.Context) ([]*domain.Review, error)

	// GetByID retrieves a review by its unique ID.
	// Returns ErrReviewNotFound if the review does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)

	// Create appends a new review to the store.
	Create(ctx context.Context, review *domain.Review) error

	// Update replaces the first review with a matching ID.
	// It is a silent no-op when no review matches.
	Update(ctx context.Context, review *domain.Review) error

	// Delete removes all reviews with the matching ID.
	// Deleting a nonexistent ID is a no-op, not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
