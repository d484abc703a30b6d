package usecase

import (
	"context"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/espacios/espacios-api/internal/store"
	"github.com/google/uuid"
)

// ListSpaces returns every published space, unfiltered.
type ListSpaces struct {
	spaces store.SpaceStore
}

// NewListSpaces creates the ListSpaces use case.
func NewListSpaces(spaces store.SpaceStore) *ListSpaces {
	if spaces == nil {
		panic("space store cannot be nil")
	}
	return &ListSpaces{spaces: spaces}
}

// Execute returns all spaces in storage insertion order.
func (uc *ListSpaces) Execute(ctx context.Context) ([]*domain.Space, error) {
	return uc.spaces.GetAll(ctx)
}

// GetSpaceByID retrieves a single space.
type GetSpaceByID struct {
	spaces store.SpaceStore
}

// NewGetSpaceByID creates the GetSpaceByID use case.
func NewGetSpaceByID(spaces store.SpaceStore) *GetSpaceByID {
	if spaces == nil {
		panic("space store cannot be nil")
	}
	return &GetSpaceByID{spaces: spaces}
}

// Execute returns the space with the given id, or store.ErrSpaceNotFound.
func (uc *GetSpaceByID) Execute(ctx context.Context, id uuid.UUID) (*domain.Space, error) {
	return uc.spaces.GetByID(ctx, id)
}
