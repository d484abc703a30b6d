package usecase

import (
	"context"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/espacios/espacios-api/internal/store"
	"github.com/google/uuid"
)

// ListRentalsByUser returns the rentals associated with a user id.
type ListRentalsByUser struct {
	rentals store.RentalStore
}

// NewListRentalsByUser creates the ListRentalsByUser use case.
func NewListRentalsByUser(rentals store.RentalStore) *ListRentalsByUser {
	if rentals == nil {
		panic("rental store cannot be nil")
	}
	return &ListRentalsByUser{rentals: rentals}
}

// Execute returns every rental whose renter id OR space id equals the given
// id. The space-id arm cannot match a real user id today; it stays until
// rentals carry a reliable owner id to filter on instead.
// TODO: switch the second arm to OwnerID once historical rentals have it.
func (uc *ListRentalsByUser) Execute(ctx context.Context, userID uuid.UUID) ([]*domain.Rental, error) {
	all, err := uc.rentals.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.Rental, 0, len(all))
	for _, rental := range all {
		if rental.RenterID == userID || rental.SpaceID == userID {
			matched = append(matched, rental)
		}
	}
	return matched, nil
}
