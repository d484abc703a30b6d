package domain

import (
	"github.com/google/uuid"
)

// Rental represents a booking of a Space by a renter for a DateRange.
// Space, renter, and owner are referenced by id. Rentals are created once at
// booking time and never mutated by any core flow.
type Rental struct {
	ID        uuid.UUID `json:"id"`
	SpaceID   uuid.UUID `json:"space_id"`
	RenterID  uuid.UUID `json:"renter_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	DateRange DateRange `json:"date_range"`
	TotalCost float64   `json:"total_cost"`
}

// NewRental creates a Rental with a fresh ID. The date range invariant
// (start before end) is guaranteed by DateRange construction; totalCost is
// computed by the booking use case, not here.
func NewRental(spaceID, renterID, ownerID uuid.UUID, dateRange DateRange, totalCost float64) (*Rental, error) {
	rental := &Rental{
		ID:        uuid.New(),
		SpaceID:   spaceID,
		RenterID:  renterID,
		OwnerID:   ownerID,
		DateRange: dateRange,
		TotalCost: totalCost,
	}
	if err := rental.Validate(); err != nil {
		return nil, err
	}
	return rental, nil
}

// Validate checks that the Rental has valid data.
func (r *Rental) Validate() error {
	if r.ID == uuid.Nil || r.SpaceID == uuid.Nil || r.RenterID == uuid.Nil {
		return ErrInvalidID
	}
	if !r.DateRange.Start.Before(r.DateRange.End) {
		return ErrInvalidDateRange
	}
	return nil
}
