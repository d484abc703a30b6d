package domain

import (
	"github.com/google/uuid"
)

// SpaceType is the closed enum of rentable space categories.
type SpaceType string

// Known space categories.
const (
	SpaceTypeWall              SpaceType = "WALL"
	SpaceTypeGarage            SpaceType = "GARAGE"
	SpaceTypeRoom              SpaceType = "ROOM"
	SpaceTypeHall              SpaceType = "HALL"
	SpaceTypeStudio            SpaceType = "STUDIO"
	SpaceTypeOffice            SpaceType = "OFFICE"
	SpaceTypeWarehouse         SpaceType = "WAREHOUSE"
	SpaceTypeTerrace           SpaceType = "TERRACE"
	SpaceTypeRooftop           SpaceType = "ROOFTOP"
	SpaceTypeGarden            SpaceType = "GARDEN"
	SpaceTypeParkingSpot       SpaceType = "PARKING_SPOT"
	SpaceTypeShop              SpaceType = "SHOP"
	SpaceTypeEventSpace        SpaceType = "EVENT_SPACE"
	SpaceTypeAdvertisementSpot SpaceType = "ADVERTISEMENT_SPOT"
	SpaceTypeOther             SpaceType = "OTHER"
)

// spaceTypes is the membership set for SpaceType.Valid.
var spaceTypes = map[SpaceType]struct{}{
	SpaceTypeWall:              {},
	SpaceTypeGarage:            {},
	SpaceTypeRoom:              {},
	SpaceTypeHall:              {},
	SpaceTypeStudio:            {},
	SpaceTypeOffice:            {},
	SpaceTypeWarehouse:         {},
	SpaceTypeTerrace:           {},
	SpaceTypeRooftop:           {},
	SpaceTypeGarden:            {},
	SpaceTypeParkingSpot:       {},
	SpaceTypeShop:              {},
	SpaceTypeEventSpace:        {},
	SpaceTypeAdvertisementSpot: {},
	SpaceTypeOther:             {},
}

// Valid reports whether the space type is part of the closed enum.
func (t SpaceType) Valid() bool {
	_, ok := spaceTypes[t]
	return ok
}

// Space represents a rentable physical location published by an owner.
// The owner relationship is held by id, never by embedded object.
type Space struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        SpaceType `json:"type"`
	Location    Location  `json:"location"`
	Price       Price     `json:"price"`
	Available   bool      `json:"available"`
	Images      []string  `json:"images"`
}

// NewSpace creates a Space with a fresh ID, available by default.
// Returns an error if validation fails.
func NewSpace(
	ownerID uuid.UUID,
	title, description string,
	spaceType SpaceType,
	location Location,
	price Price,
	images []string,
) (*Space, error) {
	space := &Space{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Type:        spaceType,
		Location:    location,
		Price:       price,
		Available:   true,
		Images:      images,
	}
	if err := space.Validate(); err != nil {
		return nil, err
	}
	return space, nil
}

// Validate checks that the Space has valid data.
func (s *Space) Validate() error {
	if s.ID == uuid.Nil {
		return ErrInvalidID
	}
	if s.OwnerID == uuid.Nil {
		return ErrInvalidID
	}
	if !s.Type.Valid() {
		return ErrInvalidSpaceType
	}
	return nil
}
