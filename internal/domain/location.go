package domain

import "fmt"

// Location is a free-text value object describing where a space is.
// It performs no validation: empty strings are permitted, and defensive
// defaults are a caller concern.
type Location struct {
	City    string `json:"city"`
	Address string `json:"address"`
}

// NewLocation creates a Location from city and address.
func NewLocation(city, address string) Location {
	return Location{City: city, Address: address}
}

// String renders the location as "<address>, <city>".
func (l Location) String() string {
	return fmt.Sprintf("%s, %s", l.Address, l.City)
}
