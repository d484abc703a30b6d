package domain

import "fmt"

// DefaultCurrency is applied when a price is created without an explicit currency.
const DefaultCurrency = "MXN"

// Price is an immutable monetary value object. Construct it with NewPrice so
// the non-negative amount invariant always holds.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// NewPrice creates a Price with the given amount and currency.
// An empty currency falls back to DefaultCurrency. Returns ErrInvalidPrice
// when amount is negative. No further normalization is applied: currencies
// are not validated and amounts are not rounded outside of display formatting.
func NewPrice(amount float64, currency string) (Price, error) {
	if amount < 0 {
		return Price{}, ErrInvalidPrice
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return Price{Amount: amount, Currency: currency}, nil
}

// Format renders the price as "<currency> <amount>" with two decimal places,
// e.g. "MXN 150.00".
func (p Price) Format() string {
	return fmt.Sprintf("%s %.2f", p.Currency, p.Amount)
}
