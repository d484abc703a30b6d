package domain

import "time"

// DateRange is an immutable interval value object. Construct it with
// NewDateRange so the start-before-end invariant always holds.
//
// Both timestamps are assumed to be in the same zone; durations are derived
// from the wall-clock difference with no timezone normalization.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange creates a DateRange from start to end.
// Returns ErrInvalidDateRange unless start is strictly before end.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if !start.Before(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{Start: start, End: end}, nil
}

// Hours returns the duration of the range in hours.
func (d DateRange) Hours() float64 {
	return d.End.Sub(d.Start).Hours()
}

// Days returns the duration of the range in days.
func (d DateRange) Days() float64 {
	return d.Hours() / 24
}
