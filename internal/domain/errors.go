package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed or empty.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPrice is returned when a price amount is negative.
	ErrInvalidPrice = errors.New("invalid price: amount must not be negative")

	// ErrInvalidDateRange is returned when a date range does not start
	// strictly before it ends.
	ErrInvalidDateRange = errors.New("invalid date range: start must be before end")

	// ErrInvalidRole is returned when a user role is not one of the known roles.
	ErrInvalidRole = errors.New("invalid user role")

	// ErrInvalidSpaceType is returned when a space type is not part of the
	// closed space category enum.
	ErrInvalidSpaceType = errors.New("invalid space type")

	// ErrEmptyPassword is returned when a credential is built from an empty password.
	ErrEmptyPassword = errors.New("password cannot be empty")
)
