package api

import (
	"errors"
	"net/http"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/espacios/espacios-api/internal/store"
	"github.com/espacios/espacios-api/internal/usecase"
)

// MapErrorToStatusCode translates an error from the core layers into the
// HTTP status the client sees. Anything unrecognized becomes a 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Validation errors raised at value-object or entity construction
	case errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidSpaceType),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrEmptyPassword),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Storage corruption surfaced under the fail decode policy
	case errors.Is(err, store.ErrDecodeFailed):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage picks the client-facing message for err. Internal
// error text never reaches the response body.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrSpaceNotFound):
		return "Space not found"

	case errors.Is(err, store.ErrRentalNotFound):
		return "Rental not found"

	case errors.Is(err, store.ErrReviewNotFound):
		return "Review not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"

	case errors.Is(err, domain.ErrInvalidPrice):
		return "Price must not be negative"

	case errors.Is(err, domain.ErrInvalidDateRange):
		return "Start date must be before end date"

	case errors.Is(err, domain.ErrInvalidRole):
		return "Unknown user role"

	case errors.Is(err, domain.ErrInvalidSpaceType):
		return "Unknown space type"

	case errors.Is(err, store.ErrDecodeFailed):
		return "Stored data could not be read"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail):
		return "Invalid request data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the mapped status code and sanitized message for err.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
}
