package store

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every repository implementation. Entity-specific
// variants wrap the generic ones so callers can branch at either level with
// errors.Is.
var (
	// ErrNotFound is the generic absence error.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is the generic uniqueness-violation error.
	ErrDuplicate = errors.New("entity already exists")

	// ErrDecodeFailed is returned when persisted data cannot be decoded and
	// the configured policy surfaces corruption instead of dropping it.
	ErrDecodeFailed = errors.New("decode failed")

	ErrUserNotFound   = fmt.Errorf("%w: user", ErrNotFound)
	ErrSpaceNotFound  = fmt.Errorf("%w: space", ErrNotFound)
	ErrRentalNotFound = fmt.Errorf("%w: rental", ErrNotFound)
	ErrReviewNotFound = fmt.Errorf("%w: review", ErrNotFound)

	// ErrEmailExists is returned when registering an email that is already
	// taken. Email is the users' natural key.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError reports whether err is any absence error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is any uniqueness-violation error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError attaches the failing entity and operation to a storage error so
// log lines and wrapped messages carry enough context to locate the write.
type StoreError struct {
	Entity    string
	Operation string
	Message   string
	Err       error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap exposes the underlying error for errors.Is and errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err with the entity and operation that failed.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
