// Package kv defines the key-value storage port the repositories persist
// through, along with its swappable backends. The contract is deliberately
// small: whole documents are read and written under fixed keys.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
// Callers treat it as an empty collection, not a failure.
var ErrKeyNotFound = errors.New("key not found")

// Store is the storage port. Implementations must be safe for concurrent
// Get and Set calls, but no read-modify-write coordination across writers
// is promised.
type Store interface {
	// Get returns the string value stored under key.
	// Returns ErrKeyNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error
}
