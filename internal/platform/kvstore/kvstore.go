// Package kvstore implements the repository interfaces from internal/store
// over the key-value storage port. Each entity type is persisted as one JSON
// array under a fixed key; every read loads the whole collection and every
// write serializes it back, which is acceptable at prototype data volumes.
//
// Decoding is defensive: malformed nested value objects fall back to safe
// defaults, and records that cannot be reconstructed at all are handled
// according to the configured DecodePolicy.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/espacios/espacios-api/internal/platform/kv"
	"github.com/espacios/espacios-api/internal/store"
)

// Storage keys, one collection per entity type.
const (
	usersKey   = "espacios:users"
	spacesKey  = "espacios:spaces"
	rentalsKey = "espacios:rentals"
	reviewsKey = "espacios:reviews"
)

// DecodePolicy decides what happens when a persisted record cannot be
// reconstructed into its entity.
type DecodePolicy int

const (
	// PolicyDrop silently skips malformed records, keeping the rest of the
	// collection readable. This is the default and the long-standing
	// behavior for data written by older releases.
	PolicyDrop DecodePolicy = iota

	// PolicyFail surfaces store.ErrDecodeFailed instead of hiding corruption.
	PolicyFail
)

// PolicyFromString maps the configuration value to a DecodePolicy.
func PolicyFromString(s string) (DecodePolicy, error) {
	switch s {
	case "drop":
		return PolicyDrop, nil
	case "fail":
		return PolicyFail, nil
	default:
		return PolicyDrop, fmt.Errorf("unknown decode policy %q", s)
	}
}

// idRecord is the minimal shape needed to match records by id without
// decoding them fully. Update and Delete work on raw records so malformed
// siblings survive a write untouched.
type idRecord struct {
	ID string `json:"id"`
}

// readRaw returns the raw record list stored under key.
// A key that has never been written reads as an empty collection. A document
// that is not a JSON array at all is corruption beyond any per-record policy
// and is always surfaced.
func readRaw(ctx context.Context, s kv.Store, key string) ([]json.RawMessage, error) {
	doc, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var records []json.RawMessage
	if err := json.Unmarshal([]byte(doc), &records); err != nil {
		return nil, fmt.Errorf("%w: collection %s is not a JSON array: %v", store.ErrDecodeFailed, key, err)
	}
	return records, nil
}

// writeRaw serializes the record list back under key.
func writeRaw(ctx context.Context, s kv.Store, key string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	doc, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", key, err)
	}
	return s.Set(ctx, key, string(doc))
}

// appendRecord appends the marshaled record to the collection under key.
func appendRecord(ctx context.Context, s kv.Store, key string, record any) error {
	records, err := readRaw(ctx, s, key)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	return writeRaw(ctx, s, key, append(records, raw))
}

// replaceByID replaces the first record whose id matches. When no record
// matches, the collection is left as it was and no error is returned.
func replaceByID(ctx context.Context, s kv.Store, key, id string, record any) error {
	records, err := readRaw(ctx, s, key)
	if err != nil {
		return err
	}

	for i, raw := range records {
		var existing idRecord
		if err := json.Unmarshal(raw, &existing); err != nil {
			continue
		}
		if existing.ID != id {
			continue
		}
		replacement, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		records[i] = replacement
		return writeRaw(ctx, s, key, records)
	}

	return nil
}

// deleteByID removes all records whose id matches. Records whose id cannot
// even be read are kept; a delete must not destroy unrelated data.
func deleteByID(ctx context.Context, s kv.Store, key, id string) error {
	records, err := readRaw(ctx, s, key)
	if err != nil {
		return err
	}

	kept := records[:0]
	removed := false
	for _, raw := range records {
		var existing idRecord
		if err := json.Unmarshal(raw, &existing); err == nil && existing.ID == id {
			removed = true
			continue
		}
		kept = append(kept, raw)
	}

	if !removed {
		return nil
	}
	return writeRaw(ctx, s, key, kept)
}
