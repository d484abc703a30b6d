// Package store declares the repository interfaces the marketplace core
// persists through, together with the sentinel errors callers branch on.
// Implementations live under internal/platform; the core depends only on
// these interfaces so the storage backend stays swappable.
package store
