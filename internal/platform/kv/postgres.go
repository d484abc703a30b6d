package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// kvSchema is the single table the Postgres backend needs. It is created at
// connect time; there is no schema evolution for a two-column document store.
const kvSchema = `
	CREATE TABLE IF NOT EXISTS kv_documents (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)
`

// PostgresStore is a Store backend over a Postgres table used as a document
// store. Each key holds one serialized collection, matching the
// whole-document read/write model of the other backends.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to Postgres with the given URL and bootstraps
// the kv table.
func NewPostgresStore(ctx context.Context, url string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, kvSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to bootstrap kv table: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Ensure PostgresStore implements the Store interface
var _ Store = (*PostgresStore)(nil)

// Get implements Store.Get.
func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM kv_documents WHERE key = $1`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, nil
}

// Set implements Store.Set.
func (s *PostgresStore) Set(ctx context.Context, key string, value string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO kv_documents (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
