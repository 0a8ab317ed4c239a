// Package sqlite implements the snapshot slot store on a local SQLite
// database using the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/school-dashboard/internal/persistence"
	_ "modernc.org/sqlite"
)

// Store persists snapshot slots in a single key/value table.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if necessary) the database at the given DSN.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", dsn, err)
	}
	// SQLite serializes writers anyway; a single connection avoids
	// database-locked errors from the driver.
	db.SetMaxOpenConns(1)
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate creates the snapshot table when it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS snapshots (
			slot       TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite: migrate: %w", err)
	}
	return nil
}

// Load returns the blob stored under the slot.
func (s *Store) Load(ctx context.Context, slot persistence.Slot) ([]byte, error) {
	const query = `SELECT value FROM snapshots WHERE slot = ?`

	var value string
	err := s.db.QueryRowContext(ctx, query, string(slot)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, persistence.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: load slot %q: %w", slot, err)
	}
	return []byte(value), nil
}

// Save overwrites the slot with the provided blob.
func (s *Store) Save(ctx context.Context, slot persistence.Slot, blob []byte) error {
	const query = `
		INSERT INTO snapshots (slot, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	updatedAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.ExecContext(ctx, query, string(slot), string(blob), updatedAt); err != nil {
		return fmt.Errorf("sqlite: save slot %q: %w", slot, err)
	}
	return nil
}
