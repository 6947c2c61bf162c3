package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    name       TEXT PRIMARY KEY,
    payload    BLOB NOT NULL,
    updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);
`

// Compile-time interface check.
var _ Store = (*SQLite)(nil)

// SQLite is a durable key-value store backed by a single-table SQLite
// database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path and initializes the
// schema.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Get(name string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM kv WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %q: %w", name, err)
	}
	return payload, true, nil
}

func (s *SQLite) Set(name string, data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (name, payload, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		ON CONFLICT(name) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		name, data)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", name, err)
	}
	return nil
}

func (s *SQLite) Delete(name string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to delete %q: %w", name, err)
	}
	return nil
}
