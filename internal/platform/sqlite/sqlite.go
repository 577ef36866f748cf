// Package sqlite persists the preference and analytics record in a local
// SQLite database, one row per key in the app_state table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const createStateTable = `
CREATE TABLE IF NOT EXISTS app_state (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at DATETIME NOT NULL
);`

// Open opens the database at path, applies the connection pragmas and
// creates the state table when missing.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single writer keeps SQLITE_BUSY out of the picture for this
	// single-user store.
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	for _, pragma := range []string{"PRAGMA journal_mode=WAL;", "PRAGMA busy_timeout=5000;"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to configure connection: %w", err)
		}
	}

	if _, err := db.ExecContext(ctx, createStateTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create state table: %w", err)
	}

	return db, nil
}

// Persister reads and writes one key of the app_state table.
type Persister struct {
	db     *sql.DB
	key    string
	now    func() time.Time
	logger *slog.Logger
}

// NewPersister creates a Persister for key on db.
func NewPersister(db *sql.DB, key string, logger *slog.Logger) *Persister {
	return &Persister{
		db:     db,
		key:    key,
		now:    time.Now,
		logger: logger.With("component", "sqlite_persister"),
	}
}

// Load returns the stored value, or nil when the key has never been saved.
func (p *Persister) Load(ctx context.Context) ([]byte, error) {
	var value []byte
	err := p.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, p.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state %q: %w", p.key, err)
	}
	return value, nil
}

// Save upserts the value for the key.
func (p *Persister) Save(ctx context.Context, data []byte) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		p.key, data, p.now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save state %q: %w", p.key, err)
	}

	p.logger.DebugContext(ctx, "saved state", "key", p.key, "bytes", len(data))
	return nil
}
