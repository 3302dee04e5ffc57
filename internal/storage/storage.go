// Package storage persists the durable state slices to a local SQLite
// database. Each slice (theme, help requests, volunteers) is stored as an
// independent JSON document keyed by name, mirroring the original
// local-storage layout: no schema versioning, and malformed data degrades
// silently to defaults.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/helphub/helphub/internal/domain"
)

// Slice names. Kept stable across releases: they are the on-disk keys.
const (
	sliceTheme      = "theme"
	sliceRequests   = "help_requests"
	sliceVolunteers = "volunteers"
)

const schema = `
CREATE TABLE IF NOT EXISTS app_slice (
    name       TEXT PRIMARY KEY,
    body       TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

// DB wraps the SQLite handle used for slice persistence.
type DB struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if necessary) the database at path and ensures the
// schema exists. Use ":memory:" for an ephemeral database in tests.
func Open(path string, logger *slog.Logger) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &DB{db: db, logger: logger}, nil
}

// Close releases the database handle.
func (d *DB) Close() error { return d.db.Close() }

// saveSlice marshals v and upserts it under name.
func (d *DB) saveSlice(ctx context.Context, name string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	_, err = d.db.ExecContext(ctx, `
		INSERT INTO app_slice (name, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		name, string(body), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// loadSlice unmarshals the stored document into v. Returns ok=false when
// the slice has never been saved. A stored-but-unparseable document is
// returned as an error; callers fall back to defaults.
func (d *DB) loadSlice(ctx context.Context, name string, v any) (bool, error) {
	var body string
	err := d.db.QueryRowContext(ctx,
		`SELECT body FROM app_slice WHERE name = ?`, name,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return false, fmt.Errorf("parse %s: %w", name, err)
	}
	return true, nil
}

// SaveTheme persists the theme slice.
func (d *DB) SaveTheme(ctx context.Context, theme domain.Theme) error {
	return d.saveSlice(ctx, sliceTheme, theme)
}

// SaveHelpRequests persists the help-request collection. Date fields
// round-trip through RFC 3339 via encoding/json.
func (d *DB) SaveHelpRequests(ctx context.Context, reqs []domain.HelpRequest) error {
	return d.saveSlice(ctx, sliceRequests, reqs)
}

// SaveVolunteers persists the volunteer collection.
func (d *DB) SaveVolunteers(ctx context.Context, vols []domain.Volunteer) error {
	return d.saveSlice(ctx, sliceVolunteers, vols)
}

// LoadTheme restores the theme slice.
func (d *DB) LoadTheme(ctx context.Context) (domain.Theme, bool, error) {
	var theme domain.Theme
	ok, err := d.loadSlice(ctx, sliceTheme, &theme)
	return theme, ok, err
}

// LoadHelpRequests restores the help-request collection.
func (d *DB) LoadHelpRequests(ctx context.Context) ([]domain.HelpRequest, bool, error) {
	var reqs []domain.HelpRequest
	ok, err := d.loadSlice(ctx, sliceRequests, &reqs)
	return reqs, ok, err
}

// LoadVolunteers restores the volunteer collection.
func (d *DB) LoadVolunteers(ctx context.Context) ([]domain.Volunteer, bool, error) {
	var vols []domain.Volunteer
	ok, err := d.loadSlice(ctx, sliceVolunteers, &vols)
	return vols, ok, err
}
