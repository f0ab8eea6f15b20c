package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ericfisherdev/widgetpanel/internal/domain/model"
	"github.com/ericfisherdev/widgetpanel/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.PreferenceStore = (*PreferenceRepo)(nil)

// PreferenceRepo is the SQLite implementation of the PreferenceStore port.
type PreferenceRepo struct {
	db *DB
}

// NewPreferenceRepo creates a new PreferenceRepo backed by the given DB.
func NewPreferenceRepo(db *DB) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// Get returns the preference stored under key for scope, or (nil, nil) if
// there is none.
func (r *PreferenceRepo) Get(ctx context.Context, scope, key string) (*model.Preference, error) {
	const query = `SELECT scope, key, value, updated_at FROM preferences WHERE scope = ? AND key = ?`

	var p model.Preference
	var updatedAt string
	err := r.db.Reader.QueryRowContext(ctx, query, scope, key).Scan(&p.Scope, &p.Key, &p.Value, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preference %q for %s: %w", key, scope, err)
	}

	p.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at for preference %q: %w", key, err)
	}

	return &p, nil
}

// Set inserts or replaces the preference value. updated_at is refreshed on
// every write.
func (r *PreferenceRepo) Set(ctx context.Context, scope, key, value string) error {
	const query = `
		INSERT INTO preferences (scope, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(scope, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := r.db.Writer.ExecContext(ctx, query, scope, key, value, now); err != nil {
		return fmt.Errorf("set preference %q for %s: %w", key, scope, err)
	}
	return nil
}

// Delete removes the preference. Deleting a missing preference is a no-op.
func (r *PreferenceRepo) Delete(ctx context.Context, scope, key string) error {
	const query = `DELETE FROM preferences WHERE scope = ? AND key = ?`
	if _, err := r.db.Writer.ExecContext(ctx, query, scope, key); err != nil {
		return fmt.Errorf("delete preference %q for %s: %w", key, scope, err)
	}
	return nil
}

// List returns all preferences for scope ordered by key.
func (r *PreferenceRepo) List(ctx context.Context, scope string) ([]model.Preference, error) {
	const query = `SELECT scope, key, value, updated_at FROM preferences WHERE scope = ? ORDER BY key`

	rows, err := r.db.Reader.QueryContext(ctx, query, scope)
	if err != nil {
		return nil, fmt.Errorf("list preferences for %s: %w", scope, err)
	}
	defer rows.Close()

	var prefs []model.Preference
	for rows.Next() {
		var p model.Preference
		var updatedAt string
		if err := rows.Scan(&p.Scope, &p.Key, &p.Value, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}

		p.UpdatedAt, err = parseTime(updatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse updated_at for preference %q: %w", p.Key, err)
		}

		prefs = append(prefs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preferences: %w", err)
	}

	return prefs, nil
}

// parseTime accepts the timestamp layouts SQLite may hand back for a DATETIME
// column: our own RFC 3339 writes and CURRENT_TIMESTAMP defaults.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %q", s)
}
