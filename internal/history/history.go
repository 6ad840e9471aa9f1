// Package history journals the actions run against game folders.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded action.
type Entry struct {
	ID       string
	Variant  string
	Action   string
	Profile  string
	Folder   string
	Exe      string
	OK       bool
	Message  string
	Duration time.Duration
	At       time.Time
}

// Repository stores entries in the operations table.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// NewRepository creates a new Repository using db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Record inserts e, filling in ID and At when they are zero. The stored
// entry is returned.
func (r *Repository) Record(ctx context.Context, e Entry) (Entry, error) {
	e.Action = strings.TrimSpace(e.Action)
	if e.Action == "" {
		return Entry{}, fmt.Errorf("record: action cannot be empty")
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.At.IsZero() {
		e.At = r.now()
	}
	e.At = e.At.UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO operations (id, variant, action, profile, folder, exe, ok, message, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Variant, e.Action, e.Profile, e.Folder, e.Exe, e.OK, e.Message,
		e.Duration.Milliseconds(), e.At.Format(timeLayout))
	if err != nil {
		return Entry{}, fmt.Errorf("record %s: %w", e.Action, err)
	}
	return e, nil
}

// timeLayout is fixed-width so created_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// List returns the newest entries first. A limit of zero or less returns
// everything.
func (r *Repository) List(ctx context.Context, limit int) ([]Entry, error) {
	q := `SELECT id, variant, action, profile, folder, exe, ok, message, duration_ms, created_at
	      FROM operations ORDER BY created_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Entry
	for rows.Next() {
		var e Entry
		var ms int64
		var at string
		if err := rows.Scan(&e.ID, &e.Variant, &e.Action, &e.Profile, &e.Folder, &e.Exe, &e.OK, &e.Message, &ms, &at); err != nil {
			return nil, err
		}
		e.Duration = time.Duration(ms) * time.Millisecond
		if t, err := time.Parse(time.RFC3339Nano, at); err == nil {
			e.At = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Clear deletes every entry and reports how many were removed.
func (r *Repository) Clear(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM operations")
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	return res.RowsAffected()
}

// Close closes the underlying DB connection used by the Repository.
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
