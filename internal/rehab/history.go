package rehab

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mlahtinen/liftplan/internal/sqlite"
)

const timestampFormat = "2006-01-02T15:04:05.000Z"

// SQLiteHistory persists the last-done timestamps for one profile.
type SQLiteHistory struct {
	db        *sqlite.Database
	profileID int
}

// NewSQLiteHistory creates a history store bound to a profile.
func NewSQLiteHistory(db *sqlite.Database, profileID int) *SQLiteHistory {
	return &SQLiteHistory{
		db:        db,
		profileID: profileID,
	}
}

// Get returns the name to last-done-at mapping of the profile.
func (h *SQLiteHistory) Get(ctx context.Context) (_ map[string]time.Time, err error) {
	rows, err := h.db.ReadOnly.QueryContext(ctx, `
		SELECT exercise_name, last_done_at
		FROM rehab_history
		WHERE profile_id = ?`, h.profileID)
	if err != nil {
		return nil, fmt.Errorf("query rehab history: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	history := make(map[string]time.Time)
	for rows.Next() {
		var (
			name   string
			doneAt string
		)
		if err = rows.Scan(&name, &doneAt); err != nil {
			return nil, fmt.Errorf("scan rehab history: %w", err)
		}
		var ts time.Time
		if ts, err = time.Parse(timestampFormat, doneAt); err != nil {
			return nil, fmt.Errorf("parse last_done_at: %w", err)
		}
		history[name] = ts
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return history, nil
}

// RecordDone upserts now as the last-done timestamp for the given names.
func (h *SQLiteHistory) RecordDone(ctx context.Context, names []string) error {
	now := time.Now().UTC().Format(timestampFormat)
	for _, name := range names {
		if _, err := h.db.ReadWrite.ExecContext(ctx, `
			INSERT INTO rehab_history (profile_id, exercise_name, last_done_at)
			VALUES (?, ?, ?)
			ON CONFLICT (profile_id, exercise_name) DO UPDATE SET
				last_done_at = excluded.last_done_at`,
			h.profileID, name, now); err != nil {
			return fmt.Errorf("upsert rehab history: %w", err)
		}
	}
	return nil
}
