package program

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlahtinen/liftplan/internal/sqlite"
)

// sqliteProfileRepository handles profiles, their schedule preferences,
// equipment and health conditions.
type sqliteProfileRepository struct {
	baseRepository
}

func newSQLiteProfileRepository(db *sqlite.Database) *sqliteProfileRepository {
	return &sqliteProfileRepository{
		baseRepository: newBaseRepository(db),
	}
}

// List returns all profiles ordered by creation.
func (r *sqliteProfileRepository) List(ctx context.Context) (_ []Profile, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, name, days_per_week, minutes_per_session
		FROM profiles
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		if err = rows.Scan(&p.ID, &p.Name, &p.DaysPerWeek, &p.MinutesPerSession); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return profiles, nil
}

// Get retrieves a single profile.
func (r *sqliteProfileRepository) Get(ctx context.Context, id int) (Profile, error) {
	var p Profile
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, name, days_per_week, minutes_per_session
		FROM profiles
		WHERE id = ?`, id).Scan(&p.ID, &p.Name, &p.DaysPerWeek, &p.MinutesPerSession)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("query profile: %w", err)
	}
	return p, nil
}

// Create inserts a profile with default schedule preferences.
func (r *sqliteProfileRepository) Create(ctx context.Context, name string) (Profile, error) {
	result, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO profiles (name) VALUES (?)`, name)
	if err != nil {
		return Profile{}, fmt.Errorf("insert profile: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return Profile{}, fmt.Errorf("last insert id: %w", err)
	}
	return r.Get(ctx, int(id))
}

// SavePreferences updates the schedule part of a profile.
func (r *sqliteProfileRepository) SavePreferences(ctx context.Context, profileID int, prefs Preferences) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		UPDATE profiles
		SET days_per_week = ?, minutes_per_session = ?
		WHERE id = ?`,
		prefs.DaysPerWeek, prefs.MinutesPerSession, profileID); err != nil {
		return fmt.Errorf("update preferences: %w", err)
	}
	return nil
}

// ListEquipment returns the profile's equipment entries.
func (r *sqliteProfileRepository) ListEquipment(ctx context.Context, profileID int) (_ []Equipment, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT name, available
		FROM profile_equipment
		WHERE profile_id = ?
		ORDER BY name`, profileID)
	if err != nil {
		return nil, fmt.Errorf("query equipment: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var equipment []Equipment
	for rows.Next() {
		var eq Equipment
		if err = rows.Scan(&eq.Name, &eq.Available); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		equipment = append(equipment, eq)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return equipment, nil
}

// SetEquipment upserts one equipment entry for a profile.
func (r *sqliteProfileRepository) SetEquipment(ctx context.Context, profileID int, eq Equipment) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO profile_equipment (profile_id, name, available)
		VALUES (?, ?, ?)
		ON CONFLICT (profile_id, name) DO UPDATE SET
			available = excluded.available`,
		profileID, eq.Name, eq.Available); err != nil {
		return fmt.Errorf("upsert equipment: %w", err)
	}
	return nil
}

// RemoveEquipment deletes one equipment entry.
func (r *sqliteProfileRepository) RemoveEquipment(ctx context.Context, profileID int, name string) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		DELETE FROM profile_equipment WHERE profile_id = ? AND name = ?`,
		profileID, name); err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}
	return nil
}

// ListConditions returns the profile's health conditions, active first.
func (r *sqliteProfileRepository) ListConditions(ctx context.Context, profileID int) (_ []HealthCondition, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, body_zone, diagnosis, notes, pain_level, active
		FROM health_conditions
		WHERE profile_id = ?
		ORDER BY active DESC, id`, profileID)
	if err != nil {
		return nil, fmt.Errorf("query conditions: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var conditions []HealthCondition
	for rows.Next() {
		var c HealthCondition
		if err = rows.Scan(&c.ID, &c.BodyZone, &c.Diagnosis, &c.Notes, &c.PainLevel, &c.Active); err != nil {
			return nil, fmt.Errorf("scan condition: %w", err)
		}
		conditions = append(conditions, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return conditions, nil
}

// SaveCondition inserts or updates a health condition.
func (r *sqliteProfileRepository) SaveCondition(ctx context.Context, profileID int, c HealthCondition) error {
	if c.ID == 0 {
		if _, err := r.db.ReadWrite.ExecContext(ctx, `
			INSERT INTO health_conditions (profile_id, body_zone, diagnosis, notes, pain_level, active)
			VALUES (?, ?, ?, ?, ?, ?)`,
			profileID, c.BodyZone, c.Diagnosis, c.Notes, c.PainLevel, c.Active); err != nil {
			return fmt.Errorf("insert condition: %w", err)
		}
		return nil
	}

	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		UPDATE health_conditions
		SET body_zone = ?, diagnosis = ?, notes = ?, pain_level = ?, active = ?
		WHERE id = ? AND profile_id = ?`,
		c.BodyZone, c.Diagnosis, c.Notes, c.PainLevel, c.Active, c.ID, profileID); err != nil {
		return fmt.Errorf("update condition: %w", err)
	}
	return nil
}
