package program

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlahtinen/liftplan/internal/sqlite"
)

// sqliteProgramRepository persists generated programs.
type sqliteProgramRepository struct {
	baseRepository
}

func newSQLiteProgramRepository(db *sqlite.Database) *sqliteProgramRepository {
	return &sqliteProgramRepository{
		baseRepository: newBaseRepository(db),
	}
}

// GetActive returns the profile's active program with all sessions loaded.
func (r *sqliteProgramRepository) GetActive(ctx context.Context, profileID int) (Program, error) {
	var p Program
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, name, split_type
		FROM programs
		WHERE profile_id = ? AND active
		ORDER BY id DESC
		LIMIT 1`, profileID).Scan(&p.ID, &p.Name, &p.SplitType)
	if errors.Is(err, sql.ErrNoRows) {
		return Program{}, ErrNotFound
	}
	if err != nil {
		return Program{}, fmt.Errorf("query active program: %w", err)
	}

	if p.Sessions, err = r.fetchSessions(ctx, p.ID); err != nil {
		return Program{}, fmt.Errorf("fetch sessions for program %d: %w", p.ID, err)
	}
	return p, nil
}

func (r *sqliteProgramRepository) fetchSessions(ctx context.Context, programID int) (_ []Session, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT s.id, s.name, s.order_index, s.intensity
		FROM program_sessions s
		WHERE s.program_id = ?
		ORDER BY s.order_index`, programID)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	type sessionRow struct {
		id      int
		session Session
	}
	var sessionRows []sessionRow
	for rows.Next() {
		var sr sessionRow
		if err = rows.Scan(&sr.id, &sr.session.Name, &sr.session.OrderIndex, &sr.session.Intensity); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessionRows = append(sessionRows, sr)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	sessions := make([]Session, 0, len(sessionRows))
	for _, sr := range sessionRows {
		if sr.session.Exercises, err = r.fetchExercises(ctx, sr.id); err != nil {
			return nil, fmt.Errorf("fetch exercises for session %d: %w", sr.id, err)
		}
		sessions = append(sessions, sr.session)
	}
	return sessions, nil
}

func (r *sqliteProgramRepository) fetchExercises(ctx context.Context, sessionID int) (_ []ProgramExercise, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT pe.exercise_id, e.name, pe.order_index, pe.sets, pe.target_reps,
		       pe.rest_seconds, pe.rehab, pe.time_based
		FROM program_exercises pe
		JOIN exercises e ON e.id = pe.exercise_id
		WHERE pe.session_id = ?
		ORDER BY pe.order_index`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query program exercises: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var exercises []ProgramExercise
	for rows.Next() {
		var pe ProgramExercise
		if err = rows.Scan(&pe.ExerciseID, &pe.ExerciseName, &pe.OrderIndex, &pe.Sets,
			&pe.TargetReps, &pe.RestSeconds, &pe.Rehab, &pe.TimeBased); err != nil {
			return nil, fmt.Errorf("scan program exercise: %w", err)
		}
		exercises = append(exercises, pe)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return exercises, nil
}

// SaveActive persists a freshly generated program and deactivates any prior
// program of the profile in the same transaction.
func (r *sqliteProgramRepository) SaveActive(ctx context.Context, profileID int, p Program) (_ Program, err error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return Program{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	if _, err = tx.ExecContext(ctx, `
		UPDATE programs SET active = FALSE WHERE profile_id = ? AND active`,
		profileID); err != nil {
		return Program{}, fmt.Errorf("deactivate prior programs: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO programs (profile_id, name, split_type, active)
		VALUES (?, ?, ?, TRUE)`,
		profileID, p.Name, p.SplitType)
	if err != nil {
		return Program{}, fmt.Errorf("insert program: %w", err)
	}
	programID, err := result.LastInsertId()
	if err != nil {
		return Program{}, fmt.Errorf("last insert id: %w", err)
	}
	p.ID = int(programID)

	for _, session := range p.Sessions {
		var sessionResult sql.Result
		sessionResult, err = tx.ExecContext(ctx, `
			INSERT INTO program_sessions (program_id, name, order_index, intensity)
			VALUES (?, ?, ?, ?)`,
			p.ID, session.Name, session.OrderIndex, session.Intensity)
		if err != nil {
			return Program{}, fmt.Errorf("insert session: %w", err)
		}
		var sessionID int64
		if sessionID, err = sessionResult.LastInsertId(); err != nil {
			return Program{}, fmt.Errorf("last insert id: %w", err)
		}

		for _, pe := range session.Exercises {
			if _, err = tx.ExecContext(ctx, `
				INSERT INTO program_exercises
					(session_id, exercise_id, order_index, sets, target_reps, rest_seconds, rehab, time_based)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				sessionID, pe.ExerciseID, pe.OrderIndex, pe.Sets, pe.TargetReps,
				pe.RestSeconds, pe.Rehab, pe.TimeBased); err != nil {
				return Program{}, fmt.Errorf("insert program exercise: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return Program{}, fmt.Errorf("commit: %w", err)
	}
	return p, nil
}
