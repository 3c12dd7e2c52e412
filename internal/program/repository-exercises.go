package program

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlahtinen/liftplan/internal/sqlite"
)

// sqliteExerciseRepository loads and extends the exercise catalog.
type sqliteExerciseRepository struct {
	baseRepository
}

func newSQLiteExerciseRepository(db *sqlite.Database) *sqliteExerciseRepository {
	return &sqliteExerciseRepository{
		baseRepository: newBaseRepository(db),
	}
}

// List returns the whole catalog with every tag table loaded.
func (r *sqliteExerciseRepository) List(ctx context.Context) (_ []Exercise, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, name, category, description_markdown, rehab, rehab_target
		FROM exercises
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var exercises []Exercise
	for rows.Next() {
		var ex Exercise
		if err = rows.Scan(&ex.ID, &ex.Name, &ex.Category, &ex.DescriptionMarkdown, &ex.Rehab, &ex.RehabTarget); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	for i := range exercises {
		if err = r.fetchTags(ctx, &exercises[i]); err != nil {
			return nil, fmt.Errorf("fetch tags for exercise %d: %w", exercises[i].ID, err)
		}
	}

	return exercises, nil
}

// Get retrieves a single exercise by ID.
func (r *sqliteExerciseRepository) Get(ctx context.Context, id int) (Exercise, error) {
	var ex Exercise
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, name, category, description_markdown, rehab, rehab_target
		FROM exercises
		WHERE id = ?`, id).Scan(
		&ex.ID, &ex.Name, &ex.Category, &ex.DescriptionMarkdown, &ex.Rehab, &ex.RehabTarget)
	if errors.Is(err, sql.ErrNoRows) {
		return Exercise{}, ErrNotFound
	}
	if err != nil {
		return Exercise{}, fmt.Errorf("query exercise: %w", err)
	}

	if err = r.fetchTags(ctx, &ex); err != nil {
		return Exercise{}, fmt.Errorf("fetch tags for exercise %d: %w", ex.ID, err)
	}
	return ex, nil
}

// fetchTags loads the muscle, equipment, contraindication and free-text tag
// tables onto the exercise.
func (r *sqliteExerciseRepository) fetchTags(ctx context.Context, ex *Exercise) error {
	if err := r.queryStrings(ctx,
		`SELECT muscle FROM exercise_muscles WHERE exercise_id = ? ORDER BY muscle`,
		ex.ID, &ex.Muscles); err != nil {
		return fmt.Errorf("muscles: %w", err)
	}
	if err := r.queryStrings(ctx,
		`SELECT equipment FROM exercise_equipment WHERE exercise_id = ? ORDER BY equipment`,
		ex.ID, &ex.Equipment); err != nil {
		return fmt.Errorf("equipment: %w", err)
	}

	var zones []string
	if err := r.queryStrings(ctx,
		`SELECT body_zone FROM exercise_contraindications WHERE exercise_id = ? ORDER BY body_zone`,
		ex.ID, &zones); err != nil {
		return fmt.Errorf("contraindications: %w", err)
	}
	ex.Contraindications = ex.Contraindications[:0]
	for _, z := range zones {
		ex.Contraindications = append(ex.Contraindications, BodyZone(z))
	}

	if err := r.queryStrings(ctx,
		`SELECT tag FROM exercise_tags WHERE exercise_id = ? ORDER BY tag`,
		ex.ID, &ex.Tags); err != nil {
		return fmt.Errorf("tags: %w", err)
	}
	return nil
}

func (r *sqliteExerciseRepository) queryStrings(
	ctx context.Context,
	query string,
	id int,
	dest *[]string,
) (err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	for rows.Next() {
		var s string
		if err = rows.Scan(&s); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		*dest = append(*dest, s)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("rows error: %w", err)
	}
	return nil
}

// Create inserts a new catalog entry with its tag tables.
func (r *sqliteExerciseRepository) Create(ctx context.Context, ex Exercise) (_ Exercise, err error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return Exercise{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO exercises (name, category, description_markdown, rehab, rehab_target)
		VALUES (?, ?, ?, ?, ?)`,
		ex.Name, ex.Category, ex.DescriptionMarkdown, ex.Rehab, ex.RehabTarget)
	if err != nil {
		return Exercise{}, fmt.Errorf("insert exercise: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return Exercise{}, fmt.Errorf("last insert id: %w", err)
	}
	ex.ID = int(id)

	insertTag := func(table, column string, values []string) error {
		for _, v := range values {
			if _, err := tx.ExecContext(ctx,
				fmt.Sprintf(`INSERT INTO %s (exercise_id, %s) VALUES (?, ?)`, table, column),
				ex.ID, v); err != nil {
				return fmt.Errorf("insert %s: %w", table, err)
			}
		}
		return nil
	}

	if err = insertTag("exercise_muscles", "muscle", ex.Muscles); err != nil {
		return Exercise{}, err
	}
	if err = insertTag("exercise_equipment", "equipment", ex.Equipment); err != nil {
		return Exercise{}, err
	}
	zones := make([]string, len(ex.Contraindications))
	for i, z := range ex.Contraindications {
		zones[i] = string(z)
	}
	if err = insertTag("exercise_contraindications", "body_zone", zones); err != nil {
		return Exercise{}, err
	}
	if err = insertTag("exercise_tags", "tag", ex.Tags); err != nil {
		return Exercise{}, err
	}

	if err = tx.Commit(); err != nil {
		return Exercise{}, fmt.Errorf("commit: %w", err)
	}
	return ex, nil
}

// UpdateDescription stores a generated markdown description.
func (r *sqliteExerciseRepository) UpdateDescription(ctx context.Context, id int, markdown string) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		UPDATE exercises SET description_markdown = ? WHERE id = ?`, markdown, id); err != nil {
		return fmt.Errorf("update description: %w", err)
	}
	return nil
}
