package program

import (
	"log/slog"
	"os"
	"slices"
	"testing"

	"github.com/mlahtinen/liftplan/internal/sqlite"
)

func newTestDatabase(t *testing.T) *sqlite.Database {
	t.Helper()
	ctx := t.Context()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		AddSource:   false,
		ReplaceAttr: nil,
	}))

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("Failed to close database: %v", closeErr)
		}
	})
	return db
}

// TestProgramRepository_SurvivesExerciseRename verifies that a saved program
// keeps its exercise identity when the catalog entry is renamed afterwards.
// Exercise exclusion on regeneration depends on the stored IDs staying stable.
func TestProgramRepository_SurvivesExerciseRename(t *testing.T) {
	ctx := t.Context()
	db := newTestDatabase(t)

	profiles := newSQLiteProfileRepository(db)
	profile, err := profiles.Create(ctx, "Maija")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	exercises := newSQLiteExerciseRepository(db)
	catalog, err := exercises.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list exercises: %v", err)
	}
	if len(catalog) < 2 {
		t.Fatalf("Fixture catalog has %d exercises, want at least 2", len(catalog))
	}
	first, second := catalog[0], catalog[1]

	repo := newSQLiteProgramRepository(db)
	saved, err := repo.SaveActive(ctx, profile.ID, Program{
		Name:      "Full Body",
		SplitType: SplitFullBody,
		Sessions: []Session{{
			Name:       "Full Body A",
			OrderIndex: 0,
			Intensity:  IntensityHeavy,
			Exercises: []ProgramExercise{
				{ExerciseID: first.ID, ExerciseName: first.Name, OrderIndex: 0, Sets: 3, TargetReps: 5, RestSeconds: 180},
				{ExerciseID: second.ID, ExerciseName: second.Name, OrderIndex: 1, Sets: 3, TargetReps: 8, RestSeconds: 120},
			},
		}},
	})
	if err != nil {
		t.Fatalf("Failed to save program: %v", err)
	}
	if saved.ID == 0 {
		t.Fatal("Saved program has no ID")
	}

	const renamed = "Low-Bar Back Squat"
	if _, err = db.ReadWrite.ExecContext(ctx, `
		UPDATE exercises SET name = ? WHERE id = ?`, renamed, first.ID); err != nil {
		t.Fatalf("Failed to rename exercise: %v", err)
	}

	active, err := repo.GetActive(ctx, profile.ID)
	if err != nil {
		t.Fatalf("Failed to load active program: %v", err)
	}
	got := active.Sessions[0].Exercises
	if len(got) != 2 {
		t.Fatalf("Loaded %d exercises, want 2", len(got))
	}
	if got[0].ExerciseID != first.ID {
		t.Errorf("First exercise ID = %d after rename, want %d", got[0].ExerciseID, first.ID)
	}
	if got[0].ExerciseName != renamed {
		t.Errorf("First exercise name = %q, want %q", got[0].ExerciseName, renamed)
	}
	if got[1].ExerciseID != second.ID {
		t.Errorf("Second exercise ID = %d, want %d", got[1].ExerciseID, second.ID)
	}

	ids := active.ExerciseIDs()
	if !slices.Contains(ids, first.ID) || !slices.Contains(ids, second.ID) {
		t.Errorf("ExerciseIDs() = %v, want both %d and %d present", ids, first.ID, second.ID)
	}
}
