package program_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/mlahtinen/liftplan/internal/program"
	"github.com/mlahtinen/liftplan/internal/sqlite"
)

func newTestService(t *testing.T) *program.Service {
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

	return program.NewService(db, logger, "")
}

func Test_GenerateProgram_PersistsAndActivates(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t)

	profile, err := svc.CreateProfile(ctx, "Maija")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	if err = svc.SavePreferences(ctx, profile.ID, program.Preferences{
		DaysPerWeek:       3,
		MinutesPerSession: 60,
	}); err != nil {
		t.Fatalf("Failed to save preferences: %v", err)
	}

	for _, name := range []string{"barbell", "dumbbell", "bench", "squat rack"} {
		if err = svc.SetEquipment(ctx, profile.ID, program.Equipment{Name: name, Available: true}); err != nil {
			t.Fatalf("Failed to set equipment %q: %v", name, err)
		}
	}

	// No program exists before generation.
	if _, err = svc.ActiveProgram(ctx, profile.ID); !errors.Is(err, program.ErrNotFound) {
		t.Fatalf("ActiveProgram before generation: got %v, want ErrNotFound", err)
	}

	generated, err := svc.GenerateProgram(ctx, profile.ID)
	if err != nil {
		t.Fatalf("Failed to generate program: %v", err)
	}
	if generated.SplitType != program.SplitFullBody {
		t.Errorf("split = %q, want %q", generated.SplitType, program.SplitFullBody)
	}
	if len(generated.Sessions) != 3 {
		t.Errorf("got %d sessions, want 3", len(generated.Sessions))
	}

	active, err := svc.ActiveProgram(ctx, profile.ID)
	if err != nil {
		t.Fatalf("Failed to load active program: %v", err)
	}
	if active.ID != generated.ID {
		t.Errorf("active program id = %d, want %d", active.ID, generated.ID)
	}
	if len(active.Sessions) != len(generated.Sessions) {
		t.Errorf("active program has %d sessions, want %d", len(active.Sessions), len(generated.Sessions))
	}
}

func Test_RegenerateProgram_DeactivatesPrior(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t)

	profile, err := svc.CreateProfile(ctx, "Ville")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}
	if err = svc.SavePreferences(ctx, profile.ID, program.Preferences{
		DaysPerWeek:       4,
		MinutesPerSession: 60,
	}); err != nil {
		t.Fatalf("Failed to save preferences: %v", err)
	}
	for _, name := range []string{"barbell", "dumbbell", "bench", "squat rack", "pull-up bar", "cable machine"} {
		if err = svc.SetEquipment(ctx, profile.ID, program.Equipment{Name: name, Available: true}); err != nil {
			t.Fatalf("Failed to set equipment %q: %v", name, err)
		}
	}

	first, err := svc.GenerateProgram(ctx, profile.ID)
	if err != nil {
		t.Fatalf("Failed to generate first program: %v", err)
	}

	second, err := svc.RegenerateProgram(ctx, profile.ID)
	if err != nil {
		t.Fatalf("Failed to regenerate program: %v", err)
	}
	if second.ID == first.ID {
		t.Error("regeneration returned the prior program")
	}

	active, err := svc.ActiveProgram(ctx, profile.ID)
	if err != nil {
		t.Fatalf("Failed to load active program: %v", err)
	}
	if active.ID != second.ID {
		t.Errorf("active program id = %d, want the regenerated %d", active.ID, second.ID)
	}
}

func Test_GenerateProgram_SevereConditionSubstitutes(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t)

	profile, err := svc.CreateProfile(ctx, "Anselmi")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}
	if err = svc.SavePreferences(ctx, profile.ID, program.Preferences{
		DaysPerWeek:       3,
		MinutesPerSession: 60,
	}); err != nil {
		t.Fatalf("Failed to save preferences: %v", err)
	}
	for _, name := range []string{"barbell", "dumbbell", "bench", "squat rack"} {
		if err = svc.SetEquipment(ctx, profile.ID, program.Equipment{Name: name, Available: true}); err != nil {
			t.Fatalf("Failed to set equipment %q: %v", name, err)
		}
	}
	if err = svc.SaveCondition(ctx, profile.ID, program.HealthCondition{
		BodyZone:  program.ZoneLowerBack,
		Diagnosis: "disc herniation",
		PainLevel: 8,
		Active:    true,
	}); err != nil {
		t.Fatalf("Failed to save condition: %v", err)
	}

	generated, err := svc.GenerateProgram(ctx, profile.ID)
	if err != nil {
		t.Fatalf("Failed to generate program: %v", err)
	}

	catalog, err := svc.ListExercises(ctx)
	if err != nil {
		t.Fatalf("Failed to list exercises: %v", err)
	}
	byID := make(map[int]program.Exercise, len(catalog))
	for _, ex := range catalog {
		byID[ex.ID] = ex
	}

	for _, session := range generated.Sessions {
		for _, pe := range session.Exercises {
			if pe.Rehab {
				continue
			}
			if byID[pe.ExerciseID].ContraindicatedFor(program.ZoneLowerBack) {
				t.Errorf("session %q contains %q despite severe lower-back pain",
					session.Name, pe.ExerciseName)
			}
		}
	}
}

func Test_ListProfiles(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t)

	for _, name := range []string{"Maija", "Ville"} {
		if _, err := svc.CreateProfile(ctx, name); err != nil {
			t.Fatalf("Failed to create profile %q: %v", name, err)
		}
	}

	profiles, err := svc.ListProfiles(ctx)
	if err != nil {
		t.Fatalf("Failed to list profiles: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("got %d profiles, want 2", len(profiles))
	}
	if profiles[0].DaysPerWeek != 3 || profiles[0].MinutesPerSession != 60 {
		t.Errorf("profile defaults = %d days, %d minutes, want 3 days, 60 minutes",
			profiles[0].DaysPerWeek, profiles[0].MinutesPerSession)
	}
}
