package program

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/mlahtinen/liftplan/internal/sqlite"
)

// Service handles the business logic for program management.
type Service struct {
	repo         *repository
	logger       *slog.Logger
	openaiAPIKey string
	rng          *rand.Rand
}

// NewService creates a new program service.
func NewService(db *sqlite.Database, logger *slog.Logger, openaiAPIKey string) *Service {
	factory := newRepositoryFactory(db, logger)
	return &Service{
		repo:         factory.newRepository(),
		logger:       logger,
		openaiAPIKey: openaiAPIKey,
		rng:          nil,
	}
}

// CreateProfile adds a new local training profile.
func (s *Service) CreateProfile(ctx context.Context, name string) (Profile, error) {
	profile, err := s.repo.profiles.Create(ctx, name)
	if err != nil {
		return Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

// ListProfiles returns all local profiles.
func (s *Service) ListProfiles(ctx context.Context) ([]Profile, error) {
	profiles, err := s.repo.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// GetProfile retrieves a profile by ID.
func (s *Service) GetProfile(ctx context.Context, id int) (Profile, error) {
	profile, err := s.repo.profiles.Get(ctx, id)
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// SavePreferences saves the schedule preferences of a profile.
func (s *Service) SavePreferences(ctx context.Context, profileID int, prefs Preferences) error {
	if prefs.DaysPerWeek < 1 || prefs.DaysPerWeek > 7 {
		return fmt.Errorf("days per week %d out of range", prefs.DaysPerWeek)
	}
	if prefs.MinutesPerSession < 1 {
		return fmt.Errorf("minutes per session %d out of range", prefs.MinutesPerSession)
	}
	if err := s.repo.profiles.SavePreferences(ctx, profileID, prefs); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// ListEquipment returns the equipment entries of a profile.
func (s *Service) ListEquipment(ctx context.Context, profileID int) ([]Equipment, error) {
	equipment, err := s.repo.profiles.ListEquipment(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	return equipment, nil
}

// SetEquipment upserts one equipment entry of a profile.
func (s *Service) SetEquipment(ctx context.Context, profileID int, eq Equipment) error {
	if eq.Name == "" {
		return errors.New("equipment name cannot be empty")
	}
	if err := s.repo.profiles.SetEquipment(ctx, profileID, eq); err != nil {
		return fmt.Errorf("set equipment: %w", err)
	}
	return nil
}

// RemoveEquipment deletes one equipment entry of a profile.
func (s *Service) RemoveEquipment(ctx context.Context, profileID int, name string) error {
	if err := s.repo.profiles.RemoveEquipment(ctx, profileID, name); err != nil {
		return fmt.Errorf("remove equipment: %w", err)
	}
	return nil
}

// ListConditions returns the health conditions of a profile.
func (s *Service) ListConditions(ctx context.Context, profileID int) ([]HealthCondition, error) {
	conditions, err := s.repo.profiles.ListConditions(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("list conditions: %w", err)
	}
	return conditions, nil
}

// SaveCondition inserts or updates a health condition of a profile.
func (s *Service) SaveCondition(ctx context.Context, profileID int, c HealthCondition) error {
	if c.PainLevel < 0 || c.PainLevel > 10 {
		return fmt.Errorf("pain level %d out of range", c.PainLevel)
	}
	if err := s.repo.profiles.SaveCondition(ctx, profileID, c); err != nil {
		return fmt.Errorf("save condition: %w", err)
	}
	return nil
}

// ActiveProgram returns the profile's active program, or ErrNotFound when
// none has been generated yet.
func (s *Service) ActiveProgram(ctx context.Context, profileID int) (Program, error) {
	p, err := s.repo.programs.GetActive(ctx, profileID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Program{}, ErrNotFound
		}
		return Program{}, fmt.Errorf("get active program: %w", err)
	}
	return p, nil
}

// GenerateProgram builds a fresh program for the profile and makes it the
// active one, deactivating any prior program.
func (s *Service) GenerateProgram(ctx context.Context, profileID int) (Program, error) {
	return s.generateAndPersist(ctx, profileID, nil)
}

// RegenerateProgram builds a fresh program while excluding the active
// program's exercise selection, so a refresh actually produces variation.
func (s *Service) RegenerateProgram(ctx context.Context, profileID int) (Program, error) {
	var excluded []int
	prior, err := s.repo.programs.GetActive(ctx, profileID)
	switch {
	case errors.Is(err, ErrNotFound):
		// First generation, nothing to vary against.
	case err != nil:
		return Program{}, fmt.Errorf("get active program: %w", err)
	default:
		excluded = prior.ExerciseIDs()
	}
	return s.generateAndPersist(ctx, profileID, excluded)
}

func (s *Service) generateAndPersist(ctx context.Context, profileID int, excludedIDs []int) (Program, error) {
	profile, err := s.repo.profiles.Get(ctx, profileID)
	if err != nil {
		return Program{}, fmt.Errorf("get profile: %w", err)
	}

	catalog, err := s.repo.exercises.List(ctx)
	if err != nil {
		return Program{}, fmt.Errorf("list exercises: %w", err)
	}

	conditions, err := s.repo.profiles.ListConditions(ctx, profileID)
	if err != nil {
		return Program{}, fmt.Errorf("list conditions: %w", err)
	}

	equipment, err := s.repo.profiles.ListEquipment(ctx, profileID)
	if err != nil {
		return Program{}, fmt.Errorf("list equipment: %w", err)
	}

	generated := generateProgram(generationInput{
		catalog:     ClassifyCatalog(catalog),
		conditions:  conditions,
		equipment:   equipment,
		prefs:       profile.Preferences,
		excludedIDs: excludedIDs,
		rng:         s.rng,
	})

	persisted, err := s.repo.programs.SaveActive(ctx, profileID, generated)
	if err != nil {
		return Program{}, fmt.Errorf("save program: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "generated program",
		slog.Int("profile_id", profileID),
		slog.String("split", string(persisted.SplitType)),
		slog.Int("sessions", len(persisted.Sessions)))

	return persisted, nil
}

// ListExercises returns the whole exercise catalog.
func (s *Service) ListExercises(ctx context.Context) ([]Exercise, error) {
	exercises, err := s.repo.exercises.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// GetExercise retrieves one catalog entry.
func (s *Service) GetExercise(ctx context.Context, id int) (Exercise, error) {
	ex, err := s.repo.exercises.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Exercise{}, ErrNotFound
		}
		return Exercise{}, fmt.Errorf("get exercise: %w", err)
	}
	return ex, nil
}

// DescribeExercise returns the exercise's markdown description, generating
// and persisting one when the catalog entry has none and an OpenAI API key
// is configured.
func (s *Service) DescribeExercise(ctx context.Context, id int) (Exercise, error) {
	ex, err := s.GetExercise(ctx, id)
	if err != nil {
		return Exercise{}, err
	}
	if ex.DescriptionMarkdown != "" || s.openaiAPIKey == "" {
		return ex, nil
	}

	generator := newExerciseGenerator(s.openaiAPIKey)
	markdown, err := generator.GenerateDescription(ctx, ex.Name)
	if err != nil {
		// Generation is best-effort enrichment; the bare entry is still
		// useful.
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to generate exercise description",
			slog.Any("error", err), slog.String("name", ex.Name))
		return ex, nil
	}

	if err = s.repo.exercises.UpdateDescription(ctx, ex.ID, markdown); err != nil {
		return Exercise{}, fmt.Errorf("update description: %w", err)
	}
	ex.DescriptionMarkdown = markdown
	return ex, nil
}

// AddGeneratedExercise asks the configured model for catalog metadata for an
// unknown exercise name and persists the result.
func (s *Service) AddGeneratedExercise(ctx context.Context, name string) (Exercise, error) {
	if s.openaiAPIKey == "" {
		return Exercise{}, errors.New("no OpenAI API key configured")
	}

	generator := newExerciseGenerator(s.openaiAPIKey)
	generated, err := generator.GenerateExercise(ctx, name)
	if err != nil {
		return Exercise{}, fmt.Errorf("generate exercise: %w", err)
	}

	persisted, err := s.repo.exercises.Create(ctx, generated)
	if err != nil {
		return Exercise{}, fmt.Errorf("create exercise: %w", err)
	}
	return persisted, nil
}
