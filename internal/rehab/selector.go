// Package rehab schedules supplementary therapeutic routines, rotating
// through a candidate pool so nothing starves while high-priority work is
// always present.
package rehab

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/mlahtinen/liftplan/internal/program"
)

// DefaultRotationSize is the number of exercises one rotation holds.
const DefaultRotationSize = 5

// accentSlots is the number of slots reserved for accent-zone work before
// the general rotation is filled.
const accentSlots = 2

// Priority levels. Lower runs first.
const (
	priorityWarmUp  = 1
	priorityDefault = 2
	priorityMassage = 3
)

// HistoryStore persists when each exercise was last performed. The selector
// tolerates a failing store and proceeds with empty history.
type HistoryStore interface {
	Get(ctx context.Context) (map[string]time.Time, error)
	RecordDone(ctx context.Context, names []string) error
}

// Selector picks a bounded rotation of therapeutic exercises for a profile.
type Selector struct {
	history HistoryStore
	logger  *slog.Logger
}

// NewSelector creates a rotation selector on top of a history store.
func NewSelector(history HistoryStore, logger *slog.Logger) *Selector {
	return &Selector{
		history: history,
		logger:  logger,
	}
}

// ranked pairs a candidate with its rotation ordering inputs.
type ranked struct {
	exercise   program.Exercise
	lastDoneAt time.Time
	priority   int
}

// Select picks at most maxCount exercises, favoring those not performed
// recently, with priority breaking ties. Whenever the pool holds a
// priority-1 exercise, the result is guaranteed to contain one.
func (s *Selector) Select(ctx context.Context, candidates []program.Exercise, maxCount int) []program.Exercise {
	if maxCount <= 0 || len(candidates) == 0 {
		return nil
	}

	pool := s.rank(ctx, candidates)
	selected := take(pool, maxCount)
	selected = guaranteeWarmUp(selected, pool)

	return exercisesOf(selected)
}

// SelectWithAccent reserves slots for exercises targeting the accent zones
// before filling the general rotation. With no accent zones it degenerates
// to the plain selection.
func (s *Selector) SelectWithAccent(
	ctx context.Context,
	candidates []program.Exercise,
	accentZones []program.BodyZone,
	maxCount int,
) []program.Exercise {
	if len(accentZones) == 0 {
		return s.Select(ctx, candidates, maxCount)
	}
	if maxCount <= 0 || len(candidates) == 0 {
		return nil
	}

	accent := make(map[program.BodyZone]bool, len(accentZones))
	for _, zone := range accentZones {
		accent[zone] = true
	}

	pool := s.rank(ctx, candidates)

	var accentPool []ranked
	for _, r := range pool {
		if accent[r.exercise.RehabTarget] {
			accentPool = append(accentPool, r)
		}
	}
	selected := take(accentPool, accentSlots)
	selected = guaranteeWarmUp(selected, accentPool)

	chosen := make(map[string]bool, len(selected))
	for _, r := range selected {
		chosen[r.exercise.Name] = true
	}

	var generalPool []ranked
	for _, r := range pool {
		if !chosen[r.exercise.Name] {
			generalPool = append(generalPool, r)
		}
	}
	general := take(generalPool, maxCount)
	general = guaranteeWarmUp(general, generalPool)

	return exercisesOf(append(selected, general...))
}

// RecordDone stores now as the last-done timestamp for the given exercises.
// Storage faults are swallowed; losing a timestamp only skews the next
// rotation slightly.
func (s *Selector) RecordDone(ctx context.Context, names []string) {
	if len(names) == 0 {
		return
	}
	if err := s.history.RecordDone(ctx, names); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to record rehab history",
			slog.Any("error", err))
	}
}

// rank enriches candidates with history and priority, sorted ascending by
// (lastDoneAt, priority) so staleness dominates and priority breaks ties.
// Exercises never done sort first.
func (s *Selector) rank(ctx context.Context, candidates []program.Exercise) []ranked {
	history, err := s.history.Get(ctx)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to read rehab history",
			slog.Any("error", err))
		history = map[string]time.Time{}
	}

	pool := make([]ranked, 0, len(candidates))
	for _, ex := range candidates {
		pool = append(pool, ranked{
			exercise:   ex,
			lastDoneAt: history[ex.Name],
			priority:   classifyPriority(ex),
		})
	}

	sort.SliceStable(pool, func(i, j int) bool {
		if !pool[i].lastDoneAt.Equal(pool[j].lastDoneAt) {
			return pool[i].lastDoneAt.Before(pool[j].lastDoneAt)
		}
		return pool[i].priority < pool[j].priority
	})
	return pool
}

// classifyPriority assigns the rotation priority by keyword against the
// name and description text, first match wins in priority order.
func classifyPriority(ex program.Exercise) int {
	text := strings.ToLower(ex.Name + "\n" + ex.DescriptionMarkdown)
	switch {
	case strings.Contains(text, "warm-up"),
		strings.Contains(text, "warm up"),
		strings.Contains(text, "nerve"),
		strings.Contains(text, "mobiliz"):
		return priorityWarmUp
	case strings.Contains(text, "foam"),
		strings.Contains(text, "roll"),
		strings.Contains(text, "massage"):
		return priorityMassage
	default:
		return priorityDefault
	}
}

// guaranteeWarmUp force-replaces the last selected slot with the best
// unselected priority-1 candidate when the selection holds none but the
// pool does.
func guaranteeWarmUp(selected, pool []ranked) []ranked {
	if len(selected) == 0 {
		return selected
	}
	for _, r := range selected {
		if r.priority == priorityWarmUp {
			return selected
		}
	}

	inSelection := make(map[string]bool, len(selected))
	for _, r := range selected {
		inSelection[r.exercise.Name] = true
	}

	// Pool is already in rotation order, so the first match is the best.
	for _, r := range pool {
		if r.priority == priorityWarmUp && !inSelection[r.exercise.Name] {
			selected[len(selected)-1] = r
			return selected
		}
	}
	return selected
}

func take(pool []ranked, count int) []ranked {
	if count > len(pool) {
		count = len(pool)
	}
	selected := make([]ranked, count)
	copy(selected, pool[:count])
	return selected
}

func exercisesOf(pool []ranked) []program.Exercise {
	if len(pool) == 0 {
		return nil
	}
	exercises := make([]program.Exercise, 0, len(pool))
	for _, r := range pool {
		exercises = append(exercises, r.exercise)
	}
	return exercises
}
