package rehab

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mlahtinen/liftplan/internal/program"
	"github.com/mlahtinen/liftplan/internal/testhelpers"
)

// fakeHistory is an in-memory HistoryStore.
type fakeHistory struct {
	entries map[string]time.Time
	failing bool
}

func (f *fakeHistory) Get(_ context.Context) (map[string]time.Time, error) {
	if f.failing {
		return nil, errors.New("store unavailable")
	}
	return f.entries, nil
}

func (f *fakeHistory) RecordDone(_ context.Context, names []string) error {
	if f.failing {
		return errors.New("store unavailable")
	}
	now := time.Now()
	for _, name := range names {
		f.entries[name] = now
	}
	return nil
}

func newTestSelector(t *testing.T, history *fakeHistory) *Selector {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	return NewSelector(history, logger)
}

func rehabCandidates() []program.Exercise {
	return []program.Exercise{
		{ID: 1, Name: "Cat-Cow Stretch", RehabTarget: program.ZoneLowerBack, Rehab: true},
		{ID: 2, Name: "Chin Tuck", RehabTarget: program.ZoneNeck, Rehab: true},
		{ID: 3, Name: "Shoulder Pendulum", RehabTarget: program.ZoneShoulder, Rehab: true},
		{ID: 4, Name: "Foam Rolling Quads", RehabTarget: program.ZoneKnee, Rehab: true},
		{ID: 5, Name: "Median Nerve Glide", RehabTarget: program.ZoneWrist, Rehab: true},
		{ID: 6, Name: "Lower Back Warm-Up Circuit", RehabTarget: program.ZoneLowerBack, Rehab: true},
		{ID: 7, Name: "Ankle Alphabet", RehabTarget: program.ZoneAnkle, Rehab: true},
		{ID: 8, Name: "Thoracic Extension Massage", RehabTarget: program.ZoneUpperBack, Rehab: true},
	}
}

func TestClassifyPriority(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		description string
		want        int
	}{
		{name: "Lower Back Warm-Up Circuit", want: priorityWarmUp},
		{name: "Median Nerve Glide", want: priorityWarmUp},
		{name: "Hip Mobilization Drill", want: priorityWarmUp},
		// Keywords in the description text classify too, not just the name.
		{name: "Ulnar Glide", description: "Gentle nerve mobilization for the ulnar nerve.", want: priorityWarmUp},
		{name: "Foam Rolling Quads", want: priorityMassage},
		{name: "Thoracic Extension Massage", want: priorityMassage},
		{name: "Quad Release", description: "Slow passes with a foam roller.", want: priorityMassage},
		{name: "Chin Tuck", want: priorityDefault},
		{name: "Chin Tuck", description: "Hold each repetition for five seconds.", want: priorityDefault},
	}

	for _, tc := range testCases {
		got := classifyPriority(program.Exercise{Name: tc.name, DescriptionMarkdown: tc.description})
		if got != tc.want {
			t.Errorf("classifyPriority(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}
}

// TestSelect_GuaranteesWarmUp verifies the priority-1 guarantee: whenever
// the pool holds a warm-up entry, the selection contains one, even when
// recency would push it out.
func TestSelect_GuaranteesWarmUp(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	// Every warm-up entry was done recently, everything else never.
	history := &fakeHistory{entries: map[string]time.Time{
		"Lower Back Warm-Up Circuit": time.Now(),
		"Median Nerve Glide":         time.Now().Add(-time.Hour),
	}}
	selector := newTestSelector(t, history)

	selected := selector.Select(ctx, rehabCandidates(), DefaultRotationSize)

	if len(selected) != DefaultRotationSize {
		t.Fatalf("got %d exercises, want %d", len(selected), DefaultRotationSize)
	}
	hasWarmUp := false
	for _, ex := range selected {
		if classifyPriority(ex) == priorityWarmUp {
			hasWarmUp = true
		}
	}
	if !hasWarmUp {
		t.Error("selection has no warm-up entry despite the pool holding two")
	}
}

// TestSelect_StalenessDominates verifies that never-done entries sort ahead
// of recently done ones.
func TestSelect_StalenessDominates(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	history := &fakeHistory{entries: map[string]time.Time{
		"Cat-Cow Stretch":   time.Now(),
		"Chin Tuck":         time.Now(),
		"Shoulder Pendulum": time.Now(),
	}}
	selector := newTestSelector(t, history)

	selected := selector.Select(ctx, rehabCandidates(), DefaultRotationSize)

	for _, ex := range selected {
		switch ex.Name {
		case "Cat-Cow Stretch", "Chin Tuck", "Shoulder Pendulum":
			t.Errorf("recently done %q selected ahead of never-done candidates", ex.Name)
		}
	}
}

// TestSelect_FailingStore verifies that a broken history store degrades to
// empty history instead of failing the selection.
func TestSelect_FailingStore(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	selector := newTestSelector(t, &fakeHistory{failing: true})

	selected := selector.Select(ctx, rehabCandidates(), DefaultRotationSize)
	if len(selected) != DefaultRotationSize {
		t.Errorf("got %d exercises, want %d despite the failing store", len(selected), DefaultRotationSize)
	}

	// RecordDone must swallow the fault too.
	selector.RecordDone(ctx, []string{"Cat-Cow Stretch"})
}

func TestSelect_EmptyAndBoundedInputs(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	selector := newTestSelector(t, &fakeHistory{entries: map[string]time.Time{}})

	if got := selector.Select(ctx, nil, DefaultRotationSize); got != nil {
		t.Errorf("Select with no candidates = %v, want nil", got)
	}
	if got := selector.Select(ctx, rehabCandidates(), 0); got != nil {
		t.Errorf("Select with zero budget = %v, want nil", got)
	}
	if got := selector.Select(ctx, rehabCandidates()[:2], DefaultRotationSize); len(got) != 2 {
		t.Errorf("Select with a small pool returned %d exercises, want 2", len(got))
	}
}

// TestSelectWithAccent verifies the reserved accent slots and the overall
// bound of accent plus general slots.
func TestSelectWithAccent(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	selector := newTestSelector(t, &fakeHistory{entries: map[string]time.Time{}})
	accent := []program.BodyZone{program.ZoneLowerBack}

	selected := selector.SelectWithAccent(ctx, rehabCandidates(), accent, DefaultRotationSize)

	if len(selected) > accentSlots+DefaultRotationSize {
		t.Fatalf("got %d exercises, want at most %d", len(selected), accentSlots+DefaultRotationSize)
	}

	accentCount := 0
	seen := map[string]bool{}
	for _, ex := range selected {
		if seen[ex.Name] {
			t.Errorf("%q selected twice", ex.Name)
		}
		seen[ex.Name] = true
		if ex.RehabTarget == program.ZoneLowerBack {
			accentCount++
		}
	}
	if accentCount < accentSlots {
		t.Errorf("got %d lower-back entries, want at least %d reserved", accentCount, accentSlots)
	}
}

func TestSelectWithAccent_NoZonesDegenerates(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	selector := newTestSelector(t, &fakeHistory{entries: map[string]time.Time{}})

	selected := selector.SelectWithAccent(ctx, rehabCandidates(), nil, DefaultRotationSize)
	if len(selected) != DefaultRotationSize {
		t.Errorf("got %d exercises, want %d", len(selected), DefaultRotationSize)
	}
}
