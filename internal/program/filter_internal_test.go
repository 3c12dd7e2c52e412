package program

import "testing"

// TestFilterByEquipment_Monotonic verifies that adding equipment never
// removes an already-eligible exercise.
func TestFilterByEquipment_Monotonic(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	equipmentSets := [][]Equipment{
		nil,
		{{Name: "dumbbell", Available: true}},
		{{Name: "dumbbell", Available: true}, {Name: "barbell", Available: true}},
		fullGym(),
	}

	previous := map[int]bool{}
	for _, equipment := range equipmentSets {
		eligible := map[int]bool{}
		for _, ex := range filterByEquipment(catalog, equipment) {
			eligible[ex.ID] = true
		}
		for id := range previous {
			if !eligible[id] {
				t.Errorf("exercise %d dropped after adding equipment", id)
			}
		}
		previous = eligible
	}
}

func TestFilterByEquipment_UnavailableDoesNotCount(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	equipment := []Equipment{{Name: "barbell", Available: false}}

	for _, ex := range filterByEquipment(catalog, equipment) {
		if len(ex.Equipment) != 0 {
			t.Errorf("%q requires equipment but passed the filter", ex.Name)
		}
	}
}

// TestApplyExclusions_StarvationGuard verifies that an exclusion list is
// ignored entirely when honoring it would leave fewer than the variety
// floor of non-rehab exercises.
func TestApplyExclusions_StarvationGuard(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()

	var nonRehabIDs []int
	for _, ex := range catalog {
		if !ex.Rehab {
			nonRehabIDs = append(nonRehabIDs, ex.ID)
		}
	}

	// Excluding a couple leaves plenty; the exclusion holds.
	few := nonRehabIDs[:2]
	remaining := applyExclusions(catalog, few)
	for _, ex := range remaining {
		if ex.ID == few[0] || ex.ID == few[1] {
			t.Errorf("exercise %d should have been excluded", ex.ID)
		}
	}

	// Excluding almost everything would starve the pool; the exclusion is
	// ignored and the full catalog comes back.
	starving := nonRehabIDs[:len(nonRehabIDs)-2]
	remaining = applyExclusions(catalog, starving)
	if len(remaining) != len(catalog) {
		t.Errorf("starving exclusion was honored: %d of %d exercises remain", len(remaining), len(catalog))
	}
}

func TestRemoveCardio(t *testing.T) {
	t.Parallel()

	for _, ex := range removeCardio(testCatalog()) {
		if ex.HasTag(tagCardio) {
			t.Errorf("cardio movement %q survived the strength filter", ex.Name)
		}
	}
}

func TestClassifyCatalog(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		pattern pattern
	}{
		{name: "Barbell Back Squat", pattern: patternSquat},
		{name: "Deadlift", pattern: patternHipHinge},
		{name: "Barbell Hip Thrust", pattern: patternHipThrust},
		{name: "Barbell Bench Press", pattern: patternHorizontalPush},
		{name: "Pike Push-Up", pattern: patternVerticalPush},
		{name: "Barbell Row", pattern: patternHorizontalPull},
		{name: "Lat Pulldown", pattern: patternVerticalPull},
		{name: "Walking Lunge", pattern: patternUnilateralLeg},
		{name: "Plank", pattern: patternCore},
		{name: "Biceps Curl", pattern: patternArms},
		{name: "Leg Curl", pattern: patternHamstringIsolation},
		{name: "Standing Calf Raise", pattern: patternCalves},
		{name: "Lateral Raise", pattern: patternShoulderIsolation},
	}

	byName := map[string]Exercise{}
	for _, ex := range testCatalog() {
		byName[ex.Name] = ex
	}

	for _, tc := range testCases {
		ex, ok := byName[tc.name]
		if !ok {
			t.Fatalf("test catalog is missing %q", tc.name)
		}
		if !ex.patterns.has(tc.pattern) {
			t.Errorf("%q is not classified into pattern %d", tc.name, tc.pattern)
		}
	}

	// Rehab and cardio entries never join ordinary pools.
	for _, name := range []string{"Cat-Cow Stretch", "Running"} {
		if byName[name].patterns != 0 {
			t.Errorf("%q should not be classified into any pattern", name)
		}
	}
}

func TestApplyIntensity(t *testing.T) {
	t.Parallel()

	compound := Exercise{Name: "Barbell Bench Press", Category: CategoryCompound}
	isolation := Exercise{Name: "Biceps Curl", Category: CategoryIsolation}
	isometric := Exercise{Name: "Plank", Category: CategoryCore, Tags: []string{"isometric"}}

	baseline := ProgramExercise{Sets: 3, TargetReps: 8, RestSeconds: 120}

	testCases := []struct {
		name      string
		exercise  Exercise
		intensity Intensity
		want      ProgramExercise
	}{
		{
			name:      "heavy clamps compound",
			exercise:  compound,
			intensity: IntensityHeavy,
			want:      ProgramExercise{Sets: 4, TargetReps: 6, RestSeconds: 150},
		},
		{
			name:      "volume raises compound reps and cuts rest",
			exercise:  compound,
			intensity: IntensityVolume,
			want:      ProgramExercise{Sets: 3, TargetReps: 12, RestSeconds: 90},
		},
		{
			name:      "moderate leaves compound baseline",
			exercise:  compound,
			intensity: IntensityModerate,
			want:      ProgramExercise{Sets: 3, TargetReps: 8, RestSeconds: 120},
		},
		{
			name:      "isolation gets volume treatment even in heavy sessions",
			exercise:  isolation,
			intensity: IntensityHeavy,
			want:      ProgramExercise{Sets: 3, TargetReps: 15, RestSeconds: 90},
		},
		{
			name:      "isometric is fixed and time-based",
			exercise:  isometric,
			intensity: IntensityHeavy,
			want:      ProgramExercise{Sets: 3, TargetReps: 30, RestSeconds: 60, TimeBased: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := applyIntensity(baseline, tc.exercise, tc.intensity)
			if got != tc.want {
				t.Errorf("applyIntensity = %+v, want %+v", got, tc.want)
			}
		})
	}
}
