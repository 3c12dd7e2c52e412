package program

// Weekly frequency thresholds for split determination.
const (
	maxFullBodyDays   = 3
	upperLowerDays    = 4
	severePainLevel   = 7
	hingeRedirectPain = 6
)

// determineSplit maps weekly frequency to a training-split archetype.
func determineSplit(daysPerWeek int) SplitType {
	switch {
	case daysPerWeek <= maxFullBodyDays:
		return SplitFullBody
	case daysPerWeek == upperLowerDays:
		return SplitUpperLower
	default:
		return SplitPushPullLegs
	}
}

// sessionTemplates returns the ordered session blueprints for a split,
// truncated to the requested weekly frequency. The intensity labels
// alternate heavy/volume across the week (daily undulating periodization),
// with a moderate third full-body day.
//
// hinge is the pattern hip-hinge slots draw from. Callers pass
// patternHipThrust instead of patternHipHinge when lower-back pain forces
// the hinge substitution.
func sessionTemplates(split SplitType, daysPerWeek int, hinge pattern) []sessionTemplate {
	var templates []sessionTemplate
	switch split {
	case SplitFullBody:
		templates = fullBodyTemplates(hinge)
	case SplitUpperLower:
		templates = upperLowerTemplates(hinge)
	case SplitPushPullLegs:
		templates = pushPullLegsTemplates(hinge)
	default:
		return nil
	}

	if daysPerWeek < len(templates) {
		templates = templates[:daysPerWeek]
	}
	return templates
}

func fullBodyTemplates(hinge pattern) []sessionTemplate {
	return []sessionTemplate{
		{
			name:      "Full Body A",
			intensity: IntensityHeavy,
			slots: []slot{
				{role: "squat", pool: byPattern(patternSquat), preferredName: "Barbell Back Squat", sets: 4, reps: 5, restSeconds: 180},
				{role: "horizontal push", pool: byPattern(patternHorizontalPush), preferredName: "Barbell Bench Press", sets: 4, reps: 5, restSeconds: 180},
				{role: "horizontal pull", pool: byPattern(patternHorizontalPull), preferredName: "Barbell Row", sets: 4, reps: 6, restSeconds: 150},
				{role: "hip hinge", pool: byPattern(hinge), sets: 3, reps: 8, restSeconds: 120},
				{role: "core", pool: byPattern(patternCore), sets: 3, reps: 12, restSeconds: 60},
			},
		},
		{
			name:      "Full Body B",
			intensity: IntensityVolume,
			slots: []slot{
				{role: "hip hinge", pool: byPattern(hinge), preferredName: "Romanian Deadlift", sets: 3, reps: 10, restSeconds: 90},
				{role: "vertical push", pool: byPattern(patternVerticalPush), sets: 3, reps: 10, restSeconds: 90},
				{role: "vertical pull", pool: byPattern(patternVerticalPull), sets: 3, reps: 10, restSeconds: 90},
				{role: "unilateral leg", pool: byPattern(patternUnilateralLeg), sets: 3, reps: 10, restSeconds: 90},
				{role: "core", pool: byPattern(patternCore), sets: 3, reps: 12, restSeconds: 60},
				{role: "arms", pool: byPattern(patternArms), sets: 3, reps: 12, restSeconds: 60},
			},
		},
		{
			name:      "Full Body C",
			intensity: IntensityModerate,
			slots: []slot{
				{role: "squat", pool: byPattern(patternSquat), preferredName: "Goblet Squat", sets: 3, reps: 8, restSeconds: 120},
				{role: "horizontal push", pool: byPattern(patternHorizontalPush), preferredName: "Dumbbell Bench Press", sets: 3, reps: 8, restSeconds: 120},
				{role: "horizontal pull", pool: byPattern(patternHorizontalPull), sets: 3, reps: 8, restSeconds: 120},
				{role: "shoulders", pool: byPattern(patternShoulderIsolation), sets: 3, reps: 12, restSeconds: 60},
				{role: "calves", pool: byPattern(patternCalves), sets: 3, reps: 12, restSeconds: 60},
				{role: "core", pool: byPattern(patternCore), sets: 3, reps: 12, restSeconds: 60},
			},
		},
	}
}

func upperLowerTemplates(hinge pattern) []sessionTemplate {
	return []sessionTemplate{
		{
			name:      "Upper A",
			intensity: IntensityHeavy,
			slots: []slot{
				{role: "horizontal push", pool: byPattern(patternHorizontalPush), preferredName: "Barbell Bench Press", sets: 4, reps: 5, restSeconds: 180},
				{role: "horizontal pull", pool: byPattern(patternHorizontalPull), preferredName: "Barbell Row", sets: 4, reps: 5, restSeconds: 180},
				{role: "vertical push", pool: byPattern(patternVerticalPush), sets: 3, reps: 8, restSeconds: 120},
				{role: "vertical pull", pool: byPattern(patternVerticalPull), sets: 3, reps: 8, restSeconds: 120},
				{role: "arms", pool: byPattern(patternArms), sets: 3, reps: 12, restSeconds: 60},
			},
		},
		{
			name:      "Lower A",
			intensity: IntensityHeavy,
			slots: []slot{
				{role: "squat", pool: byPattern(patternSquat), preferredName: "Barbell Back Squat", sets: 4, reps: 5, restSeconds: 180},
				{role: "hip hinge", pool: byPattern(hinge), preferredName: "Deadlift", sets: 4, reps: 5, restSeconds: 180},
				{role: "unilateral leg", pool: byPattern(patternUnilateralLeg), sets: 3, reps: 8, restSeconds: 120},
				{role: "calves", pool: byPattern(patternCalves), sets: 3, reps: 12, restSeconds: 60},
				{role: "core", pool: byPattern(patternCore), sets: 3, reps: 12, restSeconds: 60},
			},
		},
		{
			name:      "Upper B",
			intensity: IntensityVolume,
			slots: []slot{
				{role: "vertical push", pool: byPattern(patternVerticalPush), preferredName: "Dumbbell Shoulder Press", sets: 3, reps: 10, restSeconds: 90},
				{role: "vertical pull", pool: byPattern(patternVerticalPull), sets: 3, reps: 10, restSeconds: 90},
				{role: "horizontal push", pool: byPattern(patternHorizontalPush), sets: 3, reps: 10, restSeconds: 90},
				{role: "horizontal pull", pool: byPattern(patternHorizontalPull), sets: 3, reps: 10, restSeconds: 90},
				{role: "shoulders", pool: byPattern(patternShoulderIsolation), sets: 3, reps: 15, restSeconds: 60},
				{role: "arms", pool: byPattern(patternArms), sets: 3, reps: 15, restSeconds: 60},
			},
		},
		{
			name:      "Lower B",
			intensity: IntensityVolume,
			slots: []slot{
				{role: "hip hinge", pool: byPattern(hinge), preferredName: "Romanian Deadlift", sets: 3, reps: 10, restSeconds: 90},
				{role: "squat", pool: byPattern(patternSquat), preferredName: "Leg Press", sets: 3, reps: 10, restSeconds: 90},
				{role: "unilateral leg", pool: byPattern(patternUnilateralLeg), sets: 3, reps: 10, restSeconds: 90},
				{role: "hamstrings", pool: byPattern(patternHamstringIsolation), sets: 3, reps: 12, restSeconds: 60},
				{role: "core", pool: byPattern(patternCore), sets: 3, reps: 12, restSeconds: 60},
			},
		},
	}
}

func pushPullLegsTemplates(hinge pattern) []sessionTemplate {
	return []sessionTemplate{
		{
			name:      "Push A",
			intensity: IntensityHeavy,
			slots: []slot{
				{role: "horizontal push", pool: byPattern(patternHorizontalPush), preferredName: "Barbell Bench Press", sets: 4, reps: 5, restSeconds: 180},
				{role: "vertical push", pool: byPattern(patternVerticalPush), preferredName: "Overhead Press", sets: 4, reps: 6, restSeconds: 150},
				{role: "horizontal push", pool: byPattern(patternHorizontalPush), sets: 3, reps: 8, restSeconds: 120},
				{role: "shoulders", pool: byPattern(patternShoulderIsolation), sets: 3, reps: 12, restSeconds: 60},
				{role: "arms", pool: byPattern(patternArms), sets: 3, reps: 12, restSeconds: 60},
			},
		},
		{
			name:      "Pull A",
			intensity: IntensityHeavy,
			slots: []slot{
				{role: "hip hinge", pool: byPattern(hinge), preferredName: "Deadlift", sets: 4, reps: 5, restSeconds: 180},
				{role: "horizontal pull", pool: byPattern(patternHorizontalPull), preferredName: "Barbell Row", sets: 4, reps: 6, restSeconds: 150},
				{role: "vertical pull", pool: byPattern(patternVerticalPull), sets: 3, reps: 8, restSeconds: 120},
				{role: "arms", pool: byPattern(patternArms), sets: 3, reps: 12, restSeconds: 60},
				{role: "core", pool: byPattern(patternCore), sets: 3, reps: 12, restSeconds: 60},
			},
		},
		{
			name:      "Legs A",
			intensity: IntensityHeavy,
			slots: []slot{
				{role: "squat", pool: byPattern(patternSquat), preferredName: "Barbell Back Squat", sets: 4, reps: 5, restSeconds: 180},
				{role: "hip hinge", pool: byPattern(hinge), preferredName: "Romanian Deadlift", sets: 3, reps: 8, restSeconds: 120},
				{role: "unilateral leg", pool: byPattern(patternUnilateralLeg), sets: 3, reps: 8, restSeconds: 120},
				{role: "calves", pool: byPattern(patternCalves), sets: 3, reps: 12, restSeconds: 60},
				{role: "core", pool: byPattern(patternCore), sets: 3, reps: 12, restSeconds: 60},
			},
		},
		{
			name:      "Push B",
			intensity: IntensityVolume,
			slots: []slot{
				{role: "vertical push", pool: byPattern(patternVerticalPush), sets: 3, reps: 10, restSeconds: 90},
				{role: "horizontal push", pool: byPattern(patternHorizontalPush), sets: 3, reps: 10, restSeconds: 90},
				{role: "shoulders", pool: byPattern(patternShoulderIsolation), sets: 3, reps: 15, restSeconds: 60},
				{role: "arms", pool: byPattern(patternArms), sets: 3, reps: 15, restSeconds: 60},
			},
		},
		{
			name:      "Pull B",
			intensity: IntensityVolume,
			slots: []slot{
				{role: "vertical pull", pool: byPattern(patternVerticalPull), sets: 3, reps: 10, restSeconds: 90},
				{role: "horizontal pull", pool: byPattern(patternHorizontalPull), sets: 3, reps: 10, restSeconds: 90},
				{role: "arms", pool: byPattern(patternArms), sets: 3, reps: 15, restSeconds: 60},
				{role: "core", pool: byPattern(patternCore), sets: 3, reps: 12, restSeconds: 60},
			},
		},
		{
			name:      "Legs B",
			intensity: IntensityVolume,
			slots: []slot{
				{role: "squat", pool: byPattern(patternSquat), preferredName: "Leg Press", sets: 3, reps: 10, restSeconds: 90},
				{role: "hip hinge", pool: byPattern(hinge), sets: 3, reps: 10, restSeconds: 90},
				{role: "unilateral leg", pool: byPattern(patternUnilateralLeg), sets: 3, reps: 10, restSeconds: 90},
				{role: "hamstrings", pool: byPattern(patternHamstringIsolation), sets: 3, reps: 12, restSeconds: 60},
				{role: "core", pool: byPattern(patternCore), sets: 3, reps: 12, restSeconds: 60},
			},
		},
	}
}
