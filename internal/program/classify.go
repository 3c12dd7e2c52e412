package program

import "strings"

// pattern identifies a movement-pattern pool that session slots draw
// candidates from.
type pattern int

const (
	patternSquat pattern = iota
	patternHipHinge
	patternHipThrust
	patternHorizontalPush
	patternVerticalPush
	patternHorizontalPull
	patternVerticalPull
	patternUnilateralLeg
	patternCore
	patternArms
	patternShoulderIsolation
	patternHamstringIsolation
	patternCalves
)

// patternSet is a small bitmask over the pattern constants.
type patternSet uint32

func (s patternSet) has(p pattern) bool {
	return s&(1<<uint(p)) != 0
}

func (s *patternSet) add(p pattern) {
	*s |= 1 << uint(p)
}

// Free-text tags with allocation semantics.
const (
	tagCardio     = "cardio"
	tagIsometric  = "isometric"
	tagUnilateral = "unilateral"
)

// ClassifyCatalog computes the movement-pattern classification for every
// exercise and caches it on the returned copies. It runs once when the
// catalog is loaded so the slot pools never repeat the string matching.
func ClassifyCatalog(catalog []Exercise) []Exercise {
	classified := make([]Exercise, len(catalog))
	for i, ex := range catalog {
		ex.patterns = classifyExercise(ex)
		classified[i] = ex
	}
	return classified
}

// classifyExercise derives the pattern set from name keywords, muscle tags
// and free-text tags. Rehab entries never join ordinary pools.
func classifyExercise(ex Exercise) patternSet {
	var set patternSet
	if ex.Rehab || ex.HasTag(tagCardio) {
		return set
	}

	name := strings.ToLower(ex.Name)
	unilateral := ex.HasTag(tagUnilateral)

	switch {
	case unilateral && (hasMuscle(ex, "quadriceps") || hasMuscle(ex, "glutes")):
		set.add(patternUnilateralLeg)
	case strings.Contains(name, "squat") || strings.Contains(name, "leg press"):
		set.add(patternSquat)
	case strings.Contains(name, "hip thrust") || strings.Contains(name, "glute bridge"):
		set.add(patternHipThrust)
	case strings.Contains(name, "deadlift") || strings.Contains(name, "good morning") ||
		strings.Contains(name, "swing"):
		set.add(patternHipHinge)
	case strings.Contains(name, "pull-up") || strings.Contains(name, "chin-up") ||
		strings.Contains(name, "pulldown"):
		set.add(patternVerticalPull)
	case strings.Contains(name, "row"):
		set.add(patternHorizontalPull)
	case strings.Contains(name, "overhead") || strings.Contains(name, "shoulder press") ||
		strings.Contains(name, "pike"):
		set.add(patternVerticalPush)
	case hasMuscle(ex, "chest"):
		set.add(patternHorizontalPush)
	}

	if ex.Category == CategoryCore {
		set.add(patternCore)
	}

	if ex.Category == CategoryIsolation {
		switch {
		case hasMuscle(ex, "biceps") || hasMuscle(ex, "triceps"):
			set.add(patternArms)
		case hasMuscle(ex, "hamstrings"):
			set.add(patternHamstringIsolation)
		case hasMuscle(ex, "calves"):
			set.add(patternCalves)
		case hasMuscle(ex, "shoulders") || hasMuscle(ex, "rear delts"):
			set.add(patternShoulderIsolation)
		}
	}

	return set
}

// hasMuscle matches the muscle tag list by case-insensitive substring.
func hasMuscle(ex Exercise, muscle string) bool {
	for _, m := range ex.Muscles {
		if strings.Contains(strings.ToLower(m), muscle) {
			return true
		}
	}
	return false
}
