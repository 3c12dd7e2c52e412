package program

import "math"

// Duration-estimate and trim-floor constants. The floors are empirically
// chosen; lowering them changes user-visible program composition.
const (
	setWorkSeconds      = 35
	transitionSeconds   = 90
	overheadMinutes     = 10
	trimFloorExercises  = 4
	finalFloorExercises = 3
	trimFloorSets       = 2
	restCutSeconds      = 30
	lateRestFloorSec    = 45
	earlyRestFloorSec   = 90
	leadExerciseCount   = 3
)

// estimateSessionMinutes estimates the wall-clock duration of a session:
// per exercise, sets x (work + rest) plus a transition, plus a fixed
// warm-up/cool-down overhead, rounded to the minute.
func estimateSessionMinutes(session Session) int {
	seconds := 0
	for _, ex := range session.Exercises {
		seconds += ex.Sets*(setWorkSeconds+ex.RestSeconds) + transitionSeconds
	}
	return overheadMinutes + int(math.Round(float64(seconds)/60.0))
}

// adjustSessionToTimeBudget shrinks a session until its estimated duration
// fits the budget, in fixed phases: drop exercises from the end, reduce
// sets, cut rest on the later exercises, cut rest on the first compounds,
// then drop one more exercise. It never scales a short session up, and a
// session still nominally over budget after the final phase is accepted
// as-is.
func adjustSessionToTimeBudget(session Session, minutesPerSession int) Session {
	if minutesPerSession <= 0 {
		return session
	}

	overBudget := func() bool {
		return estimateSessionMinutes(session) > minutesPerSession
	}

	// Phase 1: drop exercises from the end down to the floor.
	for overBudget() && len(session.Exercises) > trimFloorExercises {
		session.Exercises = session.Exercises[:len(session.Exercises)-1]
	}

	// Phase 2: shave one set off every exercise, repeatedly, down to the
	// set floor.
	for overBudget() && reduceSets(session.Exercises) {
	}

	// Phase 3: cut rest on exercises past the lead compounds.
	for overBudget() && cutRest(session.Exercises, leadExerciseCount, len(session.Exercises), lateRestFloorSec) {
	}

	// Phase 4: cut rest on the lead compounds, with a higher floor.
	for overBudget() && cutRest(session.Exercises, 0, leadExerciseCount, earlyRestFloorSec) {
	}

	// Phase 5: drop one more exercise down to the absolute floor.
	for overBudget() && len(session.Exercises) > finalFloorExercises {
		session.Exercises = session.Exercises[:len(session.Exercises)-1]
	}

	renumberExercises(session.Exercises)
	return session
}

// reduceSets removes one set from every exercise above the floor. Returns
// false when nothing could be reduced.
func reduceSets(exercises []ProgramExercise) bool {
	reduced := false
	for i := range exercises {
		if exercises[i].Sets > trimFloorSets {
			exercises[i].Sets--
			reduced = true
		}
	}
	return reduced
}

// cutRest shortens rest by one cut on exercises in [from, to) that stay at
// or above the floor. Returns false when nothing could be cut.
func cutRest(exercises []ProgramExercise, from, to, floorSec int) bool {
	cut := false
	for i := from; i < to && i < len(exercises); i++ {
		if exercises[i].RestSeconds-restCutSeconds >= floorSec {
			exercises[i].RestSeconds -= restCutSeconds
			cut = true
		}
	}
	return cut
}
