package program

// Intensity rewrite constants. All clamps against the slot baseline, never
// unconditional overwrites.
const (
	heavyMaxReps      = 6
	heavyMinRestSec   = 150
	heavyMinSets      = 4
	volumeMinRepsComp = 12
	volumeMinRepsIso  = 15
	volumeMaxRestSec  = 90
	isometricSets     = 3
	isometricHoldSec  = 30
	isometricRestSec  = 60
)

// applyIntensity rewrites the baseline prescription for the session's
// periodization label and the exercise's category.
func applyIntensity(pe ProgramExercise, ex Exercise, intensity Intensity) ProgramExercise {
	// Isometric holds keep a fixed prescription in every session; reps mean
	// hold-seconds.
	if ex.HasTag(tagIsometric) {
		pe.Sets = isometricSets
		pe.TargetReps = isometricHoldSec
		pe.RestSeconds = isometricRestSec
		pe.TimeBased = true
		return pe
	}

	compound := ex.Category == CategoryCompound

	if intensity == IntensityHeavy && compound {
		pe.TargetReps = min(pe.TargetReps, heavyMaxReps)
		pe.RestSeconds = max(pe.RestSeconds, heavyMinRestSec)
		pe.Sets = max(pe.Sets, heavyMinSets)
		return pe
	}

	// Volume sessions push everything towards higher reps and shorter rest.
	// Isolation and core work gets the same treatment in every session.
	if intensity == IntensityVolume || !compound {
		minReps := volumeMinRepsComp
		if ex.Category == CategoryIsolation {
			minReps = volumeMinRepsIso
		}
		pe.TargetReps = max(pe.TargetReps, minReps)
		pe.RestSeconds = min(pe.RestSeconds, volumeMaxRestSec)
	}

	return pe
}
