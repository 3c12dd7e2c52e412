package program

import "strings"

// Fixed special-case programs bypass the slot logic entirely and are built
// by direct name lookup against the filtered catalog. A name missing from
// the catalog is simply dropped.

// fixedEntry is one prescribed exercise of a fixed session.
type fixedEntry struct {
	name        string
	sets        int
	reps        int
	restSeconds int
}

type fixedSession struct {
	name    string
	entries []fixedEntry
}

// hasMedicalRestriction reports whether any active condition's diagnosis
// names a spondylolisthesis/spondylolysis finding, which forces the fixed
// low-spinal-load program.
func (g *generator) hasMedicalRestriction() bool {
	for _, c := range g.conditions {
		if strings.Contains(strings.ToLower(c.Diagnosis), "spondylo") {
			return true
		}
	}
	return false
}

// medicalSessions is the fixed 2-session low-spinal-load program.
func medicalSessions() []fixedSession {
	return []fixedSession{
		{
			name: "Core Stability A",
			entries: []fixedEntry{
				{name: "Dead Bug", sets: 3, reps: 10, restSeconds: 60},
				{name: "Bird Dog", sets: 3, reps: 10, restSeconds: 60},
				{name: "Glute Bridge", sets: 3, reps: 12, restSeconds: 60},
				{name: "Side Plank", sets: 3, reps: 10, restSeconds: 60},
				{name: "Wall Sit", sets: 3, reps: 10, restSeconds: 60},
			},
		},
		{
			name: "Core Stability B",
			entries: []fixedEntry{
				{name: "McGill Curl-Up", sets: 3, reps: 8, restSeconds: 60},
				{name: "Bird Dog", sets: 3, reps: 10, restSeconds: 60},
				{name: "Glute Bridge", sets: 3, reps: 12, restSeconds: 60},
				{name: "Step-Up", sets: 3, reps: 10, restSeconds: 60},
				{name: "Plank", sets: 3, reps: 10, restSeconds: 60},
			},
		},
	}
}

// bodyweightSessions is the fixed 3-session program for profiles with no
// available equipment at all.
func bodyweightSessions() []fixedSession {
	return []fixedSession{
		{
			name: "Bodyweight A",
			entries: []fixedEntry{
				{name: "Bodyweight Squat", sets: 3, reps: 15, restSeconds: 60},
				{name: "Push-Up", sets: 3, reps: 12, restSeconds: 60},
				{name: "Inverted Row", sets: 3, reps: 10, restSeconds: 60},
				{name: "Plank", sets: 3, reps: 10, restSeconds: 60},
			},
		},
		{
			name: "Bodyweight B",
			entries: []fixedEntry{
				{name: "Reverse Lunge", sets: 3, reps: 12, restSeconds: 60},
				{name: "Pike Push-Up", sets: 3, reps: 10, restSeconds: 60},
				{name: "Glute Bridge", sets: 3, reps: 15, restSeconds: 60},
				{name: "Dead Bug", sets: 3, reps: 10, restSeconds: 60},
			},
		},
		{
			name: "Bodyweight C",
			entries: []fixedEntry{
				{name: "Step-Up", sets: 3, reps: 12, restSeconds: 60},
				{name: "Push-Up", sets: 3, reps: 12, restSeconds: 60},
				{name: "Bodyweight Squat", sets: 3, reps: 15, restSeconds: 60},
				{name: "Side Plank", sets: 3, reps: 10, restSeconds: 60},
			},
		},
	}
}

// buildFixedProgram assembles a fixed program against the filtered catalog.
func (g *generator) buildFixedProgram(split SplitType, sessions []fixedSession) Program {
	program := Program{
		Name:      programName(split),
		SplitType: split,
	}

	for i, fs := range sessions {
		session := Session{
			Name:       fs.name,
			OrderIndex: i,
		}
		for _, entry := range fs.entries {
			ex, ok := g.lookupByName(entry.name)
			if !ok || g.severeContraindicated(ex) {
				continue
			}
			pe := ProgramExercise{
				ExerciseID:   ex.ID,
				ExerciseName: ex.Name,
				Sets:         entry.sets,
				TargetReps:   entry.reps,
				RestSeconds:  entry.restSeconds,
				Rehab:        ex.Rehab,
			}
			if ex.HasTag(tagIsometric) {
				pe.Sets = isometricSets
				pe.TargetReps = isometricHoldSec
				pe.RestSeconds = isometricRestSec
				pe.TimeBased = true
			}
			session.Exercises = append(session.Exercises, pe)
		}
		renumberExercises(session.Exercises)
		program.Sessions = append(program.Sessions, session)
	}

	return program
}

// severeContraindicated reports whether the exercise is contraindicated for
// any zone excluded at severe pain. The fixed programs honor the hard
// exclusion the same way the slot pipeline does.
func (g *generator) severeContraindicated(ex Exercise) bool {
	for _, zone := range ex.Contraindications {
		if g.severe[zone] {
			return true
		}
	}
	return false
}

// lookupByName finds an eligible exercise by exact case-insensitive name.
func (g *generator) lookupByName(name string) (Exercise, bool) {
	want := strings.ToLower(name)
	for _, ex := range g.eligible {
		if strings.ToLower(ex.Name) == want {
			return ex, true
		}
	}
	return Exercise{}, false
}
