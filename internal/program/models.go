// Package program generates personalized strength-training programs.
package program

// Category represents the type of exercise.
type Category string

const (
	CategoryCompound  Category = "compound"
	CategoryIsolation Category = "isolation"
	CategoryCore      Category = "core"
)

// BodyZone identifies a joint or region that a health condition can affect
// and that an exercise can be contraindicated for.
type BodyZone string

const (
	ZoneKnee      BodyZone = "knee"
	ZoneShoulder  BodyZone = "shoulder"
	ZoneElbow     BodyZone = "elbow"
	ZoneWrist     BodyZone = "wrist"
	ZoneAnkle     BodyZone = "ankle"
	ZoneHip       BodyZone = "hip"
	ZoneNeck      BodyZone = "neck"
	ZoneUpperBack BodyZone = "upper_back"
	ZoneLowerBack BodyZone = "lower_back"
	ZoneOther     BodyZone = "other"
)

// Exercise represents a single catalog entry, e.g. Squat, Bench Press, etc.
// Catalog entries are immutable at generation time.
type Exercise struct {
	ID                  int
	Name                string
	Category            Category
	DescriptionMarkdown string
	// Muscles are free-text tags matched by case-insensitive substring.
	Muscles []string
	// Equipment lists the equipment tags required. Empty means bodyweight,
	// always eligible.
	Equipment []string
	// Contraindications lists body zones this movement is unsafe for under
	// sufficient pain severity.
	Contraindications []BodyZone
	Rehab             bool
	// RehabTarget is set only when Rehab is true.
	RehabTarget BodyZone
	Tags        []string

	// patterns caches the movement-pattern classification computed by
	// ClassifyCatalog so the slot pools never redo string matching.
	patterns patternSet
}

// HasTag reports whether the exercise carries the given free-text tag.
func (e Exercise) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ContraindicatedFor reports whether the exercise lists the zone among its
// contraindications.
func (e Exercise) ContraindicatedFor(zone BodyZone) bool {
	for _, z := range e.Contraindications {
		if z == zone {
			return true
		}
	}
	return false
}

// HealthCondition represents one active or past complaint of a profile.
type HealthCondition struct {
	ID        int
	BodyZone  BodyZone
	Diagnosis string
	Notes     string
	// PainLevel ranges 0-10. Pain >= 7 excludes contraindicated movements
	// from the whole program.
	PainLevel int
	Active    bool
}

// Equipment represents one piece of gym equipment of a profile.
type Equipment struct {
	Name      string
	Available bool
}

// Preferences holds the schedule part of a profile.
type Preferences struct {
	DaysPerWeek       int
	MinutesPerSession int
}

// Profile is a local training profile. There is no account system; profiles
// are selected on the device and tracked in the HTTP session.
type Profile struct {
	ID   int
	Name string
	Preferences
}

// Intensity is the per-session periodization label.
type Intensity string

const (
	IntensityHeavy    Intensity = "heavy"
	IntensityVolume   Intensity = "volume"
	IntensityModerate Intensity = "moderate"
)

// SplitType tags a generated program with the training-split archetype it
// was built from.
type SplitType string

const (
	SplitFullBody     SplitType = "full_body"
	SplitUpperLower   SplitType = "upper_lower"
	SplitPushPullLegs SplitType = "push_pull_legs"
	SplitBodyweight   SplitType = "bodyweight"
	SplitMedical      SplitType = "medical_restricted"
)

// ProgramExercise is one prescribed exercise within a session.
type ProgramExercise struct {
	ExerciseID   int
	ExerciseName string
	OrderIndex   int
	Sets         int
	TargetReps   int
	RestSeconds  int
	Rehab        bool
	// TimeBased is set for isometric holds where TargetReps means
	// hold-seconds.
	TimeBased bool
}

// Session is one ordered training day of a program.
type Session struct {
	Name       string
	OrderIndex int
	Intensity  Intensity
	Exercises  []ProgramExercise
}

// Program is a complete generated training program, ready to persist.
type Program struct {
	ID        int
	Name      string
	SplitType SplitType
	Sessions  []Session
}

// hasExercises reports whether any session holds at least one exercise.
func (p Program) hasExercises() bool {
	for _, session := range p.Sessions {
		if len(session.Exercises) > 0 {
			return true
		}
	}
	return false
}

// ExerciseIDs returns the identifiers of every exercise referenced by the
// program, in session order. Used as the exclusion list on regeneration.
func (p Program) ExerciseIDs() []int {
	var ids []int
	for _, session := range p.Sessions {
		for _, ex := range session.Exercises {
			ids = append(ids, ex.ExerciseID)
		}
	}
	return ids
}
