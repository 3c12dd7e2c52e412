package program

import (
	"math/rand/v2"
	"strings"
)

// Rehab substitution prescription. Fixed regardless of slot baselines.
const (
	rehabSets        = 2
	rehabReps        = 12
	rehabRestSeconds = 60
)

// generationInput carries the fully materialized inputs for one generation
// call. The engine performs no I/O.
type generationInput struct {
	// catalog must already be classified, see ClassifyCatalog.
	catalog    []Exercise
	conditions []HealthCondition
	equipment  []Equipment
	prefs      Preferences
	// excludedIDs lists exercises the caller wants fresh variation on, e.g.
	// the previous program's selection on a regenerate.
	excludedIDs []int
	// rng is the tie-break source for candidate shuffling. Tests inject a
	// seeded one; nil falls back to a randomly seeded source.
	rng *rand.Rand
}

// generator assembles a program for one profile.
type generator struct {
	conditions []HealthCondition
	prefs      Preferences
	rng        *rand.Rand
	// eligible is the equipment- and exclusion-filtered catalog, rehab and
	// cardio entries included.
	eligible []Exercise
	// strength is eligible minus cardio and rehab entries, the pool ordinary
	// slots draw from.
	strength []Exercise
	// severe holds the zones excluded at pain >= 7.
	severe map[BodyZone]bool
	// anyEquipment is true when at least one equipment entry is available.
	anyEquipment bool
}

// newGenerator runs the filter pipeline and prepares the candidate pools.
func newGenerator(in generationInput) *generator {
	rng := in.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var active []HealthCondition
	for _, c := range in.conditions {
		if c.Active {
			active = append(active, c)
		}
	}

	anyEquipment := false
	for _, eq := range in.equipment {
		if eq.Available {
			anyEquipment = true
			break
		}
	}

	eligible := filterByEquipment(in.catalog, in.equipment)
	eligible = applyExclusions(eligible, in.excludedIDs)

	var strength []Exercise
	for _, ex := range removeCardio(eligible) {
		if !ex.Rehab {
			strength = append(strength, ex)
		}
	}

	return &generator{
		conditions:   active,
		prefs:        in.prefs,
		rng:          rng,
		eligible:     eligible,
		strength:     strength,
		severe:       severeZones(active),
		anyEquipment: anyEquipment,
	}
}

// generateProgram builds a complete program. It never fails for well-formed
// input; the worst case is a program with few or zero exercises.
func generateProgram(in generationInput) Program {
	g := newGenerator(in)

	if g.hasMedicalRestriction() {
		return g.buildFixedProgram(SplitMedical, medicalSessions())
	}
	if !g.anyEquipment {
		// Fall through to the ordinary pipeline when the catalog knows none
		// of the fixed program's movements; bodyweight entries pass the
		// equipment filter either way.
		if fixed := g.buildFixedProgram(SplitBodyweight, bodyweightSessions()); fixed.hasExercises() {
			return fixed
		}
	}

	split := determineSplit(g.prefs.DaysPerWeek)
	templates := sessionTemplates(split, g.prefs.DaysPerWeek, g.hingePattern())

	sessions := make([]Session, 0, len(templates))
	for i, tmpl := range templates {
		session := g.buildStructuredSession(tmpl)
		session.OrderIndex = i
		session = adjustSessionToTimeBudget(session, g.prefs.MinutesPerSession)
		sessions = append(sessions, session)
	}

	return Program{
		Name:      programName(split),
		SplitType: split,
		Sessions:  sessions,
	}
}

func programName(split SplitType) string {
	switch split {
	case SplitFullBody:
		return "Full Body Program"
	case SplitUpperLower:
		return "Upper / Lower Program"
	case SplitPushPullLegs:
		return "Push / Pull / Legs Program"
	case SplitBodyweight:
		return "Bodyweight Program"
	case SplitMedical:
		return "Restricted Core Program"
	default:
		return "Training Program"
	}
}

// hingePattern returns the pattern hip-hinge slots draw from. Active
// lower-back pain at level 6 redirects every hinge slot to the hip-thrust
// pool across the whole program. At level 7 and above the zone is severe
// and the hinge slots must stay on the hinge pool so the rehab substitution
// can fire instead.
func (g *generator) hingePattern() pattern {
	if g.severe[ZoneLowerBack] {
		return patternHipHinge
	}
	for _, c := range g.conditions {
		if c.BodyZone == ZoneLowerBack && c.PainLevel >= hingeRedirectPain {
			return patternHipThrust
		}
	}
	return patternHipHinge
}

// buildStructuredSession fills a session template slot by slot. A slot with
// no eligible candidate is omitted rather than failing.
func (g *generator) buildStructuredSession(tmpl sessionTemplate) Session {
	session := Session{
		Name:      tmpl.name,
		Intensity: tmpl.intensity,
	}
	used := make(map[int]bool)

	for _, sl := range tmpl.slots {
		candidates := excludeUsed(sl.pool(g.strength), used)
		if len(candidates) == 0 {
			continue
		}

		// When any candidate is contraindicated at severe pain, the whole
		// slot swaps to therapy for that zone instead of hunting for a
		// safer ordinary movement.
		if zone, found := g.contraindicatedZone(candidates); found {
			rehabEx, ok := g.rehabFor(zone, used)
			if !ok {
				continue
			}
			used[rehabEx.ID] = true
			session.Exercises = append(session.Exercises, ProgramExercise{
				ExerciseID:   rehabEx.ID,
				ExerciseName: rehabEx.Name,
				Sets:         rehabSets,
				TargetReps:   rehabReps,
				RestSeconds:  rehabRestSeconds,
				Rehab:        true,
			})
			continue
		}

		ex, ok := g.pickCandidate(sl, candidates)
		if !ok {
			continue
		}
		used[ex.ID] = true

		prescribed := applyIntensity(ProgramExercise{
			ExerciseID:   ex.ID,
			ExerciseName: ex.Name,
			Sets:         sl.sets,
			TargetReps:   sl.reps,
			RestSeconds:  sl.restSeconds,
		}, ex, tmpl.intensity)
		session.Exercises = append(session.Exercises, prescribed)
	}

	renumberExercises(session.Exercises)
	return session
}

// contraindicatedZone reports the first severe-pain zone any candidate is
// contraindicated for.
func (g *generator) contraindicatedZone(candidates []Exercise) (BodyZone, bool) {
	for _, ex := range candidates {
		for _, zone := range ex.Contraindications {
			if g.severe[zone] {
				return zone, true
			}
		}
	}
	return "", false
}

// rehabFor finds an unused rehab exercise targeting the zone.
func (g *generator) rehabFor(zone BodyZone, used map[int]bool) (Exercise, bool) {
	for _, ex := range g.eligible {
		if ex.Rehab && ex.RehabTarget == zone && !used[ex.ID] {
			return ex, true
		}
	}
	return Exercise{}, false
}

// pickCandidate resolves a slot to a concrete exercise: preferred-name
// match first (exact, then substring, case-insensitive), otherwise the
// first entry of a shuffled copy of the candidates. Shuffling guarantees
// variety across regenerations instead of always picking catalog order.
func (g *generator) pickCandidate(sl slot, candidates []Exercise) (Exercise, bool) {
	if sl.preferredName != "" {
		if ex, ok := matchPreferred(sl.preferredName, candidates); ok {
			return ex, true
		}
	}

	shuffled := make([]Exercise, len(candidates))
	copy(shuffled, candidates)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) == 0 {
		return Exercise{}, false
	}
	return shuffled[0], true
}

// matchPreferred finds an exact case-insensitive name match, falling back
// to substring.
func matchPreferred(preferred string, candidates []Exercise) (Exercise, bool) {
	want := strings.ToLower(preferred)
	for _, ex := range candidates {
		if strings.ToLower(ex.Name) == want {
			return ex, true
		}
	}
	for _, ex := range candidates {
		if strings.Contains(strings.ToLower(ex.Name), want) {
			return ex, true
		}
	}
	return Exercise{}, false
}

// excludeUsed drops exercises already placed in this session.
func excludeUsed(pool []Exercise, used map[int]bool) []Exercise {
	var remaining []Exercise
	for _, ex := range pool {
		if !used[ex.ID] {
			remaining = append(remaining, ex)
		}
	}
	return remaining
}

// renumberExercises rewrites order indices to match slice order.
func renumberExercises(exercises []ProgramExercise) {
	for i := range exercises {
		exercises[i].OrderIndex = i
	}
}
