package program

import "strings"

// minVarietyPoolSize is the exclusion-threshold: an exclusion list is
// ignored entirely when honoring it would leave fewer than this many
// non-rehab exercises. Empirically chosen; changing it changes program
// composition for every user.
const minVarietyPoolSize = 15

// filterByEquipment keeps an exercise iff every required equipment tag is
// present among the available equipment, or it requires none. Adding
// equipment never removes an already-eligible exercise.
func filterByEquipment(catalog []Exercise, equipment []Equipment) []Exercise {
	available := make(map[string]bool, len(equipment))
	for _, eq := range equipment {
		if eq.Available {
			available[strings.ToLower(eq.Name)] = true
		}
	}

	var filtered []Exercise
	for _, ex := range catalog {
		if equipmentSatisfied(ex, available) {
			filtered = append(filtered, ex)
		}
	}
	return filtered
}

func equipmentSatisfied(ex Exercise, available map[string]bool) bool {
	for _, required := range ex.Equipment {
		if !available[strings.ToLower(required)] {
			return false
		}
	}
	return true
}

// applyExclusions drops previously used exercise identifiers, unless doing
// so would starve the non-rehab pool below minVarietyPoolSize, in which case
// the exclusion list is ignored entirely.
func applyExclusions(catalog []Exercise, excludedIDs []int) []Exercise {
	if len(excludedIDs) == 0 {
		return catalog
	}

	excluded := make(map[int]bool, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = true
	}

	var (
		filtered     []Exercise
		nonRehabLeft int
	)
	for _, ex := range catalog {
		if excluded[ex.ID] {
			continue
		}
		filtered = append(filtered, ex)
		if !ex.Rehab {
			nonRehabLeft++
		}
	}

	if nonRehabLeft < minVarietyPoolSize {
		return catalog
	}
	return filtered
}

// removeCardio drops cardio-tagged movements from the strength pool. They
// still pass equipment and contraindication checks but are never picked as
// strength slots.
func removeCardio(catalog []Exercise) []Exercise {
	var filtered []Exercise
	for _, ex := range catalog {
		if !ex.HasTag(tagCardio) {
			filtered = append(filtered, ex)
		}
	}
	return filtered
}

// severeZones collects the body zones whose active conditions are at pain
// level 7 or above. Movements contraindicated for these zones are excluded
// from the whole program.
func severeZones(conditions []HealthCondition) map[BodyZone]bool {
	zones := make(map[BodyZone]bool)
	for _, c := range conditions {
		if c.Active && c.PainLevel >= severePainLevel {
			zones[c.BodyZone] = true
		}
	}
	return zones
}
