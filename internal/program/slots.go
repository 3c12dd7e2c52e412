package program

// poolFunc selects the candidate exercises for a slot from the eligible
// catalog.
type poolFunc func(catalog []Exercise) []Exercise

// slot is a named role in a session template with a candidate-selection rule
// and baseline prescription. Slots exist only during session assembly and
// are never persisted.
type slot struct {
	role          string
	pool          poolFunc
	preferredName string
	sets          int
	reps          int
	restSeconds   int
}

// byPattern returns a pool of every eligible exercise classified into the
// given movement pattern.
func byPattern(p pattern) poolFunc {
	return func(catalog []Exercise) []Exercise {
		var pool []Exercise
		for _, ex := range catalog {
			if ex.patterns.has(p) {
				pool = append(pool, ex)
			}
		}
		return pool
	}
}

// sessionTemplate is the fixed blueprint of one training day of a split.
type sessionTemplate struct {
	name      string
	intensity Intensity
	slots     []slot
}
