package readability

// Flags control the heuristic strictness of a single extraction attempt.
type Flags uint8

const (
	// FlagStripUnlikelys excludes containers whose class/id match the
	// unlikely-candidates pattern.
	FlagStripUnlikelys Flags = 1 << iota

	// FlagWeightClasses applies class/id weighting to container scores.
	FlagWeightClasses

	// FlagCleanConditionally enables the multi-signal conditional cleaner.
	FlagCleanConditionally
)

// AllFlags is the initial, strictest flag set.
const AllFlags = FlagStripUnlikelys | FlagWeightClasses | FlagCleanConditionally

// Has reports whether f contains flag.
func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// without returns f with flag cleared. Flags only ever lose bits across
// retries; they never gain them back.
func (f Flags) without(flag Flags) Flags {
	return f &^ flag
}

// retryDropOrder is the fixed order in which the retry controller relaxes
// flags when an attempt produces too little text. The reachable states
// form the single chain AllFlags -> WeightClasses|CleanConditionally ->
// CleanConditionally -> 0.
var retryDropOrder = []Flags{FlagStripUnlikelys, FlagWeightClasses, FlagCleanConditionally}
