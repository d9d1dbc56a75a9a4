package domain

import "fmt"

// PoolPolicy selects where candidate guesses are drawn from.
type PoolPolicy string

const (
	// PoolCandidates restricts guesses to words still consistent with the
	// feedback so far, so every guess could be the solution.
	PoolCandidates PoolPolicy = "candidates"

	// PoolDictionary draws guesses from the whole dictionary. An already
	// eliminated word can still split the survivors better than any of
	// them, at the cost of a guess that cannot win.
	PoolDictionary PoolPolicy = "dictionary"
)

// ParsePoolPolicy converts a config string into a PoolPolicy.
// The empty string selects PoolCandidates.
func ParsePoolPolicy(s string) (PoolPolicy, error) {
	switch PoolPolicy(s) {
	case "":
		return PoolCandidates, nil
	case PoolCandidates:
		return PoolCandidates, nil
	case PoolDictionary:
		return PoolDictionary, nil
	default:
		return "", fmt.Errorf("unknown pool policy %q (want %q or %q)", s, PoolCandidates, PoolDictionary)
	}
}
