package entropy

import (
	"fmt"

	"github.com/aretw0/winnow/pkg/candidates"
	"github.com/aretw0/winnow/pkg/domain"
)

// Simulate plays guess against every live candidate and tallies the feedback
// patterns that would come back. Every candidate lands in exactly one bucket,
// so the table is a complete partition of the set.
func Simulate(guess domain.Word, set *candidates.Set) (Table, error) {
	t := make(Table)
	var evalErr error
	set.Each(func(w domain.Word) bool {
		p, err := domain.Evaluate(guess, w)
		if err != nil {
			evalErr = fmt.Errorf("simulate %q: %w", guess, err)
			return false
		}
		t[p]++
		return true
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return t, nil
}

// Gain is the expected information gain of playing guess against the set.
func Gain(guess domain.Word, set *candidates.Set) (float64, error) {
	t, err := Simulate(guess, set)
	if err != nil {
		return 0, err
	}
	return InformationGain(SetEntropy(set.Len()), t, set.Len()), nil
}

// BestGuess returns the pool word with the highest expected information gain
// against the set. Ties go to the lexicographically smaller word, so
// selection is deterministic for a given pool and set.
//
// The function is pure over an immutable set; callers may fan it out across
// pools without synchronization.
func BestGuess(pool []domain.Word, set *candidates.Set) (domain.Word, float64, error) {
	if len(pool) == 0 {
		return "", 0, domain.ErrEmptyGuessPool
	}
	if set.Len() == 0 {
		return "", 0, domain.ErrNoCandidates
	}

	before := SetEntropy(set.Len())
	var best domain.Word
	bestGain := -1.0

	for _, g := range pool {
		t, err := Simulate(g, set)
		if err != nil {
			return "", 0, err
		}
		gain := InformationGain(before, t, set.Len())
		if gain > bestGain || (gain == bestGain && g < best) {
			best, bestGain = g, gain
		}
	}
	return best, bestGain, nil
}
