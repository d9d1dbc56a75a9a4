// Package entropy ranks guesses by how much they are expected to shrink the
// candidate set, measured in bits of Shannon entropy.
package entropy

import (
	"math"

	"github.com/aretw0/winnow/pkg/domain"
)

// Table counts how often each feedback pattern comes back when one guess is
// played against every live candidate.
type Table map[domain.Pattern]int

// Total returns the number of simulated candidates behind the table.
func (t Table) Total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// SetEntropy is the uncertainty, in bits, of a uniform prior over n
// candidates: log2(n). A set of one carries no uncertainty. Callers guard the
// empty set with domain.ErrNoCandidates before asking; n < 1 reports zero
// rather than an undefined value.
func SetEntropy(n int) float64 {
	if n < 2 {
		return 0
	}
	return math.Log2(float64(n))
}

// TableEntropy is the Shannon entropy of the pattern distribution:
// -sum (c/N) * log2(c/N) over patterns with positive count.
func TableEntropy(t Table) float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}
	var h float64
	for _, c := range t {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

// InformationGain is the expected entropy drop from playing the simulated
// guess: before minus the size-weighted entropy of each resulting subset,
// each subset treated as uniformly uncertain over its members.
func InformationGain(before float64, t Table, total int) float64 {
	if total == 0 {
		return 0
	}
	var after float64
	for _, c := range t {
		if c < 2 {
			continue // log2(1) == 0
		}
		after += float64(c) / float64(total) * math.Log2(float64(c))
	}
	g := before - after
	if g < 0 {
		return 0 // expected gain is never negative; absorb float drift
	}
	return g
}
