// Package candidates tracks the dictionary words still consistent with every
// feedback pattern observed so far.
package candidates

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/aretw0/winnow/pkg/domain"
)

// Set is one puzzle's candidate set. The backing dictionary slice and index
// are shared between derived sets and never mutated; each Set owns only its
// membership mask, so deriving a filtered set is cheap.
type Set struct {
	words []domain.Word
	index map[domain.Word]uint
	live  *bitset.BitSet
}

// New builds a full set over the given dictionary. The slice is retained and
// must not be mutated by the caller afterwards.
func New(words []domain.Word) *Set {
	s := &Set{
		words: words,
		index: make(map[domain.Word]uint, len(words)),
		live:  bitset.New(uint(len(words))),
	}
	for i, w := range words {
		s.index[w] = uint(i)
		s.live.Set(uint(i))
	}
	return s
}

// Len returns the number of live candidates.
func (s *Set) Len() int {
	return int(s.live.Count())
}

// Contains reports whether w is still a candidate.
func (s *Set) Contains(w domain.Word) bool {
	i, ok := s.index[w]
	return ok && s.live.Test(i)
}

// InDictionary reports whether w was in the original dictionary, live or not.
func (s *Set) InDictionary(w domain.Word) bool {
	_, ok := s.index[w]
	return ok
}

// Each calls fn for every live candidate in dictionary order, stopping early
// if fn returns false.
func (s *Set) Each(fn func(domain.Word) bool) {
	for i, ok := s.live.NextSet(0); ok; i, ok = s.live.NextSet(i + 1) {
		if !fn(s.words[i]) {
			return
		}
	}
}

// Words materializes the live candidates in dictionary order.
func (s *Set) Words() []domain.Word {
	out := make([]domain.Word, 0, s.Len())
	s.Each(func(w domain.Word) bool {
		out = append(out, w)
		return true
	})
	return out
}

// Sample returns up to n live candidates in dictionary order.
func (s *Set) Sample(n int) []domain.Word {
	if n <= 0 {
		return nil
	}
	out := make([]domain.Word, 0, n)
	s.Each(func(w domain.Word) bool {
		out = append(out, w)
		return len(out) < n
	})
	return out
}

// Filter derives the subset whose members would have produced observed had
// they been the solution when guess was played. The receiver is untouched.
// Exactness is the point: the true solution, if live, always stays live.
func (s *Set) Filter(guess domain.Word, observed domain.Pattern) (*Set, error) {
	next := &Set{
		words: s.words,
		index: s.index,
		live:  bitset.New(uint(len(s.words))),
	}
	var evalErr error
	s.Each(func(w domain.Word) bool {
		p, err := domain.Evaluate(guess, w)
		if err != nil {
			evalErr = err
			return false
		}
		if p == observed {
			next.live.Set(s.index[w])
		}
		return true
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return next, nil
}
