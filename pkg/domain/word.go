package domain

import (
	"fmt"
	"strings"
)

// Word is a fixed-length, lower-case puzzle word.
// Words are immutable value objects; construct them through ParseWord so the
// length and alphabet invariants hold everywhere else.
type Word string

// ParseWord normalizes a raw dictionary entry and validates it against the
// configured word length. Entries are trimmed and lower-cased; anything
// outside a-z is rejected.
func ParseWord(raw string, length int) (Word, error) {
	w := strings.ToLower(strings.TrimSpace(raw))
	if len(w) != length {
		return "", fmt.Errorf("%w: %q has %d letters, want %d", ErrLengthMismatch, raw, len(w), length)
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return "", fmt.Errorf("word %q: byte %q is outside a-z", raw, w[i])
		}
	}
	return Word(w), nil
}

func (w Word) String() string {
	return string(w)
}
