package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Mark classifies a single guess letter against the solution.
type Mark uint8

const (
	// Absent means the letter does not occur in the solution, or every
	// occurrence was already claimed by another position.
	Absent Mark = iota
	// Present means the letter occurs in the solution at a different position.
	Present
	// Correct means the letter is in exactly the right position.
	Correct
)

func (m Mark) String() string {
	switch m {
	case Correct:
		return "correct"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// letter returns the compact single-letter form used for parsing and JSON.
func (m Mark) letter() byte {
	switch m {
	case Correct:
		return 'c'
	case Present:
		return 'p'
	default:
		return 'a'
	}
}

// Pattern is the per-position feedback of one guess against one solution.
// The underlying bytes are Mark values, so Patterns compare with == and can
// key a frequency table directly.
type Pattern string

// NewPattern builds a Pattern from explicit marks. Mostly useful in tests.
func NewPattern(marks ...Mark) Pattern {
	b := make([]byte, len(marks))
	for i, m := range marks {
		b[i] = byte(m)
	}
	return Pattern(b)
}

// Len returns the number of positions.
func (p Pattern) Len() int {
	return len(p)
}

// At returns the mark at position i.
func (p Pattern) At(i int) Mark {
	return Mark(p[i])
}

// AllCorrect reports whether every position is Correct, i.e. the guess was
// the solution.
func (p Pattern) AllCorrect() bool {
	if len(p) == 0 {
		return false
	}
	for i := 0; i < len(p); i++ {
		if Mark(p[i]) != Correct {
			return false
		}
	}
	return true
}

// Letters renders the compact form, one letter per position: c for Correct,
// p for Present, a for Absent. The inverse of ParsePattern.
func (p Pattern) Letters() string {
	b := make([]byte, len(p))
	for i := 0; i < len(p); i++ {
		b[i] = Mark(p[i]).letter()
	}
	return string(b)
}

// Notation renders the classic textual form against the guess it came from:
// upper-case letter for Correct, lower-case for Present, underscore for
// Absent. Purely presentational; solving logic never reads it back.
func (p Pattern) Notation(guess Word) string {
	if len(guess) != len(p) {
		return strings.Repeat("?", len(p))
	}
	b := make([]byte, len(p))
	for i := 0; i < len(p); i++ {
		switch Mark(p[i]) {
		case Correct:
			b[i] = guess[i] - ('a' - 'A')
		case Present:
			b[i] = guess[i]
		default:
			b[i] = '_'
		}
	}
	return string(b)
}

func (p Pattern) String() string {
	return p.Letters()
}

// MarshalJSON encodes the pattern in its compact letter form.
func (p Pattern) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Letters())
}

// UnmarshalJSON decodes the compact letter form.
func (p *Pattern) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePattern(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePattern reads a compact feedback string, one letter per position:
// c correct, p present, a absent. An underscore is accepted as absent so the
// display notation's blanks round-trip. Case-insensitive.
func ParsePattern(s string) (Pattern, error) {
	if s == "" {
		return "", fmt.Errorf("empty feedback")
	}
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'c', 'C':
			b[i] = byte(Correct)
		case 'p', 'P':
			b[i] = byte(Present)
		case 'a', 'A', '_':
			b[i] = byte(Absent)
		default:
			return "", fmt.Errorf("feedback %q: unknown mark %q at position %d", s, s[i], i)
		}
	}
	return Pattern(b), nil
}

// Evaluate compares a guess against a solution and returns the per-position
// feedback. Two passes, count-aware: exact positions claim their letter from
// the solution tally first, then the remaining positions are marked Present
// left to right while the tally lasts. A guess letter is never credited more
// often than it occurs in the solution.
func Evaluate(guess, solution Word) (Pattern, error) {
	if len(guess) != len(solution) {
		return "", fmt.Errorf("%w: guess %q has %d letters, solution has %d",
			ErrLengthMismatch, guess, len(guess), len(solution))
	}

	n := len(guess)
	marks := make([]byte, n)

	var tally [26]int
	for i := 0; i < n; i++ {
		if c := solution[i]; 'a' <= c && c <= 'z' {
			tally[c-'a']++
		}
	}

	// Pass 1: exact matches consume their letter before anything else can.
	for i := 0; i < n; i++ {
		if guess[i] == solution[i] {
			marks[i] = byte(Correct)
			if c := guess[i]; 'a' <= c && c <= 'z' {
				tally[c-'a']--
			}
		}
	}

	// Pass 2: remaining positions are Present while occurrences remain.
	for i := 0; i < n; i++ {
		if marks[i] == byte(Correct) {
			continue
		}
		c := guess[i]
		if 'a' <= c && c <= 'z' && tally[c-'a'] > 0 {
			marks[i] = byte(Present)
			tally[c-'a']--
		} else {
			marks[i] = byte(Absent)
		}
	}

	return Pattern(marks), nil
}
