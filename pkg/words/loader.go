// Package words loads plain-text word lists into clean guess pools.
//
// A list is one word per line. Lines that are blank, start with '#',
// have the wrong length, or contain characters outside a-z are skipped
// rather than rejected, so real-world dictionary files load as-is.
package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/aretw0/winnow/pkg/domain"
)

// Options configures list loading.
type Options struct {
	// ProperNouns keeps capitalized entries instead of dropping them.
	// System dictionaries mix names into their word lists; by default a
	// line with any uppercase letter is treated as a proper noun.
	ProperNouns bool
}

// Option is a functional option for Load and Collect.
type Option func(*Options)

// WithProperNouns keeps capitalized entries in the pool (lowercased).
func WithProperNouns() Option {
	return func(o *Options) {
		o.ProperNouns = true
	}
}

// Load reads the word list at path and returns the words of the given
// length, deduplicated and sorted.
func Load(path string, length int, opts ...Option) ([]domain.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	list, err := Collect(f, length, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	return list, nil
}

// Collect reads one word per line from r and returns the words of the
// given length, deduplicated and sorted. Unusable lines are skipped.
func Collect(r io.Reader, length int, opts ...Option) ([]domain.Word, error) {
	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}

	seen := mapset.NewThreadUnsafeSet[domain.Word]()
	var list []domain.Word

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		if !options.ProperNouns && raw != strings.ToLower(raw) {
			continue
		}
		word, err := domain.ParseWord(raw, length)
		if err != nil {
			continue
		}
		if seen.Add(word) {
			list = append(list, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan word list: %w", err)
	}

	slices.Sort(list)
	return list, nil
}

// LeadingLetterCounts tallies how many words start with each letter.
// The keys are single-letter strings, present only for letters that
// actually occur.
func LeadingLetterCounts(list []domain.Word) map[string]int {
	counts := make(map[string]int)
	for _, w := range list {
		if len(w) == 0 {
			continue
		}
		counts[string(w[0])]++
	}
	return counts
}
