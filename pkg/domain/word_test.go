package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWord(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		length  int
		want    Word
		wantErr bool
	}{
		{name: "plain", raw: "crane", length: 5, want: "crane"},
		{name: "upper cased input", raw: "CRANE", length: 5, want: "crane"},
		{name: "surrounding whitespace", raw: "  crane\n", length: 5, want: "crane"},
		{name: "wrong length", raw: "cranes", length: 5, wantErr: true},
		{name: "empty", raw: "", length: 5, wantErr: true},
		{name: "hyphenated", raw: "co-op", length: 5, wantErr: true},
		{name: "apostrophe", raw: "can't", length: 5, wantErr: true},
		{name: "digits", raw: "c4ane", length: 5, wantErr: true},
		{name: "other length", raw: "lattice", length: 7, want: "lattice"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseWord(tc.raw, tc.length)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseWord_LengthErrorKind(t *testing.T) {
	_, err := ParseWord("cranes", 5)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestHistory_Guesses(t *testing.T) {
	h := History{
		{Guess: "serai", Remaining: 40},
		{Guess: "clomb", Remaining: 4},
		{Guess: "crane", Remaining: 1},
	}

	assert.Equal(t, []Word{"serai", "clomb", "crane"}, h.Guesses())

	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, Word("crane"), last.Guess)

	_, ok = History{}.Last()
	assert.False(t, ok)
}
