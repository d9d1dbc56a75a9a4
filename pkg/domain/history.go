package domain

// Record captures one guess and what it did to the candidate set.
type Record struct {
	// Guess is the word that was played.
	Guess Word `json:"guess"`

	// Feedback is the observed per-position pattern.
	Feedback Pattern `json:"feedback"`

	// Remaining is the candidate count after filtering with the feedback.
	Remaining int `json:"remaining"`

	// Gain is the expected information gain of the guess, in bits, computed
	// against the candidate set as it stood before the guess.
	Gain float64 `json:"gain"`
}

// History is the append-only sequence of records for one puzzle. It exists
// for reporting; filtering always works from the live candidate set, never
// from here.
type History []Record

// Guesses lists the words played, in order.
func (h History) Guesses() []Word {
	out := make([]Word, len(h))
	for i, r := range h {
		out[i] = r.Guess
	}
	return out
}

// Last returns the most recent record, if any.
func (h History) Last() (Record, bool) {
	if len(h) == 0 {
		return Record{}, false
	}
	return h[len(h)-1], true
}

// Result is the terminal outcome of a full solve.
type Result struct {
	// Outcome is StatusWon or StatusLost; a canceled solve reports the
	// in-flight status instead.
	Outcome Status `json:"outcome"`

	// GuessesMade lists every word played, in order.
	GuessesMade []Word `json:"guesses_made"`

	// FinalGuess is the last word played, empty if nothing was.
	FinalGuess Word `json:"final_guess,omitempty"`

	// History carries the full per-guess detail.
	History History `json:"history"`

	// Reason holds the core failure kind when the game ended through an
	// error rather than exhausted guesses. Match with errors.Is.
	Reason error `json:"-"`
}
