package domain

// Status tracks the solver state machine for one puzzle.
type Status string

const (
	// StatusStart is the state before the candidate set is initialized.
	StatusStart Status = "start"
	// StatusGuessing means the puzzle is live and guesses remain.
	StatusGuessing Status = "guessing"
	// StatusWon is terminal: a guess matched the solution.
	StatusWon Status = "won"
	// StatusLost is terminal: guesses ran out, or a core failure ended the
	// game early (see Result.Reason).
	StatusLost Status = "lost"
)

// Finished reports whether the status is terminal.
func (s Status) Finished() bool {
	return s == StatusWon || s == StatusLost
}
