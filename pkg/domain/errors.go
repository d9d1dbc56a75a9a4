package domain

import "errors"

// ErrLengthMismatch is returned when a guess and a solution (or the
// dictionary) disagree on word length.
var ErrLengthMismatch = errors.New("word length mismatch")

// ErrNoCandidates is returned when filtering empties the candidate set,
// meaning the solution was never in the dictionary or the observed feedback
// was inconsistent.
var ErrNoCandidates = errors.New("no candidates remain")

// ErrEmptyGuessPool is returned when guess selection is invoked with no words
// to evaluate.
var ErrEmptyGuessPool = errors.New("empty guess pool")

// ErrGameOver is returned when a guess is played against a finished game.
var ErrGameOver = errors.New("game already finished")

// ErrNotInDictionary is returned when a caller-supplied guess is not a known
// dictionary word.
var ErrNotInDictionary = errors.New("word not in dictionary")

// ErrSessionNotFound is returned when a session ID cannot be found.
var ErrSessionNotFound = errors.New("session not found")

// ErrOpeningNotFound is returned by opening books that hold no entry for the
// requested key.
var ErrOpeningNotFound = errors.New("opening not found")
