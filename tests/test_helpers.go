package tests

import (
	"testing"

	"github.com/aretw0/winnow"
	"github.com/aretw0/winnow/pkg/domain"
)

const fixturePath = "fixtures/words.txt"

// newFixtureEngine loads the certification dictionary. The path is relative
// to this test file.
func newFixtureEngine(t *testing.T) *winnow.Engine {
	t.Helper()
	engine, err := winnow.New(fixturePath)
	if err != nil {
		t.Fatalf("Failed to create engine from %s: %v", fixturePath, err)
	}
	return engine
}

// verifyHistory replays a finished game's history against the known solution
// and fails on any record that breaks the rules of the game.
func verifyHistory(t *testing.T, solution domain.Word, history domain.History) {
	t.Helper()

	if len(history) == 0 {
		t.Fatal("History is empty")
	}

	prev := -1
	for i, rec := range history {
		// Recorded feedback must match an honest evaluation of the guess.
		want, err := domain.Evaluate(rec.Guess, solution)
		if err != nil {
			t.Fatalf("Record %d: evaluate %q: %v", i, rec.Guess, err)
		}
		if rec.Feedback != want {
			t.Errorf("Record %d: feedback for %q is %s, want %s",
				i, rec.Guess, rec.Feedback, want)
		}

		// Filtering only ever shrinks the candidate set, and the solution
		// itself can never be filtered out.
		if rec.Remaining < 1 {
			t.Errorf("Record %d: %d candidates remain, the solution was filtered out", i, rec.Remaining)
		}
		if prev >= 0 && rec.Remaining > prev {
			t.Errorf("Record %d: candidates grew from %d to %d", i, prev, rec.Remaining)
		}
		prev = rec.Remaining

		if rec.Gain < 0 {
			t.Errorf("Record %d: negative expected gain %f", i, rec.Gain)
		}
	}

	last, _ := history.Last()
	if last.Guess != solution {
		t.Errorf("Final guess is %q, want %q", last.Guess, solution)
	}
	if !last.Feedback.AllCorrect() {
		t.Errorf("Final feedback %s is not all-correct", last.Feedback)
	}
}
