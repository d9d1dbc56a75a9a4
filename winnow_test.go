package winnow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/winnow"
	"github.com/aretw0/winnow/internal/testutils"
	"github.com/aretw0/winnow/pkg/domain"
)

func TestFacade_SolveFromFile(t *testing.T) {
	path := testutils.WriteWordList(t, "crane", "slate", "stone", "crate", "abbey")

	eng, err := winnow.New(path)
	if err != nil {
		t.Fatalf("Failed to initialize engine with list %s: %v", path, err)
	}
	if eng.Letters() != 5 {
		t.Errorf("Expected 5 letters, got %d", eng.Letters())
	}
	if len(eng.Words()) != 5 {
		t.Errorf("Expected 5 words, got %d", len(eng.Words()))
	}

	result, err := eng.Solve(context.Background(), "crate")
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if result.Outcome != domain.StatusWon {
		t.Errorf("Expected won, got %s", result.Outcome)
	}
	if result.FinalGuess != "crate" {
		t.Errorf("Expected final guess crate, got %s", result.FinalGuess)
	}
}

func TestFacade_InjectedWords(t *testing.T) {
	eng, err := winnow.New("", winnow.WithWords([]domain.Word{"aa", "ab", "bb"}))
	if err != nil {
		t.Fatalf("Failed to initialize engine: %v", err)
	}
	if eng.Letters() != 2 {
		t.Errorf("Expected letters inferred from the list, got %d", eng.Letters())
	}

	result, err := eng.Solve(context.Background(), "ab")
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if result.Outcome != domain.StatusWon {
		t.Errorf("Expected won, got %s", result.Outcome)
	}
}

func TestFacade_RequiresSource(t *testing.T) {
	if _, err := winnow.New(""); err == nil {
		t.Fatal("Expected error when no word list is given")
	}
}

func TestFacade_InvalidOpening(t *testing.T) {
	_, err := winnow.New("",
		winnow.WithWords([]domain.Word{"aa", "ab"}),
		winnow.WithOpening("abc"),
	)
	if !errors.Is(err, domain.ErrLengthMismatch) {
		t.Fatalf("Expected length mismatch for the opening, got %v", err)
	}
}

func TestFacade_SolveValidation(t *testing.T) {
	eng, err := winnow.New("", winnow.WithWords([]domain.Word{"aa", "ab"}))
	if err != nil {
		t.Fatalf("Failed to initialize engine: %v", err)
	}
	if _, err := eng.Solve(context.Background(), "abc"); !errors.Is(err, domain.ErrLengthMismatch) {
		t.Errorf("Expected length mismatch for the solution, got %v", err)
	}
}

func TestFacade_Advise(t *testing.T) {
	eng, err := winnow.New("", winnow.WithWords([]domain.Word{"aa", "ab", "bb"}))
	if err != nil {
		t.Fatalf("Failed to initialize engine: %v", err)
	}

	advice, err := eng.Advise(context.Background(), nil)
	if err != nil {
		t.Fatalf("Advise failed: %v", err)
	}
	if advice.Remaining != 3 {
		t.Errorf("Expected all 3 candidates before any step, got %d", advice.Remaining)
	}

	// "aa" answered correct-absent leaves only "ab".
	feedback, err := domain.ParsePattern("ca")
	if err != nil {
		t.Fatal(err)
	}
	advice, err = eng.Advise(context.Background(), []domain.Step{{Guess: "aa", Feedback: feedback}})
	if err != nil {
		t.Fatalf("Advise failed: %v", err)
	}
	if advice.Guess != "ab" || advice.Remaining != 1 {
		t.Errorf("Expected ab with 1 candidate, got %s with %d", advice.Guess, advice.Remaining)
	}
}

