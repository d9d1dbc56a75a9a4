package winnow_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/winnow"
	"github.com/aretw0/winnow/pkg/domain"
)

// ExampleNew_library demonstrates using winnow purely as a Go library,
// injecting a word list without reading from the filesystem.
func ExampleNew_library() {
	eng, err := winnow.New("", winnow.WithWords([]domain.Word{"crane", "crate", "slate"}))
	if err != nil {
		log.Fatal(err)
	}

	result, err := eng.Solve(context.Background(), "crate")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Outcome, result.GuessesMade)
	// Output: won [crane crate]
}

// ExampleEngine_Advise demonstrates assisting a game played elsewhere:
// relay the observed feedback and play what comes back.
func ExampleEngine_Advise() {
	eng, err := winnow.New("", winnow.WithWords([]domain.Word{"crane", "crate", "slate"}))
	if err != nil {
		log.Fatal(err)
	}

	// "crane" came back correct on c, r, a, e and absent on n.
	feedback, err := domain.ParsePattern("cccac")
	if err != nil {
		log.Fatal(err)
	}

	advice, err := eng.Advise(context.Background(), []domain.Step{
		{Guess: "crane", Feedback: feedback},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(advice.Guess, advice.Remaining)
	// Output: crate 1
}
