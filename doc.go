/*
Package winnow is an information-theoretic solver for Wordle-style word
puzzles.

It picks guesses by expected information gain: each guess partitions the
surviving candidates by the feedback it would earn, and the guess whose
partition carries the most Shannon entropy is expected to shrink the set
the hardest. The candidate set itself is exact, never heuristic: a word
survives filtering only if it would have produced the observed feedback.

# Concept

A game is a loop over three operations. Suggest ranks the guess pool by
expected gain. Feedback is either computed (the solver knows the hidden
word) or observed (a human relays what an external game showed). Filter
drops every candidate inconsistent with that feedback. The loop ends when
the feedback comes back all-correct or the guess budget runs out.

The engine is embeddable anywhere: the same core drives the CLI, an HTTP
dashboard with live event streams, and an MCP server for agent tooling.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/winnow"
	)

	func main() {
		eng, err := winnow.New("words.txt")
		if err != nil {
			log.Fatal(err)
		}

		result, err := eng.Solve(context.Background(), "crane")
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(result.Outcome, result.GuessesMade)
	}

For games played elsewhere, feed the observed rounds to Advise and play
what it recommends:

	advice, err := eng.Advise(ctx, []domain.Step{
		{Guess: "slate", Feedback: feedback},
	})
*/
package winnow
