package winnow

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/winnow/pkg/domain"
)

// Runner drives an interactive assist session using provided IO.
// This allows for easy testing and integration with different frontends
// (CLI, TUI, etc).
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
	Renderer ContentRenderer
}

// ContentRenderer is a function that transforms content before outputting
// it. This allows for TUI rendering (markdown to ANSI) without coupling
// the core package.
type ContentRenderer func(string) (string, error)

// NewRunner creates a new Runner. The caller must set Input and Output
// (usually os.Stdin and os.Stdout).
func NewRunner() *Runner {
	return &Runner{}
}

// Run suggests guesses until the puzzle is solved or input runs out,
// reading the observed feedback line by line. Accepted lines:
//
//	ccpaa        feedback for the suggested guess (c correct, p present, a absent)
//	word ccpaa   feedback for a different guess that was played
//	q            give up
func (r *Runner) Run(ctx context.Context, engine *Engine) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	scanner := bufio.NewScanner(r.Input)

	var steps []domain.Step
	for {
		advice, err := engine.Advise(ctx, steps)
		if err != nil {
			return err
		}

		if !r.Headless {
			fmt.Fprintf(r.Output, "%d candidates left, %.2f bits of uncertainty\n", advice.Remaining, advice.EntropyBits)
		}
		r.emit(fmt.Sprintf("try **%s** (expected %.2f bits)", advice.Guess, advice.Gain))

		guess := advice.Guess
		var feedback domain.Pattern
		for feedback == "" {
			if !scanner.Scan() {
				return scanner.Err()
			}
			fields := strings.Fields(scanner.Text())
			var raw string
			switch {
			case len(fields) == 0:
				continue
			case fields[0] == "q" || fields[0] == "quit":
				return nil
			case len(fields) == 1:
				raw = fields[0]
			default:
				played, err := domain.ParseWord(fields[0], engine.letters)
				if err != nil {
					r.emit(err.Error())
					continue
				}
				guess = played
				raw = fields[1]
			}

			parsed, err := domain.ParsePattern(raw)
			if err != nil || parsed.Len() != engine.letters {
				r.emit(fmt.Sprintf("feedback must be %d marks, one of c/p/a per letter", engine.letters))
				continue
			}
			feedback = parsed
		}

		if feedback.AllCorrect() {
			r.emit(fmt.Sprintf("solved: **%s**", guess))
			return nil
		}
		steps = append(steps, domain.Step{Guess: guess, Feedback: feedback})
	}
}

// emit writes a line through the Renderer when one is set.
func (r *Runner) emit(content string) {
	if r.Renderer != nil {
		if rendered, err := r.Renderer(content); err == nil {
			fmt.Fprint(r.Output, rendered)
			return
		}
	}
	fmt.Fprintln(r.Output, content)
}
