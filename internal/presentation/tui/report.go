package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/aretw0/winnow/pkg/domain"
)

// NewRenderer returns a function that renders markdown using glamour.
// It adapts to the terminal's background and width.
func NewRenderer() func(string) (string, error) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// BuildReport formats a finished game as markdown for the terminal.
func BuildReport(result *domain.Result, elapsed time.Duration) string {
	var b strings.Builder

	b.WriteString("# Solve report\n\n")
	switch {
	case result.Outcome == domain.StatusWon:
		fmt.Fprintf(&b, "Solved **%s** in **%d** guesses (%s).\n\n",
			result.FinalGuess, len(result.History), elapsed.Round(time.Millisecond))
	case result.Reason != nil:
		fmt.Fprintf(&b, "Gave up after %d guesses: %s.\n\n", len(result.History), result.Reason)
	default:
		fmt.Fprintf(&b, "Out of guesses after %d attempts (%s).\n\n",
			len(result.History), elapsed.Round(time.Millisecond))
	}

	if len(result.History) == 0 {
		return b.String()
	}

	b.WriteString("| # | Guess | Feedback | Left | Bits |\n")
	b.WriteString("|---|-------|----------|------|------|\n")
	for i, rec := range result.History {
		fmt.Fprintf(&b, "| %d | %s | `%s` | %d | %.2f |\n",
			i+1, rec.Guess, rec.Feedback.Notation(rec.Guess), rec.Remaining, rec.Gain)
	}
	return b.String()
}
