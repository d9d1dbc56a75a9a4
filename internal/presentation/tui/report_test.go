package tui_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aretw0/winnow/internal/presentation/tui"
	"github.com/aretw0/winnow/pkg/domain"
)

func TestBuildReport(t *testing.T) {
	won := &domain.Result{
		Outcome:    domain.StatusWon,
		FinalGuess: "crane",
		History: domain.History{
			{Guess: "slate", Feedback: domain.NewPattern(domain.Absent, domain.Absent, domain.Correct, domain.Absent, domain.Correct), Remaining: 2, Gain: 1.9219},
			{Guess: "crane", Feedback: domain.NewPattern(domain.Correct, domain.Correct, domain.Correct, domain.Correct, domain.Correct), Remaining: 1, Gain: 1.0},
		},
	}

	tests := []struct {
		name     string
		result   *domain.Result
		contains []string
	}{
		{
			name:   "won",
			result: won,
			contains: []string{
				"Solved **crane** in **2** guesses",
				"| 1 | slate | `__A_E` | 2 | 1.92 |",
				"| 2 | crane | `CRANE` | 1 | 1.00 |",
			},
		},
		{
			name: "lost with reason",
			result: &domain.Result{
				Outcome: domain.StatusLost,
				History: domain.History{
					{Guess: "slate", Feedback: domain.NewPattern(domain.Absent, domain.Absent, domain.Absent, domain.Absent, domain.Absent), Remaining: 0, Gain: 2.32},
				},
				Reason: domain.ErrNoCandidates,
			},
			contains: []string{
				"Gave up after 1 guesses",
				"no candidates remain",
			},
		},
		{
			name:     "nothing played",
			result:   &domain.Result{Outcome: domain.StatusLost},
			contains: []string{"Out of guesses after 0 attempts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tui.BuildReport(tt.result, 1500*time.Millisecond)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("report missing %q in:\n%s", want, out)
				}
			}
		})
	}
}
