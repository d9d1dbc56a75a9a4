package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/winnow/internal/presentation/graph"
	"github.com/aretw0/winnow/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	history := domain.History{
		{Guess: "slate", Feedback: domain.NewPattern(domain.Absent, domain.Absent, domain.Correct, domain.Absent, domain.Correct), Remaining: 12},
		{Guess: "crane", Feedback: domain.NewPattern(domain.Correct, domain.Correct, domain.Correct, domain.Correct, domain.Correct), Remaining: 1},
	}

	tests := []struct {
		name     string
		start    int
		history  domain.History
		outcome  domain.Status
		contains []string
		excludes []string
	}{
		{
			name:    "won funnel",
			start:   2315,
			history: history,
			outcome: domain.StatusWon,
			contains: []string{
				"graph TD",
				`s0(("2315 words"))`,
				`s0 -->|"slate __A_E"| s1["12"]`,
				`s1 -->|"crane CRANE"| s2["1"]`,
				"style s2 fill:#538d4e",
			},
		},
		{
			name:     "lost keeps default style",
			start:    100,
			history:  history[:1],
			outcome:  domain.StatusLost,
			excludes: []string{"style"},
		},
		{
			name:     "empty history",
			start:    50,
			outcome:  domain.StatusStart,
			contains: []string{`s0(("50 words"))`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := graph.GenerateMermaid(tt.start, tt.history, tt.outcome)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("missing %q in:\n%s", want, out)
				}
			}
			for _, banned := range tt.excludes {
				if strings.Contains(out, banned) {
					t.Errorf("unexpected %q in:\n%s", banned, out)
				}
			}
		})
	}
}
