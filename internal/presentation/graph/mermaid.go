// Package graph renders solve histories as Mermaid flowcharts, for
// embedding in docs or dashboards.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/winnow/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of how a game narrowed the
// candidate set: one node per state, one edge per guess. The start node is
// a circle; a won game's final node is filled green.
func GenerateMermaid(start int, history domain.History, outcome domain.Status) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString(fmt.Sprintf("    s0((\"%d words\"))\n", start))

	for i, rec := range history {
		label := fmt.Sprintf("%s %s", rec.Guess, rec.Feedback.Notation(rec.Guess))
		sb.WriteString(fmt.Sprintf("    s%d -->|\"%s\"| s%d[\"%d\"]\n", i, label, i+1, rec.Remaining))
	}

	if outcome == domain.StatusWon && len(history) > 0 {
		sb.WriteString(fmt.Sprintf("    style s%d fill:#538d4e,color:#fff\n", len(history)))
	}
	return sb.String()
}
