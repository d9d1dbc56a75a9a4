package tui

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/winnow/pkg/domain"
)

// Tile colors follow the familiar share-card palette.
const (
	colorCorrect = "#538d4e"
	colorPresent = "#b59f3b"
	colorAbsent  = "#3a3a3c"
	colorLetter  = "#ffffff"
)

func markColor(m domain.Mark) string {
	switch m {
	case domain.Correct:
		return colorCorrect
	case domain.Present:
		return colorPresent
	default:
		return colorAbsent
	}
}

// RenderRow renders one guess as a row of colored tiles.
func RenderRow(rec domain.Record) string {
	p := termenv.ColorProfile()
	var b strings.Builder
	for i := 0; i < len(rec.Guess); i++ {
		tile := termenv.String(" " + strings.ToUpper(string(rec.Guess[i])) + " ").
			Background(p.Color(markColor(rec.Feedback.At(i)))).
			Foreground(p.Color(colorLetter)).
			Bold()
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(tile.String())
	}
	return b.String()
}

// RenderBoard renders the full guess history, one row per guess.
func RenderBoard(history domain.History) string {
	rows := make([]string, len(history))
	for i, rec := range history {
		rows[i] = RenderRow(rec)
	}
	return strings.Join(rows, "\n")
}
