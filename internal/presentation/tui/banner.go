package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the wordmark as a row of feedback tiles.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	colors := []string{colorCorrect, colorPresent, colorAbsent, colorCorrect, colorPresent, colorCorrect}

	var line string
	for i, r := range "WINNOW" {
		cell := termenv.String(" " + string(r) + " ").
			Background(p.Color(colors[i%len(colors)])).
			Foreground(p.Color(colorLetter)).
			Bold()
		if i > 0 {
			line += " "
		}
		line += cell.String()
	}

	fmt.Println()
	fmt.Println("  " + line)
	if version != "" {
		fmt.Printf("  entropy-guided word solving %s\n", version)
	}
	fmt.Println()
}
