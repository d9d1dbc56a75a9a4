package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/aretw0/winnow/pkg/words"
)

func main() {
	source := "/usr/share/dict/words"
	if len(os.Args) > 1 {
		source = os.Args[1]
	}
	target := "words.txt"
	if len(os.Args) > 2 {
		target = os.Args[2]
	}
	length := 5
	if len(os.Args) > 3 {
		n, err := strconv.Atoi(os.Args[3])
		check(err)
		length = n
	}

	fmt.Printf("Generating %d-letter word list in: %s\n", length, target)

	// Run the source through the same cleanup the solver applies, so the
	// fixture matches what the engine would load from the raw dictionary.
	f, err := os.Open(source)
	check(err)
	defer f.Close()

	list, err := words.Collect(f, length)
	check(err)
	if len(list) == 0 {
		panic(fmt.Sprintf("no %d-letter words in %s", length, source))
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %d-letter words from %s\n", length, source)
	for _, w := range list {
		fmt.Fprintln(&buf, w)
	}
	check(os.WriteFile(target, buf.Bytes(), 0644))

	fmt.Printf("Done. %d words written to %s\n", len(list), target)
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
