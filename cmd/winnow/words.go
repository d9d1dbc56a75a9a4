package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/winnow/internal/cli"
	"github.com/aretw0/winnow/pkg/entropy"
	"github.com/aretw0/winnow/pkg/words"
)

// wordsCmd represents the words command
var wordsCmd = &cobra.Command{
	Use:   "words [file]",
	Short: "Inspect a word list",
	Long: `Loads a word list the same way the solver does and reports what
survives the cleanup: how many words remain, the starting uncertainty
in bits, and how their first letters are distributed.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		letters, _ := cmd.Flags().GetInt("letters")
		properNouns, _ := cmd.Flags().GetBool("proper-nouns")
		sample, _ := cmd.Flags().GetInt("sample")

		explicit := ""
		if len(args) > 0 {
			explicit = args[0]
		}
		path := cli.ResolveWordList(".", explicit)

		var opts []words.Option
		if properNouns {
			opts = append(opts, words.WithProperNouns())
		}
		list, err := words.Load(path, letters, opts...)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if len(list) == 0 {
			fmt.Printf("%s: no usable words of %d letters\n", path, letters)
			os.Exit(1)
		}

		fmt.Printf("%s: %d words of %d letters\n", path, len(list), letters)
		fmt.Printf("Starting uncertainty: %.2f bits\n", entropy.SetEntropy(len(list)))

		fmt.Println()
		fmt.Println("First letters:")
		printDistribution(words.LeadingLetterCounts(list))

		if sample > 0 {
			if sample > len(list) {
				sample = len(list)
			}
			fmt.Println()
			fmt.Printf("Sample (%d):\n", sample)
			for _, w := range list[:sample] {
				fmt.Printf("  %s\n", w)
			}
		}
	},
}

// printDistribution charts a letter histogram, widest bucket first.
func printDistribution(counts map[string]int) {
	letters := make([]string, 0, len(counts))
	widest := 0
	for letter, count := range counts {
		letters = append(letters, letter)
		if count > widest {
			widest = count
		}
	}
	sort.Slice(letters, func(i, j int) bool {
		if counts[letters[i]] != counts[letters[j]] {
			return counts[letters[i]] > counts[letters[j]]
		}
		return letters[i] < letters[j]
	})

	for _, letter := range letters {
		count := counts[letter]
		width := count * 40 / widest
		if width < 1 {
			width = 1
		}
		fmt.Printf("%s %s %d\n", letter, strings.Repeat("█", width), count)
	}
}

func init() {
	rootCmd.AddCommand(wordsCmd)

	wordsCmd.Flags().IntP("letters", "l", 5, "Word length to keep")
	wordsCmd.Flags().Bool("proper-nouns", false, "Keep capitalized entries")
	wordsCmd.Flags().Int("sample", 0, "Print the first N words that survive")
}
