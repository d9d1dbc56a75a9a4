package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/winnow/internal/cli"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve [solution]",
	Short: "Play a full game against a known or random solution",
	Long: `Runs the solver end to end: it picks guesses, scores the feedback itself,
and prints the board with a closing report. Without a solution argument a
random dictionary word is used.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadSettings(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		opts := runOptions(cmd, cfg)
		if len(args) > 0 {
			opts.Solution = args[0]
		}
		opts.Headless, _ = cmd.Flags().GetBool("headless")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.GraphPath, _ = cmd.Flags().GetString("graph")

		if err := cli.RunSolve(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	addGameFlags(solveCmd)
	solveCmd.Flags().Bool("fresh", false, "Recompute the opening instead of using the cache")
	solveCmd.Flags().Bool("headless", false, "Single summary line instead of the board")
	solveCmd.Flags().Bool("json", false, "Print the result as JSON")
	solveCmd.Flags().String("graph", "", "Write a Mermaid diagram of the solve to this file")

	// Make 'solve' the default if no command is provided?
	rootCmd.Run = solveCmd.Run
}
