package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/winnow/internal/cli"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Solve every dictionary word and chart the guess counts",
	Long: `Plays a full game against each word of the dictionary and prints the
distribution of guesses needed, along with any words the solver missed
within the guess budget.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadSettings(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		opts := runOptions(cmd, cfg)
		opts.Workers, _ = cmd.Flags().GetInt("workers")
		opts.Limit, _ = cmd.Flags().GetInt("limit")

		if err := cli.RunBench(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)

	addGameFlags(benchCmd)
	benchCmd.Flags().Bool("fresh", false, "Recompute the opening instead of using the cache")
	benchCmd.Flags().Int("workers", 0, "Parallel solvers (0 = one per CPU)")
	benchCmd.Flags().Int("limit", 0, "Bench only the first N words (0 = all)")
}
