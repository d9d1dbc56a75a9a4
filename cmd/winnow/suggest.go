package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/winnow/internal/cli"
)

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Advise on a game played elsewhere",
	Long: `Starts the interactive advisor. Winnow proposes a guess; you play it in
the external game and type the feedback back in as marks (c correct,
p present, a absent). Prefix the marks with the word if you played a
different guess, and type 'q' to stop.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadSettings(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		opts := runOptions(cmd, cfg)
		opts.Headless, _ = cmd.Flags().GetBool("headless")

		if err := cli.RunAssist(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	addGameFlags(suggestCmd)
	suggestCmd.Flags().Bool("fresh", false, "Recompute the opening instead of using the cache")
	suggestCmd.Flags().Bool("headless", false, "Plain prompts without the banner or counts")
}
