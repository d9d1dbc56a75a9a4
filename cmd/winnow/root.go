package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/winnow/internal/cli"
	"github.com/aretw0/winnow/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "winnow",
	Short: "Winnow is an entropy-driven word puzzle solver",
	Long: `Winnow plays and assists letter-feedback word puzzles. It ranks guesses
by expected information gain and prunes the candidate list with the
feedback each guess earns.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "winnow.yaml", "Configuration file (WINNOW_CONFIG overrides the default)")
	rootCmd.PersistentFlags().StringP("words", "w", "", "Word list file, one word per line")
	rootCmd.PersistentFlags().Bool("debug", false, "Log engine internals to stderr")
}

// addGameFlags registers the game tuning flags shared by the play commands.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("letters", "l", 5, "Word length to play with")
	cmd.Flags().IntP("guesses", "g", 6, "Guess budget per game")
	cmd.Flags().String("pool", "candidates", "Guess pool: 'candidates' or 'dictionary'")
	cmd.Flags().String("opening", "", "Fixed first guess")
	cmd.Flags().Bool("proper-nouns", false, "Keep capitalized words from the list")
}

// loadSettings resolves the configuration file and applies flag overrides.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if !cmd.Flags().Changed("config") {
		if env := os.Getenv("WINNOW_CONFIG"); env != "" {
			path = env
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("words") {
		cfg.Words, _ = cmd.Flags().GetString("words")
	}
	if cmd.Flags().Changed("letters") {
		cfg.Letters, _ = cmd.Flags().GetInt("letters")
	}
	if cmd.Flags().Changed("guesses") {
		cfg.Guesses, _ = cmd.Flags().GetInt("guesses")
	}
	if cmd.Flags().Changed("pool") {
		cfg.Pool, _ = cmd.Flags().GetString("pool")
	}
	if cmd.Flags().Changed("opening") {
		cfg.Opening, _ = cmd.Flags().GetString("opening")
	}
	if cmd.Flags().Changed("proper-nouns") {
		cfg.ProperNouns, _ = cmd.Flags().GetBool("proper-nouns")
	}

	return cfg, nil
}

// runOptions converts the resolved settings into options for internal/cli.
func runOptions(cmd *cobra.Command, cfg config.Config) cli.RunOptions {
	debug, _ := cmd.Flags().GetBool("debug")
	fresh, _ := cmd.Flags().GetBool("fresh")
	return cli.RunOptions{
		WordsPath:   cfg.Words,
		Letters:     cfg.Letters,
		Guesses:     cfg.Guesses,
		Pool:        cfg.Pool,
		Opening:     cfg.Opening,
		ProperNouns: cfg.ProperNouns,
		Fresh:       fresh,
		Debug:       debug,
	}
}
