package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aretw0/winnow"
	"github.com/aretw0/winnow/internal/presentation/graph"
	"github.com/aretw0/winnow/internal/presentation/tui"
)

// RunSolve plays one full game against a fixed or random solution.
func RunSolve(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	if !opts.JSON && !opts.Headless {
		tui.PrintBanner(strings.TrimSpace(winnow.Version))
	}

	engine, err := CreateEngine(opts, logger)
	if err != nil {
		return err
	}

	// Setup signal handling
	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	solution := opts.Solution
	if solution == "" {
		solution = string(engine.RandomSolution())
		if !opts.JSON && !opts.Headless {
			// The report reveals the word at the end; no spoilers here.
			printSystemMessage("Picked a hidden word from %d candidates.", len(engine.Words()))
		}
	}

	start := time.Now()
	result, runErr := engine.Solve(sigCtx, solution)
	elapsed := time.Since(start)

	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}
	if runErr != nil {
		logCompletion(runErr, opts.Debug, false, opts.JSON || opts.Headless, sigCtx.Signal())
		return handleExecutionError(runErr)
	}

	if opts.JSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	if opts.Headless {
		printSystemMessage("%s in %d guesses (%.2fs).", result.Outcome, len(result.GuessesMade), elapsed.Seconds())
	} else {
		fmt.Println(tui.RenderBoard(result.History))
		report := tui.BuildReport(result, elapsed)
		if rendered, rerr := tui.NewRenderer()(report); rerr == nil {
			fmt.Print(rendered)
		} else {
			fmt.Println(report)
		}
	}

	if opts.GraphPath != "" {
		diagram := graph.GenerateMermaid(len(engine.Words()), result.History, result.Outcome)
		if err := os.WriteFile(opts.GraphPath, []byte(diagram), 0644); err != nil {
			return fmt.Errorf("error writing graph: %w", err)
		}
		if !opts.JSON && !opts.Headless {
			printSystemMessage("Wrote solve graph to '%s'.", opts.GraphPath)
		}
	}

	return nil
}
