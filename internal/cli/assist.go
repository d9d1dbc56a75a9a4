package cli

import (
	"context"
	"os"
	"strings"

	"github.com/aretw0/winnow"
	"github.com/aretw0/winnow/internal/presentation/tui"
)

// RunAssist drives the interactive advisor for a game played elsewhere.
func RunAssist(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	if !opts.Headless {
		tui.PrintBanner(strings.TrimSpace(winnow.Version))
	}

	engine, err := CreateEngine(opts, logger)
	if err != nil {
		return err
	}

	// Setup signal handling
	// The interruptible reader unblocks Stdin when the context dies.
	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	if !opts.Headless {
		printSystemMessage("Advising on %d words of %d letters.", len(engine.Words()), engine.Letters())
		printSystemMessage("Answer with marks (c correct, p present, a absent), 'word marks' if you played another word, or 'q' to stop.")
	}

	runner := winnow.NewRunner()
	runner.Input = NewInterruptibleReader(os.Stdin, sigCtx.Done())
	runner.Output = os.Stdout
	runner.Headless = opts.Headless
	if !opts.Headless {
		runner.Renderer = tui.NewRenderer()
	}

	runErr := runner.Run(sigCtx, engine)
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}

	logCompletion(runErr, opts.Debug, true, opts.Headless, sigCtx.Signal())
	return handleExecutionError(runErr)
}
