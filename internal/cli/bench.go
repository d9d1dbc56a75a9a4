package cli

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/aretw0/winnow/pkg/domain"
	"github.com/aretw0/winnow/pkg/observability"
)

// RunBench solves every dictionary word and reports the guess distribution.
func RunBench(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	engine, err := CreateEngine(opts, logger)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	pool := engine.Words()
	if opts.Limit > 0 && opts.Limit < len(pool) {
		pool = pool[:opts.Limit]
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	fmt.Printf("Solving %d words with %d workers\n", len(pool), workers)
	bar := progressbar.Default(int64(len(pool)), "solving")
	start := time.Now()

	agg := observability.NewAggregator()
	jobs := make(chan domain.Word)

	// Games are independent and the engine carries no per-game state, so
	// the workers share it.
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for w := range jobs {
				res, err := engine.Solve(sigCtx, string(w))
				bar.Add(1)
				if err != nil {
					continue // cancelled mid-solve
				}
				agg.Record(w, res)
			}
		}()
	}

feed:
	for _, w := range pool {
		select {
		case jobs <- w:
		case <-sigCtx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(start)

	summary := agg.Summary()
	if sigCtx.Err() != nil {
		fmt.Println()
		printSystemMessage("Interrupted after %d of %d words.", summary.Played, len(pool))
	}
	if summary.Played == 0 {
		return handleExecutionError(sigCtx.Err())
	}

	printHistogram(summary.Buckets)

	fmt.Printf("Solved %d/%d (%.1f%%)", summary.Solved, summary.Played, summary.SolveRate()*100)
	if summary.Solved > 0 {
		fmt.Printf(", %.2f guesses on average", summary.AverageGuesses())
	}
	fmt.Printf(", in %s.\n", elapsed.Round(time.Millisecond))

	if len(summary.Missed) > 0 {
		printSystemMessage("Missed: %s", joinWords(summary.Missed, 8))
	}

	return handleExecutionError(sigCtx.Err())
}

// printHistogram renders one row per guess count, scaled to the widest bucket.
func printHistogram(histogram map[int]int) {
	buckets := make([]int, 0, len(histogram))
	widest := 0
	for n, count := range histogram {
		buckets = append(buckets, n)
		if count > widest {
			widest = count
		}
	}
	sort.Ints(buckets)

	for _, n := range buckets {
		count := histogram[n]
		width := count * 40 / widest
		if width == 0 {
			width = 1
		}
		fmt.Printf("%2d %s %d\n", n, strings.Repeat("█", width), count)
	}
}

// joinWords lists up to limit words, eliding the rest.
func joinWords(list []domain.Word, limit int) string {
	parts := make([]string, 0, limit+1)
	for i, w := range list {
		if i == limit {
			parts = append(parts, fmt.Sprintf("and %d more", len(list)-limit))
			break
		}
		parts = append(parts, string(w))
	}
	return strings.Join(parts, ", ")
}
