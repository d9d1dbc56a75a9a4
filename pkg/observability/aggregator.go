package observability

import (
	"sort"
	"sync"

	"github.com/aretw0/winnow/pkg/domain"
)

// Aggregator accumulates finished games into one summary. It is safe
// for concurrent use, so parallel workers can record directly.
type Aggregator struct {
	mu      sync.Mutex
	played  int
	solved  int
	guesses int
	buckets map[int]int
	missed  []domain.Word
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{buckets: make(map[int]int)}
}

// Record adds one finished game against the given solution.
func (a *Aggregator) Record(solution domain.Word, result *domain.Result) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.played++
	if result.Outcome == domain.StatusWon {
		a.solved++
		a.guesses += len(result.GuessesMade)
		a.buckets[len(result.GuessesMade)]++
		return
	}
	a.missed = append(a.missed, solution)
}

// Summary is a point-in-time view of everything recorded so far.
type Summary struct {
	// Played counts finished games.
	Played int

	// Solved counts games that ended in a win.
	Solved int

	// Buckets maps guesses-used to how many wins needed exactly that many.
	Buckets map[int]int

	// Missed lists the solutions of lost games, sorted.
	Missed []domain.Word

	totalGuesses int
}

// Summary snapshots the aggregate. The copy is independent of later
// Record calls.
func (a *Aggregator) Summary() Summary {
	a.mu.Lock()
	defer a.mu.Unlock()

	buckets := make(map[int]int, len(a.buckets))
	for n, c := range a.buckets {
		buckets[n] = c
	}
	missed := make([]domain.Word, len(a.missed))
	copy(missed, a.missed)
	sort.Slice(missed, func(i, j int) bool { return missed[i] < missed[j] })

	return Summary{
		Played:       a.played,
		Solved:       a.solved,
		Buckets:      buckets,
		Missed:       missed,
		totalGuesses: a.guesses,
	}
}

// SolveRate returns the share of played games that were won, 0 to 1.
func (s Summary) SolveRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Solved) / float64(s.Played)
}

// AverageGuesses returns the mean guess count over solved games.
func (s Summary) AverageGuesses() float64 {
	if s.Solved == 0 {
		return 0
	}
	return float64(s.totalGuesses) / float64(s.Solved)
}
