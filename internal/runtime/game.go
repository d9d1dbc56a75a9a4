package runtime

import (
	"github.com/aretw0/winnow/pkg/candidates"
	"github.com/aretw0/winnow/pkg/domain"
	"github.com/aretw0/winnow/pkg/entropy"
)

// Game is one live puzzle: the surviving candidate set plus everything
// recorded about the guesses so far. Games are not safe for concurrent
// use; a caller solving several puzzles at once must give each its own
// Game.
type Game struct {
	// ID labels the game in events and logs. The session layer sets it;
	// library callers may leave it empty.
	ID string

	solution  domain.Word // empty when feedback comes from outside
	letters   int
	dict      []domain.Word
	set       *candidates.Set
	history   domain.History
	remaining int
	status    domain.Status
	reason    error
}

// Letters returns the word length of the puzzle.
func (g *Game) Letters() int { return g.letters }

// Solution returns the target word, empty for assist-mode games.
func (g *Game) Solution() domain.Word { return g.solution }

// Dictionary returns the full guess dictionary backing the game.
func (g *Game) Dictionary() []domain.Word { return g.dict }

// Candidates returns the live candidate set.
func (g *Game) Candidates() *candidates.Set { return g.set }

// History returns the records of guesses played so far.
func (g *Game) History() domain.History { return g.history }

// Remaining returns how many guesses are left.
func (g *Game) Remaining() int { return g.remaining }

// Status returns the current state of the puzzle.
func (g *Game) Status() domain.Status { return g.status }

// Entropy returns the current uncertainty over the candidates, in bits.
func (g *Game) Entropy() float64 {
	return entropy.SetEntropy(g.set.Len())
}

// Result snapshots the game into its reportable outcome. It can be
// called at any point; before a terminal transition the Outcome carries
// the in-flight status.
func (g *Game) Result() *domain.Result {
	res := &domain.Result{
		Outcome:     g.status,
		GuessesMade: g.history.Guesses(),
		History:     g.history,
		Reason:      g.reason,
	}
	if last, ok := g.history.Last(); ok {
		res.FinalGuess = last.Guess
	}
	return res
}
