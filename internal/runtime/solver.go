package runtime

import (
	"context"
	"errors"
	"fmt"

	"log/slog"

	"github.com/aretw0/winnow/internal/logging"
	"github.com/aretw0/winnow/pkg/candidates"
	"github.com/aretw0/winnow/pkg/domain"
	"github.com/aretw0/winnow/pkg/entropy"
	"github.com/aretw0/winnow/pkg/ports"
)

// DefaultGuessLimit matches the classic six-round game.
const DefaultGuessLimit = 6

// adviceSample caps how many surviving candidates an Advice carries.
const adviceSample = 20

// Engine runs the guess/filter loop. It holds per-puzzle policy only;
// all mutable state lives in the Game, so one Engine can serve any
// number of independent games concurrently.
type Engine struct {
	limit   int
	policy  domain.PoolPolicy
	book    ports.OpeningBook
	opening domain.Word
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithGuessLimit sets how many guesses each game allows.
func WithGuessLimit(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.limit = n
		}
	}
}

// WithPoolPolicy selects where candidate guesses are drawn from.
func WithPoolPolicy(p domain.PoolPolicy) EngineOption {
	return func(e *Engine) {
		if p != "" {
			e.policy = p
		}
	}
}

// WithOpeningBook caches the computed first guess per dictionary.
func WithOpeningBook(book ports.OpeningBook) EngineOption {
	return func(e *Engine) {
		e.book = book
	}
}

// WithOpeningWord fixes the first guess instead of searching for it.
// The word must belong to the dictionary in play.
func WithOpeningWord(w domain.Word) EngineOption {
	return func(e *Engine) {
		e.opening = w
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine with the given options.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		limit:  DefaultGuessLimit,
		policy: domain.PoolCandidates,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewGame starts a puzzle against a known solution. The dictionary must
// be non-empty and uniform in length; the solution does not have to be
// a member, though such a game cannot be won.
func (e *Engine) NewGame(dict []domain.Word, solution domain.Word) (*Game, error) {
	g, err := e.newGame(dict)
	if err != nil {
		return nil, err
	}
	if len(solution) != g.letters {
		return nil, fmt.Errorf("%w: solution %q has %d letters, dictionary has %d",
			domain.ErrLengthMismatch, solution, len(solution), g.letters)
	}
	g.solution = solution
	return g, nil
}

// NewAssist starts a puzzle whose solution is unknown. Feedback arrives
// from an externally played game via ApplyFeedback.
func (e *Engine) NewAssist(dict []domain.Word) (*Game, error) {
	return e.newGame(dict)
}

func (e *Engine) newGame(dict []domain.Word) (*Game, error) {
	if len(dict) == 0 {
		return nil, domain.ErrEmptyGuessPool
	}
	return &Game{
		letters:   len(dict[0]),
		dict:      dict,
		set:       candidates.New(dict),
		remaining: e.limit,
		status:    domain.StatusStart,
	}, nil
}

// pool returns the words the engine may guess from, per policy.
func (e *Engine) pool(g *Game) []domain.Word {
	if e.policy == domain.PoolDictionary {
		return g.dict
	}
	return g.set.Words()
}

// Suggest returns the best next guess for the game without playing it.
func (e *Engine) Suggest(ctx context.Context, g *Game) (domain.Word, float64, error) {
	if g.status.Finished() {
		return "", 0, domain.ErrGameOver
	}
	if len(g.history) == 0 {
		return e.openingGuess(ctx, g)
	}
	return entropy.BestGuess(e.pool(g), g.set)
}

// openingGuess resolves the first guess: a fixed word, a cached book
// entry, or a full search whose result seeds the book.
func (e *Engine) openingGuess(ctx context.Context, g *Game) (domain.Word, float64, error) {
	if e.opening != "" {
		if len(e.opening) != g.letters {
			return "", 0, fmt.Errorf("%w: opening %q has %d letters, dictionary has %d",
				domain.ErrLengthMismatch, e.opening, len(e.opening), g.letters)
		}
		gain, err := entropy.Gain(e.opening, g.set)
		if err != nil {
			return "", 0, err
		}
		return e.opening, gain, nil
	}

	if e.book != nil {
		cached, err := e.book.Best(ctx, g.letters, len(g.dict))
		if err == nil {
			e.logger.DebugContext(ctx, "opening served from book",
				"guess", cached.Guess, "letters", g.letters, "dict_size", len(g.dict))
			return cached.Guess, cached.Gain, nil
		}
		if !errors.Is(err, domain.ErrOpeningNotFound) {
			e.logger.WarnContext(ctx, "opening book lookup failed", "err", err)
		}
	}

	best, gain, err := entropy.BestGuess(e.pool(g), g.set)
	if err != nil {
		return "", 0, err
	}

	if e.book != nil {
		if err := e.book.Put(ctx, g.letters, len(g.dict), &domain.Opening{Guess: best, Gain: gain}); err != nil {
			e.logger.WarnContext(ctx, "opening book update failed", "err", err)
		}
	}
	return best, gain, nil
}

// Guess plays one word against the game's known solution. Games without
// a solution take their feedback through ApplyFeedback instead.
func (e *Engine) Guess(ctx context.Context, g *Game, guess domain.Word) (*domain.Record, error) {
	if g.solution == "" {
		return nil, errors.New("game has no solution; use ApplyFeedback")
	}
	if g.status.Finished() {
		return nil, domain.ErrGameOver
	}
	if len(guess) != g.letters {
		return nil, fmt.Errorf("%w: guess %q has %d letters, expected %d",
			domain.ErrLengthMismatch, guess, len(guess), g.letters)
	}
	if !g.set.InDictionary(guess) {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotInDictionary, guess)
	}

	feedback, err := domain.Evaluate(guess, g.solution)
	if err != nil {
		return nil, err
	}
	return e.apply(ctx, g, guess, feedback)
}

// ApplyFeedback records externally observed feedback for a guess. The
// guess is not required to be in the dictionary, since the outside game
// already accepted it.
func (e *Engine) ApplyFeedback(ctx context.Context, g *Game, guess domain.Word, feedback domain.Pattern) (*domain.Record, error) {
	if g.status.Finished() {
		return nil, domain.ErrGameOver
	}
	if len(guess) != g.letters {
		return nil, fmt.Errorf("%w: guess %q has %d letters, expected %d",
			domain.ErrLengthMismatch, guess, len(guess), g.letters)
	}
	if feedback.Len() != g.letters {
		return nil, fmt.Errorf("%w: feedback has %d marks, expected %d",
			domain.ErrLengthMismatch, feedback.Len(), g.letters)
	}
	return e.apply(ctx, g, guess, feedback)
}

// apply performs the guessing transition: score, filter, record, and
// settle the state machine.
func (e *Engine) apply(ctx context.Context, g *Game, guess domain.Word, feedback domain.Pattern) (*domain.Record, error) {
	gain, err := entropy.Gain(guess, g.set)
	if err != nil {
		return nil, err
	}

	filtered, err := g.set.Filter(guess, feedback)
	if err != nil {
		return nil, err
	}
	g.set = filtered

	rec := domain.Record{Guess: guess, Feedback: feedback, Remaining: filtered.Len(), Gain: gain}
	g.history = append(g.history, rec)
	g.status = domain.StatusGuessing

	e.logger.DebugContext(ctx, "guess applied",
		"game_id", g.ID,
		"guess", guess,
		"feedback", feedback.Letters(),
		"remaining", rec.Remaining,
		"gain", rec.Gain,
	)
	e.emitGuess(ctx, g, rec)

	// Won is checked before the decrement so a hit on the final allowed
	// attempt still reports Won.
	if feedback.AllCorrect() {
		g.status = domain.StatusWon
		e.emitFinish(ctx, g)
		return &rec, nil
	}

	g.remaining--
	switch {
	case filtered.Len() == 0:
		e.fail(ctx, g, domain.ErrNoCandidates)
	case g.remaining <= 0:
		g.status = domain.StatusLost
		e.emitFinish(ctx, g)
	}
	return &rec, nil
}

// fail ends the game early with a core failure on record.
func (e *Engine) fail(ctx context.Context, g *Game, reason error) {
	g.status = domain.StatusLost
	g.reason = reason
	e.logger.WarnContext(ctx, "game failed", "game_id", g.ID, "reason", reason)
	e.emitFinish(ctx, g)
}

// Solve runs the loop to completion. Core failures (no candidates left,
// empty guess pool) end the game as Lost with the cause on
// Result.Reason; the returned error is reserved for cancellation.
func (e *Engine) Solve(ctx context.Context, g *Game) (*domain.Result, error) {
	if g.solution == "" {
		return nil, errors.New("cannot solve a game without a solution")
	}

	for !g.status.Finished() {
		// Each iteration is the natural cancellation point.
		select {
		case <-ctx.Done():
			return g.Result(), ctx.Err()
		default:
		}

		guess, _, err := e.Suggest(ctx, g)
		if err != nil {
			e.fail(ctx, g, err)
			break
		}
		if _, err := e.Guess(ctx, g, guess); err != nil {
			e.fail(ctx, g, err)
			break
		}
	}
	return g.Result(), nil
}

// Advise recomputes the candidate set from the observed steps of an
// externally played game and recommends the next guess. It is
// stateless: the same dictionary and steps always produce the same
// advice.
func (e *Engine) Advise(ctx context.Context, dict []domain.Word, steps []domain.Step) (*domain.Advice, error) {
	g, err := e.NewAssist(dict)
	if err != nil {
		return nil, err
	}

	for _, step := range steps {
		if len(step.Guess) != g.letters {
			return nil, fmt.Errorf("%w: step guess %q has %d letters, expected %d",
				domain.ErrLengthMismatch, step.Guess, len(step.Guess), g.letters)
		}
		if step.Feedback.Len() != g.letters {
			return nil, fmt.Errorf("%w: step feedback has %d marks, expected %d",
				domain.ErrLengthMismatch, step.Feedback.Len(), g.letters)
		}
		g.set, err = g.set.Filter(step.Guess, step.Feedback)
		if err != nil {
			return nil, err
		}
	}
	if g.set.Len() == 0 {
		return nil, domain.ErrNoCandidates
	}

	var best domain.Word
	var gain float64
	if len(steps) == 0 {
		best, gain, err = e.openingGuess(ctx, g)
	} else {
		best, gain, err = entropy.BestGuess(e.pool(g), g.set)
	}
	if err != nil {
		return nil, err
	}

	return &domain.Advice{
		Guess:       best,
		Gain:        gain,
		Remaining:   g.set.Len(),
		EntropyBits: entropy.SetEntropy(g.set.Len()),
		Sample:      g.set.Sample(adviceSample),
	}, nil
}
