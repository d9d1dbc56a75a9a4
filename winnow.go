package winnow

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"path/filepath"

	"github.com/aretw0/winnow/internal/logging"
	"github.com/aretw0/winnow/internal/runtime"
	"github.com/aretw0/winnow/pkg/domain"
	"github.com/aretw0/winnow/pkg/ports"
	"github.com/aretw0/winnow/pkg/words"
)

// Engine is the high-level entry point for the winnow library.
// It wraps the internal solver runtime and provides a simplified API for
// consumers.
type Engine struct {
	runtime     *runtime.Engine
	dict        []domain.Word
	letters     int
	opening     string
	properNouns bool
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	runtimeOpts []runtime.EngineOption
	Name        string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithWords injects the word list directly, bypassing the file loader.
func WithWords(list []domain.Word) Option {
	return func(e *Engine) {
		e.dict = list
	}
}

// WithLetters sets the word length to load (default: 5). Ignored when
// WithWords is used.
func WithLetters(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.letters = n
		}
	}
}

// WithProperNouns keeps capitalized word list entries instead of skipping
// them. Ignored when WithWords is used.
func WithProperNouns() Option {
	return func(e *Engine) {
		e.properNouns = true
	}
}

// WithGuessLimit overrides the guess budget (default: 6).
func WithGuessLimit(n int) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithGuessLimit(n))
	}
}

// WithPoolPolicy selects where guesses are drawn from: the surviving
// candidates only, or the whole dictionary.
func WithPoolPolicy(p domain.PoolPolicy) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithPoolPolicy(p))
	}
}

// WithOpeningBook caches computed opening guesses across games.
func WithOpeningBook(book ports.OpeningBook) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithOpeningBook(book))
	}
}

// WithOpening fixes the first guess instead of computing it. The word must
// be in the dictionary, or every game will fail on its first guess.
func WithOpening(word string) Option {
	return func(e *Engine) {
		e.opening = word
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a winnow Engine from a word list file, one word per
// line. If the WithWords option is provided, wordListPath can be empty and
// the file system is never touched.
func New(wordListPath string, opts ...Option) (*Engine, error) {
	eng := &Engine{letters: 5}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.dict == nil {
		if wordListPath == "" {
			return nil, fmt.Errorf("wordListPath is required when no word list is injected")
		}
		var loadOpts []words.Option
		if eng.properNouns {
			loadOpts = append(loadOpts, words.WithProperNouns())
		}
		list, err := words.Load(wordListPath, eng.letters, loadOpts...)
		if err != nil {
			return nil, err
		}
		eng.dict = list
		eng.Name = filepath.Base(wordListPath)
	}

	if len(eng.dict) == 0 {
		return nil, fmt.Errorf("no usable words: %w", domain.ErrEmptyGuessPool)
	}
	eng.letters = len(eng.dict[0])

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("list", eng.Name)
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	}
	if eng.opening != "" {
		opening, err := domain.ParseWord(eng.opening, eng.letters)
		if err != nil {
			return nil, fmt.Errorf("invalid opening: %w", err)
		}
		runtimeOpts = append(runtimeOpts, runtime.WithOpeningWord(opening))
	}
	runtimeOpts = append(runtimeOpts, eng.runtimeOpts...)

	eng.runtime = runtime.NewEngine(runtimeOpts...)
	return eng, nil
}

// Words returns the loaded dictionary, sorted.
func (e *Engine) Words() []domain.Word {
	return e.dict
}

// Letters returns the word length the engine operates on.
func (e *Engine) Letters() int {
	return e.letters
}

// RandomSolution picks a dictionary word to play against.
func (e *Engine) RandomSolution() domain.Word {
	return e.dict[rand.IntN(len(e.dict))]
}

// Solve plays a full game against the given solution. Core failures (no
// candidates left, out of guesses) are reported on Result.Reason; the
// returned error is reserved for invalid input and cancellation.
func (e *Engine) Solve(ctx context.Context, solution string) (*domain.Result, error) {
	parsed, err := domain.ParseWord(solution, e.letters)
	if err != nil {
		return nil, err
	}
	game, err := e.runtime.NewGame(e.dict, parsed)
	if err != nil {
		return nil, err
	}
	return e.runtime.Solve(ctx, game)
}

// Advise recommends the next guess for an externally-played game, given
// the rounds observed so far.
func (e *Engine) Advise(ctx context.Context, steps []domain.Step) (*domain.Advice, error) {
	return e.runtime.Advise(ctx, e.dict, steps)
}
