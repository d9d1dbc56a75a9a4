package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/winnow"
	"github.com/aretw0/winnow/pkg/adapters/file"
	"github.com/aretw0/winnow/pkg/domain"
)

// systemWordList is consulted when no conventional list is found next to
// the working directory. Package variable so tests can point it elsewhere.
var systemWordList = "/usr/share/dict/words"

// CreateEngine initializes a winnow engine with standard CLI conventions.
func CreateEngine(opts RunOptions, logger *slog.Logger) (*winnow.Engine, error) {
	// 1. Logger & Hooks
	engineOpts := []winnow.Option{winnow.WithLogger(logger)}
	if opts.Debug {
		engineOpts = append(engineOpts, winnow.WithLifecycleHooks(createDebugHooks(logger)))
	}

	// 2. Game settings
	if opts.Letters > 0 {
		engineOpts = append(engineOpts, winnow.WithLetters(opts.Letters))
	}
	if opts.Guesses > 0 {
		engineOpts = append(engineOpts, winnow.WithGuessLimit(opts.Guesses))
	}
	if opts.Pool != "" {
		policy, err := domain.ParsePoolPolicy(opts.Pool)
		if err != nil {
			return nil, err
		}
		engineOpts = append(engineOpts, winnow.WithPoolPolicy(policy))
	}
	if opts.Opening != "" {
		engineOpts = append(engineOpts, winnow.WithOpening(opts.Opening))
	}
	if opts.ProperNouns {
		engineOpts = append(engineOpts, winnow.WithProperNouns())
	}

	// 3. Opening cache
	// Shared across runs so repeated solves skip the first-guess search.
	book := file.New("")
	if opts.Fresh {
		if err := book.Clear(); err != nil {
			return nil, fmt.Errorf("error clearing opening cache: %w", err)
		}
	}
	engineOpts = append(engineOpts, winnow.WithOpeningBook(book))

	// 4. Initialize
	engine, err := winnow.New(ResolveWordList(".", opts.WordsPath), engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}

	return engine, nil
}

// ResolveWordList picks the word list file for a run. An explicit path
// wins; otherwise conventional names in dir are tried before the system
// dictionary.
// Note: the unresolved fallback still returns "words.txt" so the engine
// reports a concrete missing file instead of an empty path.
func ResolveWordList(dir, explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"words.txt", "wordlist.txt", "linuxwords.txt"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	if _, err := os.Stat(systemWordList); err == nil {
		return systemWordList
	}
	return filepath.Join(dir, "words.txt")
}
