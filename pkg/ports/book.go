package ports

import (
	"context"

	"github.com/aretw0/winnow/pkg/domain"
)

// OpeningBook caches the best first guess per dictionary. Entries are
// keyed by word length and dictionary size, which together identify a
// dictionary closely enough for caching purposes.
type OpeningBook interface {
	// Best retrieves the cached opening for a dictionary.
	// Returns domain.ErrOpeningNotFound if none has been stored.
	Best(ctx context.Context, letters, size int) (*domain.Opening, error)

	// Put stores the opening for a dictionary, replacing any previous entry.
	Put(ctx context.Context, letters, size int, opening *domain.Opening) error

	// Delete removes the opening for a dictionary.
	Delete(ctx context.Context, letters, size int) error
}
