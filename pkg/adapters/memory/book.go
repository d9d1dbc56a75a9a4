// Package memory provides in-memory adapters, useful for tests and
// single-process deployments.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/winnow/pkg/domain"
)

// Book implements ports.OpeningBook in memory.
// Safe for concurrent use.
type Book struct {
	data map[string]*domain.Opening
	mu   sync.RWMutex
}

// NewBook creates a new in-memory opening book.
func NewBook() *Book {
	return &Book{
		data: make(map[string]*domain.Opening),
	}
}

func bookKey(letters, size int) string {
	return fmt.Sprintf("%d:%d", letters, size)
}

// Best retrieves the cached opening.
func (b *Book) Best(ctx context.Context, letters, size int) (*domain.Opening, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	opening, ok := b.data[bookKey(letters, size)]
	if !ok {
		return nil, domain.ErrOpeningNotFound
	}

	// Copy on read so the caller can't mutate the stored entry by pointer
	ret := *opening
	return &ret, nil
}

// Put stores the opening, replacing any previous entry.
func (b *Book) Put(ctx context.Context, letters, size int, opening *domain.Opening) error {
	copied := *opening

	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[bookKey(letters, size)] = &copied
	return nil
}

// Delete removes the opening.
func (b *Book) Delete(ctx context.Context, letters, size int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, bookKey(letters, size))
	return nil
}
