// Package file provides a filesystem-backed opening book, so repeated
// runs of the CLI skip the expensive first-guess search.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/winnow/pkg/domain"
)

// Book implements ports.OpeningBook on the local filesystem. Each
// dictionary key is stored as one JSON file under BasePath.
// Safe for concurrent use within a single process.
type Book struct {
	BasePath string
	mu       sync.Mutex
}

// New creates a Book rooted at basePath.
// If basePath is empty, it defaults to ".winnow/book".
func New(basePath string) *Book {
	if basePath == "" {
		basePath = filepath.Join(".winnow", "book")
	}
	return &Book{BasePath: basePath}
}

func (b *Book) path(letters, size int) string {
	return filepath.Join(b.BasePath, fmt.Sprintf("%d-%d.json", letters, size))
}

// Best retrieves the cached opening for a dictionary.
func (b *Book) Best(ctx context.Context, letters, size int) (*domain.Opening, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := os.ReadFile(b.path(letters, size))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrOpeningNotFound
		}
		return nil, fmt.Errorf("failed to read opening file: %w", err)
	}

	var opening domain.Opening
	if err := json.Unmarshal(data, &opening); err != nil {
		return nil, fmt.Errorf("failed to unmarshal opening: %w", err)
	}

	return &opening, nil
}

// Put stores the opening atomically. It writes to a temporary file, syncs
// via fsync, and then renames it to the destination, so a crash never
// leaves a partial entry behind.
func (b *Book) Put(ctx context.Context, letters, size int, opening *domain.Opening) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Ensure directory exists
	if err := os.MkdirAll(b.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure book directory: %w", err)
	}

	data, err := json.MarshalIndent(opening, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal opening: %w", err)
	}

	// Same directory as the destination to keep the rename on one filesystem
	tmpFile, err := os.CreateTemp(b.BasePath, "tmp-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}

	// Close before renaming; Windows cannot rename an open file
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	destPath := b.path(letters, size)
	if _, err := os.Stat(destPath); err == nil {
		// os.Rename onto an existing file fails on Windows
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing opening for overwrite: %w", err)
		}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file to opening entry: %w", err)
	}

	return nil
}

// Delete removes the opening for a dictionary.
func (b *Book) Delete(ctx context.Context, letters, size int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := os.Remove(b.path(letters, size))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete opening file: %w", err)
	}

	return nil
}

// Clear removes every stored opening.
func (b *Book) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries, err := os.ReadDir(b.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to list book directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(b.BasePath, entry.Name())); err != nil {
			return fmt.Errorf("failed to delete opening file: %w", err)
		}
	}

	return nil
}
