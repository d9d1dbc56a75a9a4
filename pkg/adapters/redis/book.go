// Package redis provides a Redis-backed opening book, letting multiple
// solver instances share computed first guesses.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/winnow/pkg/domain"
)

// Book implements ports.OpeningBook using Redis.
type Book struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Book)

// WithTTL sets the expiration for cached openings.
func WithTTL(ttl time.Duration) Option {
	return func(b *Book) {
		b.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached openings.
func WithPrefix(prefix string) Option {
	return func(b *Book) {
		b.prefix = prefix
	}
}

// New creates a new Redis opening book with options.
func New(address, password string, db int, opts ...Option) *Book {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis opening book from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Book {
	book := &Book{
		client: client,
		prefix: "winnow:opening:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(book)
	}

	return book
}

func (b *Book) key(letters, size int) string {
	return fmt.Sprintf("%s%d:%d", b.prefix, letters, size)
}

// Best retrieves the cached opening from Redis.
func (b *Book) Best(ctx context.Context, letters, size int) (*domain.Opening, error) {
	val, err := b.client.Get(ctx, b.key(letters, size)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrOpeningNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var opening domain.Opening
	if err := json.Unmarshal([]byte(val), &opening); err != nil {
		return nil, fmt.Errorf("failed to unmarshal opening: %w", err)
	}

	return &opening, nil
}

// Put stores the opening in Redis with the configured TTL.
func (b *Book) Put(ctx context.Context, letters, size int, opening *domain.Opening) error {
	data, err := json.Marshal(opening)
	if err != nil {
		return fmt.Errorf("failed to marshal opening: %w", err)
	}

	if err := b.client.Set(ctx, b.key(letters, size), data, b.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}

	return nil
}

// Delete removes the cached opening.
func (b *Book) Delete(ctx context.Context, letters, size int) error {
	return b.client.Del(ctx, b.key(letters, size)).Err()
}

// Close closes the redis client.
func (b *Book) Close() error {
	return b.client.Close()
}
