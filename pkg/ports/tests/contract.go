package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/winnow/pkg/domain"
	"github.com/aretw0/winnow/pkg/ports"
)

// RunOpeningBookContract is a reusable test suite that verifies if an adapter
// complies with ports.OpeningBook.
func RunOpeningBookContract(t *testing.T, book ports.OpeningBook) {
	t.Helper()
	ctx := context.Background()

	t.Run("Put and Best", func(t *testing.T) {
		opening := &domain.Opening{Guess: "raise", Gain: 5.878}

		err := book.Put(ctx, 5, 2315, opening)
		require.NoError(t, err, "Put should not return error")

		got, err := book.Best(ctx, 5, 2315)
		require.NoError(t, err, "Best should not return error")
		assert.Equal(t, domain.Word("raise"), got.Guess)
		assert.InDelta(t, 5.878, got.Gain, 1e-9)
	})

	t.Run("Best Non-Existent", func(t *testing.T) {
		_, err := book.Best(ctx, 7, 99999)
		assert.ErrorIs(t, err, domain.ErrOpeningNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, book.Put(ctx, 5, 100, &domain.Opening{Guess: "crane", Gain: 4.0}))
		require.NoError(t, book.Put(ctx, 5, 100, &domain.Opening{Guess: "slate", Gain: 4.5}))

		got, err := book.Best(ctx, 5, 100)
		require.NoError(t, err)
		assert.Equal(t, domain.Word("slate"), got.Guess, "later Put should replace the entry")
	})

	t.Run("Distinct Keys", func(t *testing.T) {
		require.NoError(t, book.Put(ctx, 5, 10, &domain.Opening{Guess: "aback", Gain: 1.0}))
		require.NoError(t, book.Put(ctx, 6, 10, &domain.Opening{Guess: "abacus", Gain: 2.0}))
		require.NoError(t, book.Put(ctx, 5, 20, &domain.Opening{Guess: "abbey", Gain: 3.0}))

		got, err := book.Best(ctx, 5, 10)
		require.NoError(t, err)
		assert.Equal(t, domain.Word("aback"), got.Guess, "length and size must both key the entry")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, book.Put(ctx, 5, 55, &domain.Opening{Guess: "adieu", Gain: 4.2}))

		err := book.Delete(ctx, 5, 55)
		require.NoError(t, err, "Delete should not return error")

		_, err = book.Best(ctx, 5, 55)
		assert.ErrorIs(t, err, domain.ErrOpeningNotFound, "Best after Delete should return ErrOpeningNotFound")

		assert.NoError(t, book.Delete(ctx, 5, 55), "Delete should be idempotent")
	})
}
