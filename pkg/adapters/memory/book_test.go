package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/winnow/pkg/adapters/memory"
	"github.com/aretw0/winnow/pkg/domain"
	contract "github.com/aretw0/winnow/pkg/ports/tests"
)

func TestMemoryBook_Contract(t *testing.T) {
	book := memory.NewBook()
	contract.RunOpeningBookContract(t, book)
}

func TestMemoryBook_CopyOnRead(t *testing.T) {
	book := memory.NewBook()
	ctx := context.Background()

	if err := book.Put(ctx, 5, 10, &domain.Opening{Guess: "crane", Gain: 2.0}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := book.Best(ctx, 5, 10)
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	got.Guess = "mutated"

	again, err := book.Best(ctx, 5, 10)
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if again.Guess != "crane" {
		t.Errorf("stored entry was mutated through the returned pointer: %q", again.Guess)
	}
}

func TestMemoryBook_ConcurrentAccess(t *testing.T) {
	book := memory.NewBook()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = book.Put(ctx, 5, n, &domain.Opening{Guess: "slate", Gain: float64(n)})
			_, _ = book.Best(ctx, 5, n)
		}(i)
	}
	wg.Wait()
}
