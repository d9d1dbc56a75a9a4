package metrics_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/winnow/internal/metrics"
	"github.com/aretw0/winnow/pkg/domain"
)

func TestHooks_RecordOutcomes(t *testing.T) {
	m := metrics.New()
	hooks := m.Hooks(domain.LifecycleHooks{})
	ctx := context.Background()

	hooks.OnGuess(ctx, &domain.GuessEvent{Guess: "crane"})
	hooks.OnGuess(ctx, &domain.GuessEvent{Guess: "slate"})
	hooks.OnFinish(ctx, &domain.FinishEvent{Outcome: domain.StatusWon, Guesses: 2})
	hooks.OnFinish(ctx, &domain.FinishEvent{Outcome: domain.StatusLost, Guesses: 6})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.GuessOps))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Solves.WithLabelValues("won")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Solves.WithLabelValues("lost")))
}

func TestHooks_ChainToNext(t *testing.T) {
	m := metrics.New()

	var sawGuess, sawFinish bool
	hooks := m.Hooks(domain.LifecycleHooks{
		OnGuess:  func(context.Context, *domain.GuessEvent) { sawGuess = true },
		OnFinish: func(context.Context, *domain.FinishEvent) { sawFinish = true },
	})

	ctx := context.Background()
	hooks.OnGuess(ctx, &domain.GuessEvent{})
	hooks.OnFinish(ctx, &domain.FinishEvent{Outcome: domain.StatusWon})

	assert.True(t, sawGuess)
	assert.True(t, sawFinish)
}

func TestHandler_ServesRegistry(t *testing.T) {
	m := metrics.New()
	m.Sessions.Set(3)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	body := make([]byte, 64*1024)
	n, _ := resp.Body.Read(body)
	assert.Contains(t, string(body[:n]), "winnow_live_sessions 3")
}
