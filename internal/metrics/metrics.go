// Package metrics exposes Prometheus instrumentation for the solver.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/winnow/pkg/domain"
)

// Metrics bundles the solver's Prometheus collectors on a private
// registry, so tests and embedders never collide with the global one.
type Metrics struct {
	registry *prometheus.Registry

	Solves    *prometheus.CounterVec
	GuessOps  prometheus.Counter
	Guesses   prometheus.Histogram
	Selection prometheus.Histogram
	Sessions  prometheus.Gauge
}

// New creates and registers the solver collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "winnow_solves_total",
				Help: "Total number of finished games, by outcome",
			},
			[]string{"outcome"},
		),
		GuessOps: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "winnow_guesses_total",
				Help: "Total number of guesses applied across all games",
			},
		),
		Guesses: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "winnow_guesses_per_game",
				Help:    "Guesses used per finished game",
				Buckets: prometheus.LinearBuckets(1, 1, 10),
			},
		),
		Selection: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "winnow_guess_selection_seconds",
				Help:    "Wall time of best-guess selection",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		Sessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "winnow_live_sessions",
				Help: "Number of live dashboard sessions",
			},
		),
	}
	m.registry.MustRegister(m.Solves, m.GuessOps, m.Guesses, m.Selection, m.Sessions)
	return m
}

// Handler serves the registry over HTTP.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveSelection records one best-guess search duration.
func (m *Metrics) ObserveSelection(d time.Duration) {
	m.Selection.Observe(d.Seconds())
}

// Hooks returns lifecycle hooks that record guess and finish events,
// then chain to next.
func (m *Metrics) Hooks(next domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGuess: func(ctx context.Context, e *domain.GuessEvent) {
			m.GuessOps.Inc()
			if next.OnGuess != nil {
				next.OnGuess(ctx, e)
			}
		},
		OnFinish: func(ctx context.Context, e *domain.FinishEvent) {
			m.Solves.WithLabelValues(string(e.Outcome)).Inc()
			m.Guesses.Observe(float64(e.Guesses))
			if next.OnFinish != nil {
				next.OnFinish(ctx, e)
			}
		},
	}
}
