package runtime

import (
	"context"

	"github.com/aretw0/winnow/pkg/domain"
)

// emitGuess notifies the guess hook, if one is registered.
func (e *Engine) emitGuess(ctx context.Context, g *Game, rec domain.Record) {
	if e.hooks.OnGuess == nil {
		return
	}
	e.hooks.OnGuess(ctx, &domain.GuessEvent{
		EventBase: domain.NewEventBase(domain.EventGuess, g.ID),
		Guess:     rec.Guess,
		Feedback:  rec.Feedback.Letters(),
		Remaining: rec.Remaining,
		Gain:      rec.Gain,
	})
}

// emitFinish notifies the finish hook on a terminal transition.
func (e *Engine) emitFinish(ctx context.Context, g *Game) {
	if e.hooks.OnFinish == nil {
		return
	}
	t := domain.EventLost
	if g.status == domain.StatusWon {
		t = domain.EventWon
	}
	ev := &domain.FinishEvent{
		EventBase: domain.NewEventBase(t, g.ID),
		Outcome:   g.status,
		Guesses:   len(g.history),
	}
	if g.reason != nil {
		ev.Reason = g.reason.Error()
	}
	e.hooks.OnFinish(ctx, ev)
}
