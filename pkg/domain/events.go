package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventGuess EventType = "guess"
	EventWon   EventType = "won"
	EventLost  EventType = "lost"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
}

// NewEventBase stamps a base for the given event type.
func NewEventBase(t EventType, sessionID string) EventBase {
	return EventBase{Timestamp: time.Now(), Type: t, SessionID: sessionID}
}

// GuessEvent fires after every recorded guess.
type GuessEvent struct {
	EventBase
	Guess     Word    `json:"guess"`
	Feedback  string  `json:"feedback"`
	Remaining int     `json:"remaining"`
	Gain      float64 `json:"gain"`
}

// FinishEvent fires once per game, on the terminal transition.
type FinishEvent struct {
	EventBase
	Outcome Status `json:"outcome"`
	Guesses int    `json:"guesses"`
	Reason  string `json:"reason,omitempty"`
}

// LifecycleHooks defines callbacks for solver observability.
type LifecycleHooks struct {
	OnGuess  func(context.Context, *GuessEvent)
	OnFinish func(context.Context, *FinishEvent)
}
