package session

import (
	"sync"

	"log/slog"

	"github.com/google/uuid"

	"github.com/aretw0/winnow/internal/logging"
	"github.com/aretw0/winnow/pkg/domain"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager keeps live sessions of type T keyed by generated identifiers.
// It uses reference counting to garbage collect unused per-session locks.
type Manager[T any] struct {
	mu       sync.Mutex // Global lock for both maps
	sessions map[string]T
	locks    map[string]*lockEntry

	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewManager creates an empty session Manager.
func NewManager[T any](opts ...Option) *Manager[T] {
	o := options{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager[T]{
		sessions: make(map[string]T),
		locks:    make(map[string]*lockEntry),
		logger:   o.logger,
	}
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(id) after unlocking.
func (m *Manager[T]) acquire(id string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		entry = &lockEntry{}
		m.locks[id] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager[T]) release(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		return // Should not happen if paired correctly
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, id)
	}
}

// Create stores value under a fresh identifier and returns it.
func (m *Manager[T]) Create(value T) string {
	id := uuid.NewString()

	m.mu.Lock()
	m.sessions[id] = value
	m.mu.Unlock()

	m.logger.Debug("session created", "session_id", id)
	return id
}

// Get returns the session stored under id.
func (m *Manager[T]) Get(id string) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, exists := m.sessions[id]
	if !exists {
		var zero T
		return zero, domain.ErrSessionNotFound
	}
	return value, nil
}

// Delete removes the session stored under id.
func (m *Manager[T]) Delete(id string) error {
	entry := m.acquire(id)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(id)
	}()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[id]; !exists {
		return domain.ErrSessionNotFound
	}
	delete(m.sessions, id)

	m.logger.Debug("session deleted", "session_id", id)
	return nil
}

// List returns the identifiers of all live sessions, in no particular order.
func (m *Manager[T]) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of live sessions.
func (m *Manager[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// WithLock looks up the session under id and executes fn while holding its
// lock. Mutating operations on a session must go through here.
func (m *Manager[T]) WithLock(id string, fn func(value T) error) error {
	entry := m.acquire(id)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(id)
	}()

	value, err := m.Get(id)
	if err != nil {
		return err
	}
	return fn(value)
}
