// Package session keeps one menu/cart store per UI session and serializes
// access to it.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/metrics"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/store"
	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// Session owns the store of one UI session
type Session struct {
	ID string

	mu       sync.Mutex
	store    *store.Store
	lastSeen time.Time
	now      func() time.Time

	done      chan struct{}
	closeOnce sync.Once
}

// Do runs fn with exclusive access to the session's store.
// fn must not retain the store after returning.
func (s *Session) Do(fn func(st *store.Store)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = s.now()
	fn(s.store)
}

// Touch marks the session as active without touching its store. Live
// WebSocket subscribers call it on every pong so a watching UI is not
// swept as idle.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()
}

// Done is closed when the session ends
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Option configures a Registry
type Option func(*Registry)

// WithMetrics records session and store activity on m
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// Registry tracks live sessions by ID
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	catalog []models.MenuItem
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewRegistry creates a registry whose sessions are seeded with catalog
// and evicted after ttl without activity
func NewRegistry(catalog []models.MenuItem, ttl time.Duration, logger *slog.Logger, opts ...Option) *Registry {
	r := &Registry{
		sessions: make(map[string]*Session),
		catalog:  catalog,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create starts a new session with an empty cart and default filters
func (r *Registry) Create() *Session {
	st := store.New(r.catalog)
	st.Subscribe(func(c store.Change) {
		r.metrics.StoreChanged(string(c.Kind), string(c.Action))
	})

	s := &Session{
		ID:       uuid.NewString(),
		store:    st,
		lastSeen: r.now(),
		now:      r.now,
		done:     make(chan struct{}),
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	r.metrics.SessionCreated()
	r.logger.Debug("session created", "session_id", s.ID)

	return s
}

// Get returns the session with the given ID
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete ends a session
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	s.close()
	r.metrics.SessionEnded(false)
	r.logger.Debug("session deleted", "session_id", id)
	return nil
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many
// were removed
func (r *Registry) Sweep() int {
	r.mu.RLock()
	candidates := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		candidates = append(candidates, s)
	}
	r.mu.RUnlock()

	cutoff := r.now().Add(-r.ttl)
	expired := make([]*Session, 0)
	for _, s := range candidates {
		if s.idleSince().Before(cutoff) {
			expired = append(expired, s)
		}
	}
	if len(expired) == 0 {
		return 0
	}

	removed := 0
	r.mu.Lock()
	for _, s := range expired {
		// the session may have been deleted concurrently
		if current, ok := r.sessions[s.ID]; ok && current == s {
			delete(r.sessions, s.ID)
			removed++
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.close()
	}
	for i := 0; i < removed; i++ {
		r.metrics.SessionEnded(true)
	}

	r.logger.Info("expired idle sessions", "count", removed, "remaining", r.Len())
	return removed
}

// Run sweeps expired sessions every interval until ctx is cancelled
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
