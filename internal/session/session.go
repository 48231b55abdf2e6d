// Package session owns the per-client state between a search and its wizard
// flow: the merged search results and the wizard state evolving over them.
// Sessions live in memory, keyed by generated id, and expire after a period
// of inactivity.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SmokedKoala/TravelHelper/internal/domain"
	"github.com/SmokedKoala/TravelHelper/internal/infrastructure/logger"
	"github.com/SmokedKoala/TravelHelper/internal/infrastructure/timeutil"
	"github.com/SmokedKoala/TravelHelper/internal/wizard"
)

// Session layer errors.
var (
	// ErrSessionNotFound is returned when the session id is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrStaleSearch is returned when a search result older than the one the
	// session already holds is committed. Only the most recently started
	// search may update a session.
	ErrStaleSearch = errors.New("stale search result")

	// ErrNotReviewStep is returned when combinations are requested before the
	// wizard has reached the review step.
	ErrNotReviewStep = errors.New("wizard is not at the review step")
)

// Snapshot is an immutable view of one session, safe to hand to transport
// code without holding the manager's lock.
type Snapshot struct {
	ID        string            `json:"id"`
	State     wizard.State      `json:"state"`
	Aggregate *domain.Aggregate `json:"aggregate"`
}

type session struct {
	id         string
	aggregate  *domain.Aggregate
	state      wizard.State
	lastAccess time.Time
}

// Manager stores sessions in memory and expires them after the configured
// idle TTL. Close stops the background sweep.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
	done     chan struct{}
	clock    timeutil.Clock
	log      *logger.Logger
}

// DefaultTTL is the idle lifetime of a session when none is configured.
const DefaultTTL = 30 * time.Minute

// NewManager creates a session manager and starts its expiry sweep.
func NewManager(ttl time.Duration, log *logger.Logger) *Manager {
	return NewManagerWithClock(ttl, log, timeutil.NewRealClock())
}

// NewManagerWithClock creates a session manager over a custom clock.
// Tests use this with a mock clock to drive expiry deterministically.
func NewManagerWithClock(ttl time.Duration, log *logger.Logger, clock timeutil.Clock) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Manager{
		sessions: make(map[string]*session),
		ttl:      ttl,
		done:     make(chan struct{}),
		clock:    clock,
		log:      log,
	}
	go m.cleanup()
	return m
}

// Close stops the background expiry sweep.
func (m *Manager) Close() {
	close(m.done)
}

// Create opens a new session over the given search results. The wizard
// starts at the first step with nothing selected.
func (m *Manager) Create(agg *domain.Aggregate) Snapshot {
	s := &session{
		id:         uuid.NewString(),
		aggregate:  agg,
		state:      wizard.New(),
		lastAccess: m.clock.Now(),
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	m.log.WithSession(s.id).Info().
		Uint64("generation", agg.Generation).
		Int("flights", len(agg.Flights)).
		Int("hotels", len(agg.Hotels)).
		Msg("session created")

	return snapshotOf(s)
}

// Get returns a snapshot of the session and refreshes its idle timer.
func (m *Manager) Get(id string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	s.lastAccess = m.clock.Now()
	return snapshotOf(s), nil
}

// Apply runs one wizard event against the session and returns the resulting
// snapshot. Events that the wizard rejects leave the state unchanged; that
// is not an error.
func (m *Manager) Apply(id string, e wizard.Event) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	s.state = wizard.Apply(s.aggregate, s.state, e)
	s.lastAccess = m.clock.Now()
	return snapshotOf(s), nil
}

// Replace commits a fresh search result to the session and resets the wizard
// to its first step. Results from a search started before the one the
// session already holds are refused: when searches race, the last one
// started wins, regardless of completion order.
func (m *Manager) Replace(id string, agg *domain.Aggregate) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	if agg.Generation <= s.aggregate.Generation {
		m.log.WithSession(id).Warn().
			Uint64("held", s.aggregate.Generation).
			Uint64("offered", agg.Generation).
			Msg("stale search result dropped")
		return Snapshot{}, ErrStaleSearch
	}

	s.aggregate = agg
	s.state = wizard.New()
	s.lastAccess = m.clock.Now()
	return snapshotOf(s), nil
}

// Combinations enumerates the session's priced combinations. The wizard must
// have reached the review step; before that the selection is still open and
// the enumeration would be misleading.
func (m *Manager) Combinations(id string) ([]wizard.Combination, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.state.Step != wizard.StepReview {
		return nil, ErrNotReviewStep
	}
	return wizard.Generate(s.aggregate, s.state), nil
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func snapshotOf(s *session) Snapshot {
	return Snapshot{
		ID:        s.id,
		State:     s.state,
		Aggregate: s.aggregate,
	}
}

// cleanup periodically drops sessions idle past the TTL.
func (m *Manager) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.expire(m.clock.Now())
		case <-m.done:
			return
		}
	}
}

func (m *Manager) expire(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		if now.Sub(s.lastAccess) > m.ttl {
			delete(m.sessions, id)
			m.log.WithSession(id).Debug().Msg("session expired")
		}
	}
}
