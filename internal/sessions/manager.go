package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/salon-scheduler/internal/domain/booking"
	"github.com/glowdesk/salon-scheduler/internal/refdata"
	"github.com/glowdesk/salon-scheduler/internal/store"
)

// Manager owns the in-progress booking sessions. Each session belongs to
// one user interaction; abandoning one discards its draft with no
// externally visible effect.
type Manager struct {
	catalog refdata.Source
	repo    store.Repository
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*booking.Session
}

func NewManager(catalog refdata.Source, repo store.Repository, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{
		catalog:  catalog,
		repo:     repo,
		now:      now,
		sessions: make(map[string]*booking.Session),
	}
}

// Start creates a fresh session and returns its id.
func (m *Manager) Start() (string, *booking.Session) {
	id := uuid.NewString()
	sess := booking.NewSession(m.catalog, m.repo, m.now)

	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()

	return id, sess
}

func (m *Manager) Get(id string) (*booking.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	return sess, ok
}

// Abandon drops the session. Reports whether it existed.
func (m *Manager) Abandon(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}
