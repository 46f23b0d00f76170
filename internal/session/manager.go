package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type managedSession struct {
	ctrl     *Controller
	lastUsed time.Time
}

// Manager tracks live practice sessions for the HTTP layer. Sessions the
// client never deletes are reclaimed by PruneIdle, which the server runs
// on a timer.
type Manager struct {
	store    Store
	mu       sync.Mutex
	sessions map[string]*managedSession
}

func NewManager(st Store) *Manager {
	return &Manager{
		store:    st,
		sessions: make(map[string]*managedSession),
	}
}

// Create starts a new session and returns its ID.
func (m *Manager) Create() string {
	id := uuid.NewString()
	ctrl := NewController(m.store, nil)

	m.mu.Lock()
	m.sessions[id] = &managedSession{ctrl: ctrl, lastUsed: time.Now()}
	m.mu.Unlock()

	return id
}

// Get returns the session's controller and marks the session as in use.
func (m *Manager) Get(id string) (*Controller, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ms, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	ms.lastUsed = time.Now()
	return ms.ctrl, true
}

// Delete drops a session. Abandoning a drawn-but-unjudged question has no
// stats side effect.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// PruneIdle drops every session untouched for longer than maxIdle and
// returns how many were removed.
func (m *Manager) PruneIdle(maxIdle time.Duration) int {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	pruned := 0
	for id, ms := range m.sessions {
		if now.Sub(ms.lastUsed) > maxIdle {
			delete(m.sessions, id)
			pruned++
		}
	}
	return pruned
}
