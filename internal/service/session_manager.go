package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type managedSession struct {
	session  *Session
	lastSeen time.Time
}

// SessionManager maps opaque session IDs to client sessions and expires
// sessions that have been idle longer than the configured duration
type SessionManager struct {
	deps        SessionDeps
	idleTimeout time.Duration

	mu       sync.Mutex
	sessions map[string]*managedSession
}

// NewSessionManager creates a session manager
func NewSessionManager(deps SessionDeps, idleTimeout time.Duration) *SessionManager {
	return &SessionManager{
		deps:        deps.withDefaults(),
		idleTimeout: idleTimeout,
		sessions:    make(map[string]*managedSession),
	}
}

// Get returns the live session for id and marks it as used
func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	now := m.deps.Now()
	if m.expired(entry, now) {
		delete(m.sessions, id)
		m.reportCount()
		return nil, false
	}
	entry.lastSeen = now
	return entry.session, true
}

// Create starts a new logged-out session and returns its ID
func (m *SessionManager) Create() (string, *Session) {
	id := m.deps.NewID()
	session := NewSession(m.deps)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[id] = &managedSession{session: session, lastSeen: m.deps.Now()}
	m.reportCount()
	return id, session
}

// Resolve returns the session for id, creating a fresh one when id is empty,
// unknown or expired. created reports whether a new ID was issued.
func (m *SessionManager) Resolve(id string) (string, *Session, bool) {
	if id != "" {
		if session, ok := m.Get(id); ok {
			return id, session, false
		}
	}
	newID, session := m.Create()
	return newID, session, true
}

// Remove drops a session
func (m *SessionManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	m.reportCount()
}

// Count returns the number of sessions held
func (m *SessionManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// CleanupExpired removes idle sessions and returns how many were removed
func (m *SessionManager) CleanupExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.deps.Now()
	removed := 0
	for id, entry := range m.sessions {
		if m.expired(entry, now) {
			delete(m.sessions, id)
			removed++
		}
	}
	m.reportCount()
	return removed
}

// RunCleanup removes expired sessions every interval until ctx is done
func (m *SessionManager) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := m.CleanupExpired(); removed > 0 {
				m.deps.Logger.Info("expired sessions cleaned up", zap.Int("removed", removed))
			}
		}
	}
}

func (m *SessionManager) expired(entry *managedSession, now time.Time) bool {
	return m.idleTimeout > 0 && now.Sub(entry.lastSeen) > m.idleTimeout
}

func (m *SessionManager) reportCount() {
	if m.deps.Metrics != nil {
		m.deps.Metrics.ActiveSessions.Set(float64(len(m.sessions)))
	}
}
