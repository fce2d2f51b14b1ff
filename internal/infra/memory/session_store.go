package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

// SessionStore is an in-process implementation of app.SessionRepository.
// The TTL slides: every Save (session start and each answer) renews the
// deadline, matching the redis store's SET-with-TTL behavior. Abandoned
// sessions are pruned lazily once they outlive the TTL.
type SessionStore struct {
	ttl   time.Duration
	clock func() time.Time

	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	session  *domain.PlaySession
	deadline time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		clock:    time.Now,
		sessions: make(map[string]*sessionEntry),
	}
}

func (s *SessionStore) Save(_ context.Context, session *domain.PlaySession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	s.sessions[session.ID] = &sessionEntry{
		session:  session,
		deadline: s.clock().Add(s.ttl),
	}
	return nil
}

func (s *SessionStore) Get(_ context.Context, sessionID string) (*domain.PlaySession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[sessionID]
	if !ok || s.expired(entry) {
		return nil, domain.ErrSessionNotFound
	}
	return entry.session, nil
}

func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *SessionStore) expired(entry *sessionEntry) bool {
	return s.ttl > 0 && s.clock().After(entry.deadline)
}

func (s *SessionStore) pruneLocked() {
	if s.ttl <= 0 {
		return
	}
	for id, entry := range s.sessions {
		if s.expired(entry) {
			delete(s.sessions, id)
		}
	}
}
