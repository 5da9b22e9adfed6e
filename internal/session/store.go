// Package session keeps server-side login sessions in memory for the
// process lifetime.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"example.com/fitlife/internal/observability"
)

// Session is a live login session referenced by the cookie token.
type Session struct {
	ID        string
	UserID    int
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store holds sessions behind an RWMutex. Expired entries are rejected on
// read and removed by Prune.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]Session
}

// NewStore constructs a Store with the given session lifetime.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

// Create opens a session for the user.
func (s *Store) Create(userID int) Session {
	now := time.Now().UTC()
	sess := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	observability.SetActiveSessions(len(s.sessions))
	s.mu.Unlock()
	return sess
}

// Get returns the session if it exists and has not expired.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || time.Now().UTC().After(sess.ExpiresAt) {
		return Session{}, false
	}
	return sess, true
}

// Delete removes the session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	observability.SetActiveSessions(len(s.sessions))
	s.mu.Unlock()
}

// Prune drops expired sessions and reports how many were removed.
func (s *Store) Prune() int {
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	observability.SetActiveSessions(len(s.sessions))
	return removed
}

// PruneLoop prunes on the given interval until the context is cancelled.
func (s *Store) PruneLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Prune()
		}
	}
}
