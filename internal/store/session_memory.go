// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Semenov

package store

import (
	"context"
	"sync"
	"time"

	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/models"
)

// memorySessionStore is the in-process implementation of [SessionStore].
//
// Sessions are deliberately not persisted: a process restart invalidates all
// of them, which simply forces a re-login. The map is guarded by a RWMutex;
// reads dominate (one lookup per authenticated request).
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session

	logger *logger.Logger
}

// NewMemorySessionStore constructs an empty in-memory [SessionStore].
func NewMemorySessionStore(logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating in-memory session store")
	return &memorySessionStore{
		sessions: make(map[string]models.Session),
		logger:   logger,
	}
}

// Create registers the session under its SessionID.
func (s *memorySessionStore) Create(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.SessionID] = session
	return nil
}

// Get returns the live session with the given ID. Expired sessions are
// reported as missing; they are removed lazily here and eagerly by the
// session janitor.
func (s *memorySessionStore) Get(_ context.Context, sessionID string) (models.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	if session.Expired(time.Now()) {
		s.Delete(context.Background(), sessionID)
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

// Delete removes the session. Absent IDs are a no-op, which makes logout
// idempotent.
func (s *memorySessionStore) Delete(_ context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
}

// DeleteExpired purges every expired session and returns the purge count.
func (s *memorySessionStore) DeleteExpired(_ context.Context) int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
			purged++
		}
	}

	return purged
}
