package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/models"
)

func newTestSessionStore() SessionStore {
	return NewMemorySessionStore(logger.Nop())
}

func liveSession(id string, userID int64) models.Session {
	now := time.Now()
	return models.Session{
		SessionID: id,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func expiredSession(id string, userID int64) models.Session {
	now := time.Now()
	return models.Session{
		SessionID: id,
		UserID:    userID,
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}
}

func TestSessionStore_CreateAndGet(t *testing.T) {
	s := newTestSessionStore()
	ctx := context.Background()

	session := liveSession("session-1", 1)
	if err := s.Create(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Get(ctx, "session-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", got.UserID)
	}
}

func TestSessionStore_GetMissing(t *testing.T) {
	s := newTestSessionStore()
	ctx := context.Background()

	_, err := s.Get(ctx, "no-such-session")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_GetExpired(t *testing.T) {
	s := newTestSessionStore()
	ctx := context.Background()

	if err := s.Create(ctx, expiredSession("session-old", 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := s.Get(ctx, "session-old")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for expired session, got %v", err)
	}

	// the expired session is removed lazily on access
	if purged := s.DeleteExpired(ctx); purged != 0 {
		t.Errorf("expected 0 sessions left to purge, got %d", purged)
	}
}

func TestSessionStore_DeleteIsIdempotent(t *testing.T) {
	s := newTestSessionStore()
	ctx := context.Background()

	if err := s.Create(ctx, liveSession("session-1", 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Delete(ctx, "session-1")
	s.Delete(ctx, "session-1") // second delete is a no-op

	_, err := s.Get(ctx, "session-1")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestSessionStore_DeleteExpired(t *testing.T) {
	s := newTestSessionStore()
	ctx := context.Background()

	if err := s.Create(ctx, liveSession("live-1", 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Create(ctx, expiredSession("old-1", 2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Create(ctx, expiredSession("old-2", 3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if purged := s.DeleteExpired(ctx); purged != 2 {
		t.Fatalf("expected 2 purged sessions, got %d", purged)
	}

	if _, err := s.Get(ctx, "live-1"); err != nil {
		t.Errorf("live session should survive the purge: %v", err)
	}
}
