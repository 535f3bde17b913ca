package models

import "time"

// Session binds an issued token to a user for the lifetime of a login.
//
// Sessions are ephemeral, in-process state: they are created on login or
// registration, destroyed on logout, and expire together with the token they
// back. They are never persisted to the relational store.
type Session struct {
	// SessionID is the unique identifier of the session. It is carried in
	// the "jti" claim of the JWT issued for this session.
	SessionID string

	// UserID is the identifier of the user this session belongs to.
	UserID int64

	// CreatedAt is the time the session was established.
	CreatedAt time.Time

	// ExpiresAt is the time after which the session is no longer valid.
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry time at now.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
