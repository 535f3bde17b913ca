// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Semenov

package models

import "time"

// User represents a learner account used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user, assigned by the
	// persistence layer on creation.
	UserID int64 `json:"user_id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the globally unique login identifier.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a one-way hash, never plaintext, and is never
	// serialized to clients.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
