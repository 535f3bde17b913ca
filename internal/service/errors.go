package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are deliberately not
	// distinguishable by the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionInvalid is returned when a presented token cannot be tied to
	// a live session: bad signature, expired, logged out, or the referenced
	// user no longer exists.
	ErrSessionInvalid = errors.New("session is invalid or expired")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
