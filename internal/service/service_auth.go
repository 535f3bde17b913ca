// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Semenov

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asemenov/learnhub/internal/config"
	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/internal/store"
	"github.com/asemenov/learnhub/internal/utils"
	"github.com/asemenov/learnhub/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification with bcrypt, and
// the session lifecycle: a login creates a registry entry whose ID travels in
// the JWT's "jti" claim, and a token authenticates only while that entry is
// live.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessions is the in-process registry of live sessions.
	sessions store.SessionStore

	// sessionIDs generates session identifiers for new logins.
	sessionIDs *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a session and its JWT remain valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction except the session registry, which synchronizes internally.
func NewAuthService(userRepository store.UserRepository, sessions store.SessionStore, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		sessions:       sessions,
		sessionIDs:     utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates that name, email and password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks the account up by email and verifies the password against the
// stored bcrypt hash. Both a missing account and a failed verification yield
// ErrInvalidCredentials so that callers cannot probe which emails exist.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("email", req.Email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := utils.CheckPassword(foundUser.PasswordHash, req.Password); err != nil {
		log.Debug().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateSession establishes a session for the given user and issues its JWT.
//
// The session ID becomes the token's "jti" claim; the token is signed with
// the configured sign key, carries the configured issuer, and expires
// together with the session after tokenDuration.
func (a *authService) CreateSession(ctx context.Context, user models.User) (models.Token, error) {
	sessionID := a.sessionIDs.Generate()

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, sessionID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	now := time.Now()
	if err := a.sessions.Create(ctx, models.Session{
		SessionID: sessionID,
		UserID:    user.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.tokenDuration),
	}); err != nil {
		return models.Token{}, fmt.Errorf("session registration failed: %w", err)
	}

	return token, nil
}

// ValidateSession validates a raw JWT string against the session registry.
//
// Validation steps, all of which must pass:
//  1. signature, issuer and expiry of the JWT;
//  2. the "jti" session is still registered (not logged out or expired);
//  3. the "sub" user still exists — a session whose user is gone is
//     destroyed and treated as absent.
//
// Any failure is normalised to ErrSessionInvalid so that callers do not need
// to inspect low-level JWT errors.
func (a *authService) ValidateSession(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, ErrSessionInvalid
	}

	session, err := a.sessions.Get(ctx, token.SessionID)
	if err != nil {
		return models.User{}, ErrSessionInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// session points at a deleted user: treat as absent
			a.sessions.Delete(ctx, session.SessionID)
			return models.User{}, ErrSessionInvalid
		}

		log.Err(err).Int64("id", session.UserID).Msg("session user lookup failed")
		return models.User{}, fmt.Errorf("session user lookup failed: %w", err)
	}

	return user, nil
}

// Logout destroys the session bound to the token. Unparseable tokens and
// unknown sessions are silently ignored, making the operation idempotent.
func (a *authService) Logout(ctx context.Context, tokenString string) error {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return nil
	}

	a.sessions.Delete(ctx, token.SessionID)
	return nil
}
