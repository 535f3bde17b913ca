package store

import (
	"context"

	"github.com/asemenov/learnhub/models"
)

// UserRepository persists and retrieves learner accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with the server-assigned
	// UserID and CreatedAt populated. A duplicate email yields
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by the unique email login key.
	// Missing users yield [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks a user up by primary key.
	// Missing users yield [ErrUserNotFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ModuleRepository persists and retrieves learning modules.
type ModuleRepository interface {
	// CreateModule inserts a new module and returns it with the
	// server-assigned ModuleID populated.
	CreateModule(ctx context.Context, module models.Module) (models.Module, error)

	// FindAllModules returns every module ordered by ID. The slice is empty
	// (never nil error) when no modules exist.
	FindAllModules(ctx context.Context) ([]models.Module, error)

	// FindModuleByID looks a module up by primary key.
	// Missing modules yield [ErrModuleNotFound].
	FindModuleByID(ctx context.Context, moduleID int64) (models.Module, error)
}

// QuizRepository persists and retrieves quiz questions.
type QuizRepository interface {
	// CreateQuiz inserts a new question and returns it with the
	// server-assigned QuizID populated.
	CreateQuiz(ctx context.Context, quiz models.Quiz) (models.Quiz, error)

	// FindQuizzesByModule returns the module's questions ordered by ID.
	// The slice is empty when the module has no questions.
	FindQuizzesByModule(ctx context.Context, moduleID int64) ([]models.Quiz, error)
}

// SessionStore keeps the in-process registry of live sessions. Sessions are
// ephemeral by design and never touch the relational store.
type SessionStore interface {
	// Create registers a session. Re-creating an existing session ID
	// overwrites it.
	Create(ctx context.Context, session models.Session) error

	// Get returns the session with the given ID, or [ErrSessionNotFound] if
	// it does not exist or has expired.
	Get(ctx context.Context, sessionID string) (models.Session, error)

	// Delete removes the session with the given ID. Deleting an absent
	// session is a no-op.
	Delete(ctx context.Context, sessionID string)

	// DeleteExpired removes every expired session and returns how many were
	// purged.
	DeleteExpired(ctx context.Context) int
}
