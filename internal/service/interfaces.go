package service

import (
	"context"

	"github.com/asemenov/learnhub/models"
)

// AuthService handles account registration, credential verification, and the
// session lifecycle.
type AuthService interface {
	// Register creates a new account from the request, hashing the password
	// before persistence. A taken email yields store.ErrEmailAlreadyExists.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the credentials and returns the matching user.
	// Unknown emails and wrong passwords are indistinguishable: both yield
	// [ErrInvalidCredentials].
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateSession establishes a session for the user and returns the
	// signed token bound to it.
	CreateSession(ctx context.Context, user models.User) (models.Token, error)

	// ValidateSession checks the token signature and claims, requires the
	// backing session to be live, and returns the referenced user. A session
	// whose user no longer exists is treated as absent. Any failure yields
	// [ErrSessionInvalid].
	ValidateSession(ctx context.Context, tokenString string) (models.User, error)

	// Logout destroys the session bound to the token. It is idempotent:
	// malformed tokens and already-destroyed sessions are a no-op success.
	Logout(ctx context.Context, tokenString string) error
}

// ContentService exposes read access to learning modules.
type ContentService interface {
	// AllModules returns every learning module.
	AllModules(ctx context.Context) ([]models.Module, error)

	// ModuleByID returns one module; missing IDs yield
	// store.ErrModuleNotFound.
	ModuleByID(ctx context.Context, moduleID int64) (models.Module, error)
}

// QuizService exposes quiz questions and the grading engine.
type QuizService interface {
	// QuestionsByModule returns the module together with its questions,
	// ordered by question ID. A missing module yields
	// store.ErrModuleNotFound; a module without questions yields an empty
	// slice.
	QuestionsByModule(ctx context.Context, moduleID int64) (models.Module, []models.Quiz, error)

	// Grade scores a submitted answer set against the questions.
	// total is the question count; score counts questions whose submitted
	// answer equals the canonical answer case-insensitively. A missing
	// submission counts as incorrect, never as an error.
	Grade(questions []models.Quiz, answers map[int64]string) (score, total int)
}

// AppInfoService exposes application metadata for the landing route.
type AppInfoService interface {
	// Version returns the running application version string.
	Version(ctx context.Context) string
}
