package models

// RegisterRequest is the payload of POST /api/user/register.
type RegisterRequest struct {
	// Name is the display name for the new account.
	Name string `json:"name" validate:"required"`

	// Email is the unique login identifier for the new account.
	Email string `json:"email" validate:"required,email"`

	// Password is the plaintext password; it is hashed before storage and
	// never persisted or logged as-is.
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the payload of POST /api/user/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SubmitQuizRequest is the payload of POST /api/modules/{moduleID}/quiz.
//
// Answers maps a question ID to the submitted answer string. Questions absent
// from the map are graded as incorrect; IDs that match no question are
// ignored. Submitted values are NOT validated against the question's option
// set before grading.
type SubmitQuizRequest struct {
	Answers map[int64]string `json:"answers"`
}
