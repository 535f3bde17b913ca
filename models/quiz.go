package models

// Quiz is a single quiz question belonging to exactly one module.
//
// Options is an ordered list at the domain level; the newline-joined text
// encoding used on disk is a storage detail of the quiz repository and never
// leaks out of it.
type Quiz struct {
	// QuizID is the internal unique identifier of the question, assigned by
	// the persistence layer on creation.
	QuizID int64 `json:"quiz_id"`

	// ModuleID references the module this question belongs to.
	ModuleID int64 `json:"module_id"`

	// Question is the question text presented to the learner.
	Question string `json:"question"`

	// Options is the ordered set of answer options presented to the learner.
	Options []string `json:"options"`

	// Answer is the canonical answer the submission is graded against,
	// compared case-insensitively. Never serialized to clients.
	Answer string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Quiz model.
func (q Quiz) TableName() string {
	return "quizzes"
}
