package models

// LandingResponse is the body of the unauthenticated landing route.
type LandingResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// DashboardResponse is the body of GET /api/dashboard: the authenticated user
// together with every available learning module.
type DashboardResponse struct {
	User    User     `json:"user"`
	Modules []Module `json:"modules"`
}

// ModuleQuizzesResponse is the body of the quiz listing and quiz taking
// routes: a module together with its questions. Canonical answers are never
// included (see [Quiz]).
type ModuleQuizzesResponse struct {
	Module    Module `json:"module"`
	Questions []Quiz `json:"questions"`
}

// QuizResultResponse is the body of POST /api/modules/{moduleID}/quiz.
type QuizResultResponse struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// ErrorResponse is the uniform JSON error body returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}
