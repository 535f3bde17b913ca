package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)

		// logout destroys the session if one exists and is a no-op
		// otherwise, so it deliberately sits outside the session gate
		r.Post("/api/user/logout", h.logout)
	})

	// session-gated routes: the gate rejects the request before the handler
	// body runs
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/dashboard", h.dashboard)
		r.Get("/api/modules", h.modulesList)
		r.Get("/api/modules/{moduleID}", h.moduleDetail)
		r.Get("/api/modules/{moduleID}/quizzes", h.quizList)
		r.Get("/api/modules/{moduleID}/quiz", h.quizTake)
		r.Post("/api/modules/{moduleID}/quiz", h.quizSubmit)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
