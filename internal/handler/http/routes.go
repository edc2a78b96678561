package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/token/signup", h.signUp)
		r.Get("/api/token/login", h.login)
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/medication/register", h.registerMedication)
		r.Get("/api/medication/get", h.getMedications)
		r.Put("/api/medication/update/{id}", h.updateMedication)
		r.Delete("/api/medication/delete/{id}", h.deleteMedication)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
