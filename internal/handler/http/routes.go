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
	router.Use(h.withCORS)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Route("/api/health-records", func(r chi.Router) {
			r.Get("/sources/available", h.availableSources)
			r.Get("/types/available", h.availableTypes)
			r.Get("/specialties/available", h.availableSpecialties)

			r.Get("/preferences/{userId}", h.getPreferences)
			r.Put("/preferences/{userId}", h.updatePreferences)

			r.Post("/", h.addRecord)
			r.Get("/record/{recordId}", h.getRecord)
			r.Put("/record/{recordId}", h.updateRecord)
			r.Get("/{userId}", h.getRecords)
		})

		r.Route("/api/share", func(r chi.Router) {
			r.Get("/shared-with-me", h.sharedWithMe)
			r.Put("/{recordId}/share", h.shareRecord)
			r.Delete("/{recordId}/share/{recipientId}", h.revokeShare)
		})
	})

	// audit data requires a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/access-logs/", h.getAllAccessLogs)
		r.Get("/api/access-logs/record/{recordId}", h.getRecordAccessLogs)
	})

	return router
}
