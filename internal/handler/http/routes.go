package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip, h.withIntegrityCheck)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/status", h.status)
		r.Post("/api/session", h.openSession)

		r.With(h.throttlePinAttempts).Post("/api/setup", h.setup)
		r.With(h.throttlePinAttempts).Post("/api/unlock", h.unlock)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/lock", h.lock)
		r.Post("/api/lock/enable", h.enableLock)
		r.Post("/api/lock/disable", h.disableLock)
		r.Post("/api/pin", h.setPin)
		r.With(h.throttlePinAttempts).Put("/api/pin", h.changePin)
		r.Post("/api/reset", h.reset)

		r.Get("/api/state", h.getState)
		r.Post("/api/moods", h.recordMood)
		r.Get("/api/moods", h.listMoods)
		r.Get("/api/moods/today", h.todayMood)
		r.Get("/api/stats", h.stats)
		r.Post("/api/journal", h.addJournal)
		r.Get("/api/journal", h.listJournal)
		r.Get("/api/journal/export", h.exportJournalText)
		r.Patch("/api/preferences", h.updatePreferences)
		r.Get("/api/export", h.export)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
