package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// reads, login and runtime metadata are public
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)

		r.Get("/api/notes/count", h.getCount)
		r.Get("/api/notes/owner/{owner}/count", h.getCountByOwner)
		r.Get("/api/notes/owner/{owner}/ids", h.getIDsByOwner)
		r.Get("/api/notes/{id}/meta", h.getMeta)
		r.Get("/api/notes/{id}/data", h.getData)
		r.Get("/api/notes/{id}/interpretations", h.getInterpretationCount)
		r.Get("/api/events", h.events)

		r.Get("/api/fhe/metadata", h.runtimeMetadata)

		r.Get("/api/version", h.getServerVersion)
		r.Handle("/metrics", promhttp.Handler())
	})

	// writes and relayer calls act on behalf of the token's account
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.withHashing)

		r.Post("/api/notes", h.submit)
		r.Post("/api/notes/{id}/interpretations", h.incrementInterpretationCount)

		r.Post("/api/fhe/input", h.encryptInput)
		r.Post("/api/fhe/decrypt", h.userDecrypt)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
