package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const requestTimeout = 10 * time.Second

func SetupRoutes(handler *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Setup middleware
	for _, mw := range SetupMiddleware() {
		r.Use(mw)
	}

	// JSON content type
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.With(middleware.Timeout(requestTimeout)).Get("/health", handler.HealthCheck)

	// Read-only streaming state
	r.Route("/api/v1/streaming", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(requestTimeout))
			r.Get("/snapshot", handler.GetSnapshot)
			r.Get("/stats", handler.GetStats)
			r.Get("/loaded", handler.IsPositionLoaded)
			r.Get("/chunks/{x}/{y}", handler.GetChunk)
		})

		// Long-lived, so it stays outside the request timeout
		r.Get("/watch", handler.WatchSnapshots)
	})

	return r
}
