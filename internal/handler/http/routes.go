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

	router.Route("/api/config/{appID}", func(r chi.Router) {
		r.Get("/", h.getAppConfiguration)
		r.Get("/value", h.getConfigurationValue)
		r.Post("/refresh", h.refreshConfiguration)
		r.Delete("/cache", h.invalidateConfiguration)
	})

	return router
}
