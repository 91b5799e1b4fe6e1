package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withCORS)
	router.Use(withGZip)

	router.Post("/api/board/encrypt", h.encrypt)
	router.Post("/api/board/decrypt", h.decrypt)
	router.Get("/api/version", h.getServerVersion)

	// Preflight requests terminate in the CORS middleware; the empty
	// handler only registers OPTIONS as an allowed method on the routes.
	router.Options("/api/board/encrypt", func(w http.ResponseWriter, r *http.Request) {})
	router.Options("/api/board/decrypt", func(w http.ResponseWriter, r *http.Request) {})

	router.MethodNotAllowed(methodNotAllowed())

	return router
}
