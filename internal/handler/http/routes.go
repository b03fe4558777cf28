package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	// field devices
	router.Group(func(r chi.Router) {
		r.Post("/auth", h.authenticate)
		r.Post("/auth.php", h.authenticate)
	})

	// enrollment
	router.Group(func(r chi.Router) {
		r.Get("/qr", h.newSecret)
		r.Get("/qr.png", h.qrCode)
	})

	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
