package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vogiaan1904/barberqueue/internal/monitoring"
	"github.com/vogiaan1904/barberqueue/pkg/logger"
)

// Routes builds the router serving the queue API, health and metrics.
func (h *HTTPHandler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(logger.HTTPLogger(h.l))

	r.Get("/healthz", h.HealthCheck)
	r.Handle("/metrics", monitoring.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/barbershops/{shopId}", func(r chi.Router) {
			r.Post("/queue", h.EnterQueue)
			r.Get("/queue", h.ListActiveQueue)
			r.Get("/stats", h.GetStats)

			r.Route("/barbers/{barberId}", func(r chi.Router) {
				r.Post("/call-next", h.CallNext)
				r.Get("/current", h.GetBarberCurrent)
				r.Put("/active", h.SetBarberActive)
			})
		})

		r.Route("/entries/{entryId}", func(r chi.Router) {
			r.Post("/start", h.StartService)
			r.Post("/finish", h.FinishService)
			r.Post("/no-show", h.NoShow)
			r.Delete("/", h.RemoveEntry)
		})

		r.Get("/status", h.GetStatus)
		r.Delete("/status", h.LeaveQueue)
	})

	return r
}
