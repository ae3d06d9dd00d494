package dashboard

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes registers the page, chart, api and SSE routes.
func SetupRoutes(router chi.Router, h *Handlers) {
	router.Get("/", h.Index)
	router.Get("/healthz", h.Health)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/charts", func(r chi.Router) {
		r.Get("/smoothed.png", h.SmoothedChart)
		r.Get("/cycle.png", h.CycleChart)
	})

	router.Route("/api", func(r chi.Router) {
		r.Get("/smoothed", h.SmoothedJSON)
		r.Get("/cycle", h.CycleJSON)
		r.Get("/telescopes", h.TelescopesJSON)
		r.Get("/controls", h.ControlsJSON)
	})

	router.Route("/sse", func(r chi.Router) {
		r.Get("/telescope", h.TelescopeSSE)
		r.Get("/cycle", h.CycleSSE)
		r.Get("/smoothed", h.SmoothedSSE)
	})
}
