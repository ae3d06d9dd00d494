package dashboard

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Panels whose recomputations are measured.
const (
	panelSmoothed  = "smoothed"
	panelCycle     = "cycle"
	panelTelescope = "telescope"
)

var (
	// RecomputeTotal tracks panel recomputations by panel and status
	RecomputeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sunspots_panel_recompute_total",
			Help: "Total panel recomputations by panel and status",
		},
		[]string{"panel", "status"},
	)

	// RecomputeDuration tracks panel recomputation latency in seconds
	RecomputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sunspots_panel_recompute_duration_seconds",
			Help:    "Panel recomputation duration in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"panel"},
	)
)

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
