package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the catalog server's Prometheus metrics.
type Metrics struct {
	RendersTotal          *prometheus.CounterVec
	RenderDurationSeconds *prometheus.HistogramVec
	TapsTotal             *prometheus.CounterVec
	ActiveSessions        prometheus.Gauge
	SessionsEvictedTotal  prometheus.Counter
}

// NewMetrics registers every metric on registry.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		RendersTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "a11ycatalog_renders_total",
				Help: "Total number of screen renders by screen, renderer and status",
			},
			[]string{"screen", "renderer", "status"}, // status: success, error
		),
		RenderDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "a11ycatalog_render_duration_seconds",
				Help:    "Screen render duration in seconds by renderer",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"renderer"},
		),
		TapsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "a11ycatalog_taps_total",
				Help: "Total number of taps by screen and status",
			},
			[]string{"screen", "status"}, // status: success, unknown_element, not_interactive
		),
		ActiveSessions: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "a11ycatalog_active_sessions",
				Help: "Number of sessions currently holding screen state",
			},
		),
		SessionsEvictedTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "a11ycatalog_sessions_evicted_total",
				Help: "Total number of sessions evicted to stay under the session limit",
			},
		),
	}
}
