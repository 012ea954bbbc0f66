package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "weathersynth"

// Metrics holds the server's Prometheus collectors.
type Metrics struct {
	SeriesGenerated    prometheus.Counter
	VPDRecomputed      prometheus.Counter
	ExportsTotal       *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors with reg. Passing a fresh registry per
// server keeps tests independent of the global default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SeriesGenerated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "series_generated_total",
			Help:      "Total number of series synthesized",
		}),
		VPDRecomputed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vpd_recomputed_total",
			Help:      "Total number of VPD recomputations over the current series",
		}),
		ExportsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Total number of delimited exports served by format",
		}, []string{"format"}),
		APIRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1.0},
		}, []string{"route"}),
	}
}
