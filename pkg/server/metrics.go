package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the Prometheus metrics recorded by the preview server.
type Metrics struct {
	// RendersTotal counts successful page renders.
	RendersTotal prometheus.Counter

	// RenderErrors counts failed renders (provider or serializer errors).
	RenderErrors prometheus.Counter

	// RenderDuration observes wall time per render in seconds.
	RenderDuration prometheus.Histogram

	// RenderBytes observes the size of rendered markup.
	RenderBytes prometheus.Histogram

	// WarningsTotal counts reconciliation warnings (e.g. badly-cased SVG
	// attribute names).
	WarningsTotal prometheus.Counter

	// PatchesTotal counts patches broadcast to websocket subscribers.
	PatchesTotal prometheus.Counter
}

// NewMetrics registers the server metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	return &Metrics{
		RendersTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "total",
			Help:      "Total number of successful renders.",
		}),
		RenderErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "errors_total",
			Help:      "Total number of failed renders.",
		}),
		RenderDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "duration_seconds",
			Help:      "Render wall time in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
		RenderBytes: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "bytes",
			Help:      "Size of rendered markup in bytes.",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
		}),
		WarningsTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconcile",
			Name:      "warnings_total",
			Help:      "Total number of reconciliation warnings.",
		}),
		PatchesTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "patch",
			Name:      "total",
			Help:      "Total number of patches broadcast to subscribers.",
		}),
	}
}
