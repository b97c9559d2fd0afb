package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cosmic_watch",
			Subsystem: "astro_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cosmic_watch",
			Subsystem: "astro_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Upstream generation calls
	UpstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cosmic_watch",
			Subsystem: "astro_api",
			Name:      "upstream_calls_total",
			Help:      "Total Gemini upstream calls",
		},
		[]string{"operation", "model", "outcome"},
	)

	// Upstream generation duration
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cosmic_watch",
			Subsystem: "astro_api",
			Name:      "upstream_duration_seconds",
			Help:      "Gemini upstream call duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30},
		},
		[]string{"operation", "model"},
	)

	// Catalog degradations
	FallbackServedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cosmic_watch",
			Subsystem: "astro_api",
			Name:      "fallback_served_total",
			Help:      "Responses answered from the local knowledge base",
		},
		[]string{"operation"},
	)

	// NEO feed fetches
	NeoFeedFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cosmic_watch",
			Subsystem: "astro_api",
			Name:      "neo_feed_fetches_total",
			Help:      "NASA NeoWs feed fetch attempts",
		},
		[]string{"outcome"},
	)
)

// ObserveUpstreamCall records counters and latency for one Gemini call.
func ObserveUpstreamCall(operation, model string, elapsed time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	UpstreamCallsTotal.WithLabelValues(operation, model, outcome).Inc()
	UpstreamDuration.WithLabelValues(operation, model).Observe(elapsed.Seconds())
}

// Serve exposes /metrics on a dedicated port, separate from the API listener.
func Serve(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
