// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	// Brochure generation spans a page load and two model calls, so the
	// buckets reach well past the default ten seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 20, 40, 80, 160},
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestsInFlight tracks requests currently being served
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	// HTTPResponseSize measures HTTP response body size in bytes
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 4, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPRateLimited counts requests rejected by the generation rate limiter
	HTTPRateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"path"},
	)
)

// Pipeline metrics track brochure generation runs
var (
	// BrochureRunsTotal counts orchestration runs by outcome (complete, degraded)
	BrochureRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brochure_runs_total",
			Help: "Total number of brochure orchestration runs",
		},
		[]string{"outcome"},
	)

	// BrochureStageDuration measures each pipeline stage
	BrochureStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "brochure_stage_duration_seconds",
			Help:    "Time taken by a brochure pipeline stage",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"stage"},
	)

	// BrochureStageDegraded counts stages that fell back to an empty result
	BrochureStageDegraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brochure_stage_degraded_total",
			Help: "Total number of pipeline stages that degraded to an empty result",
		},
		[]string{"stage"},
	)

	// LinksDiscovered measures how many same-domain links a base page yields
	LinksDiscovered = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "brochure_links_discovered",
			Help:    "Number of same-domain links discovered on a base page",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	// LinksSelected measures how many links the model picked as relevant
	LinksSelected = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "brochure_links_selected",
			Help:    "Number of relevant links selected by the model",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
	)

	// SuspectLinksTotal counts selected links that were not on the crawled page
	SuspectLinksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brochure_suspect_links_total",
			Help: "Total number of model-selected links not present in the crawled link set",
		},
		[]string{"policy"},
	)
)

// Page metrics track page rendering
var (
	// PageRenderDuration measures time to load and render a page
	PageRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "page_render_duration_seconds",
			Help:    "Time taken to load and render a page",
			Buckets: []float64{0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 6.4, 12.8},
		},
		[]string{"renderer", "result"},
	)

	// PageRenderSize measures rendered HTML size in bytes
	PageRenderSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "page_render_size_bytes",
			Help:    "Rendered page HTML size in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
		[]string{"renderer"},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())

	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}
