package http

import (
	"net/http"
	"strconv"
	"time"

	"company-brochure/internal/handler/http/pathutil"
	"company-brochure/internal/handler/http/responsewriter"
	"company-brochure/internal/observability/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsMiddleware records HTTP request metrics including duration, size, and status codes.
// Paths are normalized so unknown URLs share a single label.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		path := pathutil.NormalizePath(r.URL.Path)
		rw := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(rw, r)

		metrics.RecordHTTPRequest(r.Method, path, strconv.Itoa(rw.StatusCode()), time.Since(start), rw.BytesWritten())
	})
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
