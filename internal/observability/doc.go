// Package observability groups the brochure service's logging, metrics and
// tracing support.
//
// Subpackages:
//   - logging: slog base logger and the per-component logger Registry
//   - metrics: Prometheus collectors for HTTP traffic, pipeline stages and page rendering
//   - tracing: OpenTelemetry tracer setup, stage spans and HTTP middleware
//
// Example usage:
//
//	import (
//	    "company-brochure/internal/observability/logging"
//	    "company-brochure/internal/observability/metrics"
//	)
//
//	func main() {
//	    registry := logging.NewRegistry(logging.NewLogger(logging.Options{}))
//	    registry.Logger("Orchestrator").Info("application started")
//
//	    metrics.RecordRun(false)
//	}
package observability
