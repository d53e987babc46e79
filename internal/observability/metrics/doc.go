// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the application metrics:
//   - HTTP request metrics (count, duration, response size, rate limiting)
//   - Brochure pipeline metrics (runs, stage durations, degraded stages, link counts)
//   - Page render metrics (duration and size per renderer)
//
// All metrics are registered with the Prometheus default registry and exposed
// via the /metrics endpoint. LLM call metrics live with the LLM clients.
//
// Example usage:
//
//	start := time.Now()
//	links := fetcher.FetchLinks(ctx, baseURL)
//	metrics.RecordStage(metrics.StageFetchLinks, time.Since(start), links.Failed())
package metrics
