// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats
//   - A Registry that hands out one named logger per component
//   - Request ID propagation
//   - Configurable log levels
//
// Example usage:
//
//	import "company-brochure/internal/observability/logging"
//
//	func main() {
//	    logger := logging.NewLogger(logging.Options{Level: "info"})
//	    registry := logging.NewRegistry(logger)
//	    fetcher := scraper.NewPageFetcher(renderer, scraper.ModeParagraphs, registry.Logger("PageFetcher"))
//	}
//
//	func handleRequest(ctx context.Context) {
//	    logger := logging.WithRequestID(ctx, slog.Default())
//	    logger.Info("processing request")
//	}
package logging
