// Package tracing provides OpenTelemetry tracing integration.
//
// HTTP requests get a server span through Middleware; each brochure pipeline
// stage (fetch content, fetch links, select, generate) runs in a child span
// started with StartSpan.
//
// Example usage:
//
//	import "company-brochure/internal/observability/tracing"
//
//	func main() {
//	    shutdown := tracing.Init()
//	    defer shutdown(context.Background())
//	}
package tracing
