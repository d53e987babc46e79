// Package resilience provides fault tolerance for the calls the pipeline makes
// to services it does not control.
//
// The package supports:
//   - Circuit breakers for the LLM providers (OpenAI, Claude)
//   - Circuit breakers for page rendering, one per renderer
//
// Pipeline stages are not retried. A call that fails, or is rejected by an
// open breaker, degrades its stage instead.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.OpenAIAPIConfig())
//	reply, err := circuitbreaker.Run(cb, func() (string, error) {
//	    return callProvider(ctx)
//	})
package resilience
