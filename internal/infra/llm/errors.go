package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for completion calls.
//
// Every error returned by a Client wraps exactly one of ErrAuthentication,
// ErrRateLimited, ErrTransport, ErrEmptyResponse or ErrCircuitOpen, so callers
// can decide whether to degrade or abort with errors.Is.
var (
	// ErrAuthentication indicates the provider rejected the API key (HTTP 401/403).
	ErrAuthentication = errors.New("llm authentication failed")

	// ErrRateLimited indicates the provider throttled the request (HTTP 429).
	ErrRateLimited = errors.New("llm rate limit exceeded")

	// ErrTransport indicates a network failure, timeout or provider-side error.
	ErrTransport = errors.New("llm transport error")

	// ErrEmptyResponse indicates a successful call that carried no text.
	ErrEmptyResponse = errors.New("llm returned empty response")

	// ErrCircuitOpen indicates the call was rejected locally because the
	// provider has been failing.
	ErrCircuitOpen = errors.New("llm unavailable: circuit breaker open")
)

// classify wraps err with the sentinel matching statusCode.
// statusCode is 0 when the request never got an HTTP response.
func classify(provider string, statusCode int, err error) error {
	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w: %w", provider, ErrAuthentication, err)
	case statusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w: %w", provider, ErrRateLimited, err)
	default:
		return fmt.Errorf("%s: %w: %w", provider, ErrTransport, err)
	}
}

// Outcome returns a short label for err, used in logs and metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrAuthentication):
		return "auth_error"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrCircuitOpen):
		return "circuit_open"
	case errors.Is(err, ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "transport_error"
	}
}
