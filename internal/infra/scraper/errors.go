package scraper

import "errors"

// Sentinel errors for page loading. Renderers wrap one of these so callers
// can tell a blocked URL from a slow or broken site.
var (
	// ErrInvalidURL indicates the URL is malformed or uses a non-http(s) scheme.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrPrivateIP indicates the host resolves to a loopback, private or
	// link-local address.
	ErrPrivateIP = errors.New("URL resolves to private IP address")

	// ErrRenderTimeout indicates the page did not settle within the timeout.
	ErrRenderTimeout = errors.New("page render timed out")

	// ErrRenderFailed indicates the page could not be loaded or parsed.
	ErrRenderFailed = errors.New("page render failed")

	// ErrBodyTooLarge indicates the response exceeded the configured size limit.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrTooManyRedirects indicates the redirect chain exceeded the limit.
	ErrTooManyRedirects = errors.New("too many redirects")
)
