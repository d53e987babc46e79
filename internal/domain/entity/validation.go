package entity

import (
	"fmt"
	"net/url"
	"strings"
)

// maxURLLength defines the maximum allowed length for URLs to prevent DoS attacks.
const maxURLLength = 2048

// ValidateBaseURL validates the URL a brochure run starts from.
// It checks that the URL is well-formed, uses HTTP/HTTPS scheme, and has a valid host.
// Network-level checks (private address blocking) belong to the page renderers,
// which resolve the host at request time.
func ValidateBaseURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return &ValidationError{Field: "base_url", Message: "base_url is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "base_url",
			Message: fmt.Sprintf("base_url must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "base_url", Message: "base_url is not a valid URL"}
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "base_url", Message: "base_url must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: "base_url", Message: "base_url must have a valid host"}
	}

	return nil
}
