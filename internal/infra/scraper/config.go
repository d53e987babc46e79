package scraper

import (
	"fmt"
	"time"
)

// Content extraction modes.
const (
	// ModeParagraphs joins the text of every <p> element.
	ModeParagraphs = "paragraphs"
	// ModeReadability extracts the main article with Readability and
	// converts it to markdown.
	ModeReadability = "readability"
)

// Config holds page loading settings shared by both renderers.
type Config struct {
	// Timeout bounds a single page load, including the wait for network idle.
	// Default: 10s
	Timeout time.Duration

	// MaxBodySize caps the bytes read from a static HTTP response.
	// Default: 10485760 (10MB)
	MaxBodySize int64

	// MaxRedirects caps redirects followed by the static renderer.
	// Default: 5
	MaxRedirects int

	// DenyPrivateIPs rejects URLs resolving to loopback, private or
	// link-local addresses. Should always be true in production.
	// Default: true
	DenyPrivateIPs bool

	// UserAgent identifies the crawler.
	UserAgent string

	// ChromePath overrides the browser executable. Empty lets chromedp find one.
	ChromePath string

	// ContentMode selects how FetchContent extracts text.
	ContentMode string
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:        10 * time.Second,
		MaxBodySize:    10 * 1024 * 1024,
		MaxRedirects:   5,
		DenyPrivateIPs: true,
		UserAgent:      "BrochureBot/1.0",
		ContentMode:    ModeParagraphs,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}

	minBodySize := int64(1024)
	maxBodySize := int64(100 * 1024 * 1024)
	if c.MaxBodySize < minBodySize || c.MaxBodySize > maxBodySize {
		return fmt.Errorf("max body size must be between %d and %d bytes, got %d", minBodySize, maxBodySize, c.MaxBodySize)
	}

	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}

	switch c.ContentMode {
	case ModeParagraphs, ModeReadability:
	default:
		return fmt.Errorf("content mode must be %q or %q, got %q", ModeParagraphs, ModeReadability, c.ContentMode)
	}

	return nil
}
