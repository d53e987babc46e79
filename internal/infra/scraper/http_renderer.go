package scraper

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// HTTPRenderer loads pages with a plain HTTP GET. It does not run
// JavaScript, so client-rendered sites come back mostly empty.
//
// Thread safety: HTTPRenderer is safe for concurrent use.
type HTTPRenderer struct {
	client *http.Client
	config Config
	guard  guard
}

// NewHTTPRenderer creates an HTTPRenderer. Every redirect target is
// validated the same way as the initial URL.
func NewHTTPRenderer(config Config, logger *slog.Logger) *HTTPRenderer {
	r := &HTTPRenderer{
		config: config,
		guard:  newGuard("http", config.DenyPrivateIPs, logger),
	}

	r.client = &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= r.config.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", ErrTooManyRedirects, len(via))
			}
			if err := validateURL(req.URL.String(), r.config.DenyPrivateIPs); err != nil {
				return fmt.Errorf("redirect target validation failed: %w", err)
			}
			return nil
		},
	}

	return r
}

// Name implements Renderer.
func (r *HTTPRenderer) Name() string { return "http" }

// Render implements Renderer.
func (r *HTTPRenderer) Render(ctx context.Context, urlStr string) (string, error) {
	return r.guard.run(ctx, urlStr, func() (string, error) {
		return r.doFetch(ctx, urlStr)
	})
}

func (r *HTTPRenderer) doFetch(ctx context.Context, urlStr string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", r.config.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := r.client.Do(req)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: request exceeded %v", ErrRenderTimeout, r.config.Timeout)
		}
		return "", fmt.Errorf("%w: HTTP request failed: %w", ErrRenderFailed, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: HTTP %d: %s", ErrRenderFailed, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, r.config.MaxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response body: %v", ErrRenderFailed, err)
	}
	if int64(len(body)) > r.config.MaxBodySize {
		return "", fmt.Errorf("%w: response exceeds limit %d bytes", ErrBodyTooLarge, r.config.MaxBodySize)
	}

	return string(body), nil
}
