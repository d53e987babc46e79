// Package scraper loads company web pages and extracts the links and text the
// brochure pipeline works from.
//
// A Renderer turns a URL into HTML. ChromeRenderer drives a headless browser
// so that JavaScript-built pages are captured after the network goes idle;
// HTTPRenderer does a plain GET for static sites and tests. PageFetcher sits
// on top of either and never fails: a page that cannot be loaded yields an
// empty result carrying the cause.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"company-brochure/internal/observability/metrics"
	"company-brochure/internal/resilience/circuitbreaker"
)

// Renderer loads a page and returns its final HTML markup.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
	// Name identifies the renderer in logs and metrics.
	Name() string
}

// guard applies the checks both renderers share: URL validation, the
// circuit breaker, timeout mapping and render metrics.
type guard struct {
	name           string
	denyPrivateIPs bool
	breaker        *circuitbreaker.CircuitBreaker
	logger         *slog.Logger
}

func newGuard(name string, denyPrivateIPs bool, logger *slog.Logger) guard {
	if logger == nil {
		logger = slog.Default()
	}
	cbConfig := circuitbreaker.PageRenderConfig(name)
	cbConfig.Logger = logger
	return guard{
		name:           name,
		denyPrivateIPs: denyPrivateIPs,
		breaker:        circuitbreaker.New(cbConfig),
		logger:         logger,
	}
}

func (g guard) run(ctx context.Context, urlStr string, fn func() (string, error)) (string, error) {
	if err := validateURL(urlStr, g.denyPrivateIPs); err != nil {
		return "", err
	}

	start := time.Now()
	html, err := circuitbreaker.Run(g.breaker, fn)
	duration := time.Since(start)

	if errors.Is(err, circuitbreaker.ErrOpen) {
		g.logger.WarnContext(ctx, "page render rejected, circuit breaker open",
			slog.String("renderer", g.name),
			slog.String("url", urlStr),
			slog.String("state", g.breaker.State().String()))
		err = fmt.Errorf("%w: %s renderer unavailable: %w", ErrRenderFailed, g.name, err)
	}

	metrics.RecordPageRender(g.name, duration, len(html), err)
	return html, err
}
