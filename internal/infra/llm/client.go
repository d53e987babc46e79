// Package llm provides single-turn chat completion clients for the brochure pipeline.
//
// Each Client sends one system instruction and one user instruction to a fixed
// model and returns the text of the reply. Clients keep no conversation state,
// so one instance can serve concurrent requests. API keys are resolved and
// validated when the client is built; a bad key never reaches the network.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"company-brochure/internal/resilience/circuitbreaker"
	"company-brochure/internal/utils/text"
)

// Provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Client completes a single system+user exchange against a fixed model.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Provider() string
	Model() string
	// Available reports whether calls are currently being let through
	// (the circuit breaker is not open).
	Available() bool
}

// Option customises a client.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	metrics    MetricsRecorder
	breaker    *circuitbreaker.CircuitBreaker
	httpClient *http.Client
}

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m MetricsRecorder) Option {
	return func(o *options) { o.metrics = m }
}

// WithCircuitBreaker replaces the provider's default circuit breaker.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(o *options) { o.breaker = cb }
}

// WithHTTPClient sets the HTTP client used to reach the provider.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

func buildOptions(defaultBreaker circuitbreaker.Config, opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.metrics == nil {
		o.metrics = NewPrometheusMetrics()
	}
	if o.breaker == nil {
		defaultBreaker.Logger = o.logger
		o.breaker = circuitbreaker.New(defaultBreaker)
	}
	return o
}

// completion is a provider-neutral reply.
type completion struct {
	text             string
	promptTokens     int
	completionTokens int
}

// caller holds what every provider shares: timeout, breaker, logging, metrics.
type caller struct {
	provider string
	cfg      Config
	opts     options
}

func (c *caller) Provider() string { return c.provider }

func (c *caller) Model() string { return c.cfg.Model }

func (c *caller) Available() bool { return !c.opts.breaker.IsOpen() }

// call runs fn under the configured timeout and circuit breaker, and turns
// an empty reply into ErrEmptyResponse.
func (c *caller) call(ctx context.Context, system, user string, fn func(context.Context) (completion, error)) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	logger := c.opts.logger
	logger.DebugContext(ctx, "sending completion request",
		slog.String("provider", c.provider),
		slog.String("model", c.cfg.Model),
		slog.Int("system_length", text.CountRunes(system)),
		slog.Int("user_length", text.CountRunes(user)))

	start := time.Now()
	res, err := circuitbreaker.Run(c.opts.breaker, func() (completion, error) {
		return fn(ctx)
	})
	duration := time.Since(start)

	if errors.Is(err, circuitbreaker.ErrOpen) {
		logger.WarnContext(ctx, "completion rejected, circuit breaker open",
			slog.String("provider", c.provider),
			slog.String("circuit", c.opts.breaker.Name()))
		err = fmt.Errorf("%s: %w", c.provider, ErrCircuitOpen)
	}
	if err == nil && strings.TrimSpace(res.text) == "" {
		err = fmt.Errorf("%s: %w", c.provider, ErrEmptyResponse)
	}

	c.opts.metrics.RecordCompletion(c.provider, c.cfg.Model, Outcome(err), duration)

	if err != nil {
		logger.ErrorContext(ctx, "completion failed",
			slog.String("provider", c.provider),
			slog.String("model", c.cfg.Model),
			slog.String("outcome", Outcome(err)),
			slog.Duration("duration", duration),
			slog.Any("error", err))
		return "", err
	}

	c.opts.metrics.RecordTokens(c.provider, c.cfg.Model, res.promptTokens, res.completionTokens)
	logger.InfoContext(ctx, "completion received",
		slog.String("provider", c.provider),
		slog.String("model", c.cfg.Model),
		slog.Int("response_length", text.CountRunes(res.text)),
		slog.Int("prompt_tokens", res.promptTokens),
		slog.Int("completion_tokens", res.completionTokens),
		slog.Duration("duration", duration))

	return res.text, nil
}
