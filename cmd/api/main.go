package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "company-brochure/docs" // swagger docs
	"company-brochure/internal/app"
	"company-brochure/internal/config"
	hhttp "company-brochure/internal/handler/http"
	hbrochure "company-brochure/internal/handler/http/brochure"
	"company-brochure/internal/handler/http/requestid"
	"company-brochure/internal/observability/logging"
	"company-brochure/internal/observability/tracing"
)

// @title           Company Brochure API
// @version         1.0
// @description     Generates a short marketing brochure for a company from its website.
// @description     The landing page is scraped, a language model picks the relevant links,
// @description     and a second model call writes the brochure in markdown.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8000
// @BasePath  /

const rateLimitCleanupInterval = 5 * time.Minute

func main() {
	bootLogger := logging.NewLogger(logging.Options{})
	if _, err := config.LoadDotEnv(".", bootLogger); err != nil {
		bootLogger.Error("failed to load .env file", slog.Any("error", err))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		bootLogger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	slog.SetDefault(logger)
	registry := logging.NewRegistry(logger)

	shutdownTracing := tracing.Init()
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	pipeline, err := app.Build(cfg, registry)
	if err != nil {
		logger.Error("failed to build brochure pipeline", slog.Any("error", err))
		os.Exit(1)
	}
	defer pipeline.Close()

	logger.Info("brochure pipeline ready",
		slog.String("provider", pipeline.LLM.Provider()),
		slog.String("model", pipeline.LLM.Model()),
		slog.String("renderer", pipeline.Renderer.Name()),
		slog.String("content_mode", cfg.Scraper.ContentMode),
		slog.String("link_policy", cfg.Brochure.LinkPolicy))

	version := getVersion()
	components := setupServer(cfg, registry, pipeline, version)

	runServer(logger, cfg.HTTP, components, version)
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler     http.Handler
	RateLimiter *hhttp.RateLimiter
}

// setupServer configures and returns the HTTP handler with all routes and middleware.
func setupServer(cfg *config.Config, registry *logging.Registry, pipeline *app.Pipeline, version string) *ServerComponents {
	limiter := hhttp.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst, 2*rateLimitCleanupInterval)
	handlerLogger := registry.Logger("HTTPHandler")

	mux := http.NewServeMux()

	// Probes, metrics and API docs are not rate limited.
	mux.Handle("GET /health", &hhttp.HealthHandler{
		Version:     version,
		LLM:         pipeline.LLM,
		Renderer:    pipeline.Renderer.Name(),
		RateLimiter: limiter,
		Logger:      handlerLogger,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{LLM: pipeline.LLM})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Generation routes get the rate limiter and the request timeout.
	timeout := hhttp.Timeout(cfg.HTTP.RequestTimeout)
	hbrochure.Register(mux, pipeline.Orchestrator, func(h http.Handler) http.Handler {
		return limiter.Limit(timeout(h))
	}, handlerLogger)

	return &ServerComponents{
		Handler:     applyMiddleware(registry.Logger("HTTPServer"), mux, cfg.HTTP.MaxBodyBytes),
		RateLimiter: limiter,
	}
}

// applyMiddleware wraps the handler with middleware chain.
// Order, outermost first: Request ID → Tracing → Recovery → Logging → Input validation → Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler, maxBodyBytes int64) http.Handler {
	chain := handler

	// Apply in reverse order (innermost to outermost)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.InputValidation(maxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg config.HTTPConfig, components *ServerComponents, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hhttp.StartRateLimitCleanup(ctx, components.RateLimiter, rateLimitCleanupInterval, logger)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		// Brochure generation can take minutes; the write deadline sits
		// just past the handler timeout so the 504 body still goes out.
		WriteTimeout: cfg.RequestTimeout + 10*time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}

	// Cancel in-flight runs and background goroutines only after draining.
	cancel()
	logger.Info("server stopped")
}
