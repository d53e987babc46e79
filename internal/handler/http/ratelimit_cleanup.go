package http

import (
	"context"
	"log/slog"
	"time"
)

// StartRateLimitCleanup periodically drops idle clients from limiter until
// ctx is cancelled. It blocks, so callers run it in its own goroutine.
func StartRateLimitCleanup(ctx context.Context, limiter *RateLimiter, interval time.Duration, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("rate limit cleanup started", slog.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			logger.Info("rate limit cleanup stopped")
			return

		case <-ticker.C:
			removed := limiter.CleanupExpired()
			logger.Debug("rate limit cleanup completed",
				slog.Int("removed", removed),
				slog.Int("active", limiter.ActiveClients()))
		}
	}
}
