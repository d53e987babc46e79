package http

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"
)

// Timeout returns middleware that enforces request timeouts.
// If a request takes longer than the specified duration, it returns 504 Gateway Timeout.
// The request context is cancelled so that in-flight page loads and model
// calls stop as well.
//
// The handler writes into a buffered header map that reaches the real
// writer only when the handler commits its response, so the handler
// goroutine and the timeout path never touch the same headers.
func Timeout(duration time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), duration)
			defer cancel()

			r = r.WithContext(ctx)

			done := make(chan struct{})
			panicked := make(chan any, 1)
			tw := &timeoutResponseWriter{w: w, h: make(http.Header)}

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case p := <-panicked:
				// Re-raise on the serving goroutine so Recover can handle it.
				panic(p)
			case <-done:
				return
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				if !tw.wroteHeader {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusGatewayTimeout)
					_, _ = w.Write([]byte(`{"error":"request timeout"}`))
				}
			}
		})
	}
}

// timeoutResponseWriter holds the handler's headers until the first write
// and drops writes once the timeout response has been sent.
type timeoutResponseWriter struct {
	w http.ResponseWriter
	h http.Header

	mu          sync.Mutex
	timedOut    bool
	wroteHeader bool
}

// Header returns the handler's own header map. Only the handler goroutine
// uses it; it is copied to the real writer under mu.
func (tw *timeoutResponseWriter) Header() http.Header {
	return tw.h
}

func (tw *timeoutResponseWriter) WriteHeader(statusCode int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.writeHeaderLocked(statusCode)
}

func (tw *timeoutResponseWriter) Write(data []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.writeHeaderLocked(http.StatusOK)
	}
	return tw.w.Write(data)
}

func (tw *timeoutResponseWriter) writeHeaderLocked(statusCode int) {
	tw.wroteHeader = true
	maps.Copy(tw.w.Header(), tw.h)
	tw.w.WriteHeader(statusCode)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (tw *timeoutResponseWriter) Unwrap() http.ResponseWriter {
	return tw.w
}
