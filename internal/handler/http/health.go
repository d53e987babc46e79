package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Status values reported by the health endpoints.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy", "degraded" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// ModelStatus is the part of an LLM client the health checks need.
type ModelStatus interface {
	Provider() string
	Model() string
	// Available is false while the client's circuit breaker is open.
	Available() bool
}

// HealthHandler reports the state of the brochure service's dependencies.
//
// An open model circuit makes the service degraded rather than unhealthy:
// requests still succeed, they just return the generic failure brochure.
type HealthHandler struct {
	Version     string
	LLM         ModelStatus
	Renderer    string
	RateLimiter *RateLimiter
	Logger      *slog.Logger
}

// ServeHTTP returns 200 when healthy or degraded and 503 when the model
// client is not configured.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus)
	status := StatusHealthy

	llmCheck := h.checkLLM()
	checks["llm"] = llmCheck
	switch llmCheck.Status {
	case StatusUnhealthy:
		status = StatusUnhealthy
	case StatusDegraded:
		status = StatusDegraded
	}

	if h.Renderer != "" {
		checks["renderer"] = CheckStatus{
			Status:  StatusHealthy,
			Details: map[string]any{"name": h.Renderer},
		}
	}

	if h.RateLimiter != nil {
		checks["rate_limiter"] = CheckStatus{
			Status:  StatusHealthy,
			Details: map[string]any{"active_clients": h.RateLimiter.ActiveClients()},
		}
	}

	code := http.StatusOK
	if status == StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}

	h.write(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkLLM() CheckStatus {
	if h.LLM == nil {
		return CheckStatus{Status: StatusUnhealthy, Message: "not configured"}
	}

	details := map[string]any{
		"provider": h.LLM.Provider(),
		"model":    h.LLM.Model(),
	}
	if !h.LLM.Available() {
		return CheckStatus{Status: StatusDegraded, Message: "circuit breaker open", Details: details}
	}
	return CheckStatus{Status: StatusHealthy, Details: details}
}

func (h *HealthHandler) write(w http.ResponseWriter, code int, resp HealthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger := h.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("health: failed to encode response", slog.Any("error", err))
	}
}

// ReadyHandler reports whether the service should receive brochure traffic.
// It is not ready while the model circuit is open.
type ReadyHandler struct {
	LLM ModelStatus
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if h.LLM == nil || !h.LLM.Available() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"not ready"}`))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ready"}`))
}

// LiveHandler answers liveness probes. It has no dependencies.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"alive"}`))
}
