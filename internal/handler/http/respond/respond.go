// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"company-brochure/internal/domain/entity"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			if errors.Is(err, http.ErrHandlerTimeout) {
				// The timeout response has already been sent.
				return
			}
			// Headers are already sent; all that is left is to log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// safeFragments mark error messages that describe the caller's input and
// may be returned as-is.
var safeFragments = []string{
	"required",
	"invalid",
	"must be",
	"must not",
	"must have",
	"must use",
	"too large",
	"too long",
	"rate limit exceeded",
}

// SafeError writes err as a JSON error response without leaking internals.
//
// A *entity.ValidationError is reported with its field. Other messages are
// returned only when they read like input errors and code is below 500;
// everything else becomes "internal server error" and the sanitized cause
// is logged.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var vErr *entity.ValidationError
	if errors.As(err, &vErr) && code < 500 {
		JSON(w, code, ErrorBody{Error: vErr.Message, Field: vErr.Field})
		return
	}

	msg := err.Error()
	if code < 500 && isSafe(msg) {
		JSON(w, code, ErrorBody{Error: msg})
		return
	}

	slog.Default().Error("request failed",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, ErrorBody{Error: "internal server error"})
}

func isSafe(msg string) bool {
	lower := strings.ToLower(msg)
	for _, f := range safeFragments {
		if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}

// AppError is an error type that carries a user-facing message.
type AppError struct {
	UserMsg string // Message to display to users
	Err     error  // Internal error (logged for debugging)
	Code    int    // HTTP status code
}

// Error returns the error message, implementing the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

// Failure writes err, honouring an *AppError's code and user message and
// falling back to SafeError with code otherwise.
func Failure(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			slog.Default().Error("application error",
				slog.String("status", http.StatusText(appErr.Code)),
				slog.Int("code", appErr.Code),
				slog.String("user_message", appErr.UserMsg),
				slog.String("error", SanitizeError(appErr.Err)))
		}
		JSON(w, appErr.Code, ErrorBody{Error: appErr.UserMsg})
		return
	}

	SafeError(w, code, err)
}
