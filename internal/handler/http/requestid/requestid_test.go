package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		expected string
	}{
		{
			name:     "with request ID",
			ctx:      WithRequestID(context.Background(), "test-id-123"),
			expected: "test-id-123",
		},
		{
			name:     "without request ID",
			ctx:      context.Background(),
			expected: "",
		},
		{
			name:     "with invalid type in context",
			ctx:      context.WithValue(context.Background(), RequestIDKey, 12345),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromContext(tt.ctx))
		})
	}
}

func captureID(t *testing.T, header string) (string, *httptest.ResponseRecorder) {
	t.Helper()
	var captured string
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/generate_brochure", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return captured, rec
}

func TestMiddleware_WithExistingRequestID(t *testing.T) {
	captured, rec := captureID(t, "existing-request-id-456")

	assert.Equal(t, "existing-request-id-456", captured)
	assert.Equal(t, "existing-request-id-456", rec.Header().Get(RequestIDHeader))
}

func TestMiddleware_GeneratesNewRequestID(t *testing.T) {
	captured, rec := captureID(t, "")

	_, err := uuid.Parse(captured)
	assert.NoError(t, err, "generated ID should be a valid UUID")
	assert.Equal(t, captured, rec.Header().Get(RequestIDHeader))
}

func TestMiddleware_ReplacesUnacceptableRequestID(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "too long", header: strings.Repeat("a", 129)},
		{name: "contains space", header: "id with spaces"},
		{name: "contains control character", header: "id\x07bell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured, _ := captureID(t, tt.header)
			assert.NotEqual(t, tt.header, captured)
			_, err := uuid.Parse(captured)
			assert.NoError(t, err)
		})
	}
}

func TestNew_Unique(t *testing.T) {
	assert.NotEqual(t, New(), New())
}
