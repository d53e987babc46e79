package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"company-brochure/internal/infra/llm"
	"company-brochure/internal/secret"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const claudeSuccessBody = `{
	"id": "msg_01",
	"type": "message",
	"role": "assistant",
	"model": "claude-sonnet-4-5",
	"content": [
		{"type": "text", "text": "# Acme"},
		{"type": "text", "text": "\n\nWe build rockets."}
	],
	"stop_reason": "end_turn",
	"usage": {"input_tokens": 20, "output_tokens": 10}
}`

func newClaudeClient(t *testing.T, baseURL string, metrics *fakeMetrics) *llm.ClaudeClient {
	t.Helper()
	cfg := testConfig(baseURL)
	cfg.Model = "claude-sonnet-4-5"
	c, err := llm.NewClaude(
		secret.StaticKeyProvider{Key: "sk-ant-test", Prefix: secret.ClaudeKeyPrefix},
		cfg,
		llm.WithLogger(discardLogger()),
		llm.WithMetrics(metrics),
	)
	require.NoError(t, err)
	return c
}

func TestClaude_Complete_Success(t *testing.T) {
	var body map[string]any
	var apiKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("X-Api-Key")
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(claudeSuccessBody))
	}))
	defer srv.Close()

	metrics := &fakeMetrics{}
	client := newClaudeClient(t, srv.URL, metrics)

	got, err := client.Complete(context.Background(), "be a brochure writer", "about Acme")
	require.NoError(t, err)

	assert.Equal(t, "# Acme\n\nWe build rockets.", got)
	assert.Equal(t, "sk-ant-test", apiKey)
	assert.Equal(t, "claude-sonnet-4-5", body["model"])

	system, ok := body["system"].([]any)
	require.True(t, ok, "system should be a list of text blocks")
	require.Len(t, system, 1)
	assert.Equal(t, "be a brochure writer", system[0].(map[string]any)["text"])

	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].(map[string]any)["role"])

	assert.Equal(t, []string{"success"}, metrics.outcomes())
	assert.Equal(t, 30, metrics.tokens)
	assert.Equal(t, llm.ProviderAnthropic, client.Provider())
}

func TestClaude_Complete_ClassifiesErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "401 unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"type": "error", "error": {"type": "authentication_error", "message": "invalid x-api-key"}}`,
			wantErr: llm.ErrAuthentication,
		},
		{
			name:    "429 rate limit",
			status:  http.StatusTooManyRequests,
			body:    `{"type": "error", "error": {"type": "rate_limit_error", "message": "slow down"}}`,
			wantErr: llm.ErrRateLimited,
		},
		{
			name:    "529 overloaded",
			status:  529,
			body:    `{"type": "error", "error": {"type": "overloaded_error", "message": "overloaded"}}`,
			wantErr: llm.ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := newClaudeClient(t, srv.URL, &fakeMetrics{})

			_, err := client.Complete(context.Background(), "s", "u")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 1, calls, "each call is attempted exactly once")
		})
	}
}

func TestClaude_Complete_NoTextBlocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "msg_02", "type": "message", "role": "assistant", "model": "claude-sonnet-4-5",
			"content": [], "stop_reason": "end_turn", "usage": {"input_tokens": 1, "output_tokens": 0}}`))
	}))
	defer srv.Close()

	client := newClaudeClient(t, srv.URL, &fakeMetrics{})

	_, err := client.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)
}

func TestNewClaude_WrongPrefix(t *testing.T) {
	_, err := llm.NewClaude(
		secret.StaticKeyProvider{Key: "sk-proj-not-anthropic", Prefix: secret.ClaudeKeyPrefix},
		testConfig(""),
		llm.WithLogger(discardLogger()),
	)
	assert.ErrorIs(t, err, secret.ErrKeyMalformed)
}
