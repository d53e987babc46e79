package llm_test

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"company-brochure/internal/infra/llm"
	"company-brochure/internal/resilience/circuitbreaker"
)

type recordedCall struct {
	provider string
	model    string
	outcome  string
}

// fakeMetrics captures recorded completions for assertions.
type fakeMetrics struct {
	mu     sync.Mutex
	calls  []recordedCall
	tokens int
}

func (f *fakeMetrics) RecordCompletion(provider, model, outcome string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedCall{provider: provider, model: model, outcome: outcome})
}

func (f *fakeMetrics) RecordTokens(_, _ string, promptTokens, completionTokens int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens += promptTokens + completionTokens
}

func (f *fakeMetrics) outcomes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.outcome)
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(baseURL string) llm.Config {
	return llm.Config{
		Model:     "gpt-4",
		MaxTokens: 256,
		Timeout:   5 * time.Second,
		BaseURL:   baseURL,
	}
}

// tripAfterOne opens after a single failure.
func tripAfterOne() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		Name:             "test-llm",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 0.5,
		MinRequests:      1,
	})
}
