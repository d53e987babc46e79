package llm

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsRecorder records completion call metrics.
// Tests inject a fake; production uses the Prometheus recorder.
type MetricsRecorder interface {
	// RecordCompletion records one call by provider, model and outcome (see Outcome).
	RecordCompletion(provider, model, outcome string, duration time.Duration)

	// RecordTokens records token usage reported by the provider.
	RecordTokens(provider, model string, promptTokens, completionTokens int)
}

// PrometheusMetrics implements MetricsRecorder using Prometheus metrics.
type PrometheusMetrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	tokens   *prometheus.CounterVec
}

var (
	prometheusMetricsInstance *PrometheusMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreateCounterVec gets an existing counter vector or registers a new one
func getOrCreateCounterVec(opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
	}
	return c
}

// getOrCreateHistogramVec gets an existing histogram vector or registers a new one
func getOrCreateHistogramVec(opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	h := prometheus.NewHistogramVec(opts, labels)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.HistogramVec)
		}
	}
	return h
}

// NewPrometheusMetrics returns the process-wide Prometheus recorder.
// Uses sync.Once to avoid duplicate metric registration in tests.
func NewPrometheusMetrics() *PrometheusMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusMetrics{
			calls: getOrCreateCounterVec(prometheus.CounterOpts{
				Name: "llm_completions_total",
				Help: "Total number of LLM completion calls by outcome",
			}, []string{"provider", "model", "outcome"}),
			duration: getOrCreateHistogramVec(prometheus.HistogramOpts{
				Name:    "llm_completion_duration_seconds",
				Help:    "Time taken by an LLM completion call",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
			}, []string{"provider", "model"}),
			tokens: getOrCreateCounterVec(prometheus.CounterOpts{
				Name: "llm_tokens_total",
				Help: "Total number of tokens consumed by kind (prompt, completion)",
			}, []string{"provider", "model", "kind"}),
		}
	})
	return prometheusMetricsInstance
}

// RecordCompletion implements MetricsRecorder.
func (p *PrometheusMetrics) RecordCompletion(provider, model, outcome string, duration time.Duration) {
	p.calls.WithLabelValues(provider, model, outcome).Inc()
	p.duration.WithLabelValues(provider, model).Observe(duration.Seconds())
}

// RecordTokens implements MetricsRecorder.
func (p *PrometheusMetrics) RecordTokens(provider, model string, promptTokens, completionTokens int) {
	if promptTokens > 0 {
		p.tokens.WithLabelValues(provider, model, "prompt").Add(float64(promptTokens))
	}
	if completionTokens > 0 {
		p.tokens.WithLabelValues(provider, model, "completion").Add(float64(completionTokens))
	}
}
