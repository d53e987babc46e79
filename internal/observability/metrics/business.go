package metrics

import (
	"time"
)

// Pipeline stage names used as metric labels.
const (
	StageFetchContent = "fetch_content"
	StageFetchLinks   = "fetch_links"
	StageSelectLinks  = "select_links"
	StageGenerate     = "generate"
)

// RecordStage records the duration of a pipeline stage and whether it degraded.
func RecordStage(stage string, duration time.Duration, degraded bool) {
	BrochureStageDuration.WithLabelValues(stage).Observe(duration.Seconds())
	if degraded {
		BrochureStageDegraded.WithLabelValues(stage).Inc()
	}
}

// RecordRun records the outcome of a full orchestration run.
func RecordRun(degraded bool) {
	outcome := "complete"
	if degraded {
		outcome = "degraded"
	}
	BrochureRunsTotal.WithLabelValues(outcome).Inc()
}

// RecordLinkCounts records how many links were discovered and selected in a run.
func RecordLinkCounts(discovered, selected int) {
	LinksDiscovered.Observe(float64(discovered))
	LinksSelected.Observe(float64(selected))
}

// RecordSuspectLinks records selected links that were absent from the crawl.
// policy is the configured handling (accept, flag, reject).
func RecordSuspectLinks(policy string, count int) {
	if count <= 0 {
		return
	}
	SuspectLinksTotal.WithLabelValues(policy).Add(float64(count))
}

// RecordPageRender records a page load by renderer and result.
// size is only observed for successful renders.
func RecordPageRender(renderer string, duration time.Duration, size int, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	PageRenderDuration.WithLabelValues(renderer, result).Observe(duration.Seconds())
	if err == nil && size > 0 {
		PageRenderSize.WithLabelValues(renderer).Observe(float64(size))
	}
}

// RecordRateLimited records a request rejected by the rate limiter.
func RecordRateLimited(path string) {
	HTTPRateLimited.WithLabelValues(path).Inc()
}
