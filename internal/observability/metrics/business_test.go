package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordStage_DegradedIncrementsCounter(t *testing.T) {
	before := testutil.ToFloat64(BrochureStageDegraded.WithLabelValues(StageSelectLinks))

	RecordStage(StageSelectLinks, 120*time.Millisecond, true)
	RecordStage(StageSelectLinks, 80*time.Millisecond, false)

	after := testutil.ToFloat64(BrochureStageDegraded.WithLabelValues(StageSelectLinks))
	assert.Equal(t, before+1, after)
}

func TestRecordRun_Outcomes(t *testing.T) {
	complete := testutil.ToFloat64(BrochureRunsTotal.WithLabelValues("complete"))
	degraded := testutil.ToFloat64(BrochureRunsTotal.WithLabelValues("degraded"))

	RecordRun(false)
	RecordRun(true)
	RecordRun(true)

	assert.Equal(t, complete+1, testutil.ToFloat64(BrochureRunsTotal.WithLabelValues("complete")))
	assert.Equal(t, degraded+2, testutil.ToFloat64(BrochureRunsTotal.WithLabelValues("degraded")))
}

func TestRecordSuspectLinks(t *testing.T) {
	before := testutil.ToFloat64(SuspectLinksTotal.WithLabelValues("flag"))

	RecordSuspectLinks("flag", 2)
	RecordSuspectLinks("flag", 0)

	assert.Equal(t, before+2, testutil.ToFloat64(SuspectLinksTotal.WithLabelValues("flag")))
}

func TestRecordPageRender(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordPageRender("http", 200*time.Millisecond, 4096, nil)
		RecordPageRender("chrome", 10*time.Second, 0, errors.New("timeout"))
	})
	assert.GreaterOrEqual(t, testutil.CollectAndCount(PageRenderDuration), 2)
}

func TestRecordLinkCounts(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordLinkCounts(42, 3)
		RecordLinkCounts(0, 0)
	})
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/generate_brochure", "200"))

	RecordHTTPRequest("POST", "/generate_brochure", "200", 3*time.Second, 512)

	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/generate_brochure", "200")))
}

func TestRecordRateLimited(t *testing.T) {
	before := testutil.ToFloat64(HTTPRateLimited.WithLabelValues("/generate_brochure"))
	RecordRateLimited("/generate_brochure")
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRateLimited.WithLabelValues("/generate_brochure")))
}
