package brochure_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-brochure/internal/domain/entity"
	hhttp "company-brochure/internal/handler/http"
	"company-brochure/internal/handler/http/brochure"
	"company-brochure/internal/handler/http/respond"
	brochureUC "company-brochure/internal/usecase/brochure"
)

type stubService struct {
	run       *entity.BrochureRequest
	runErr    error
	links     entity.LinkSet
	selection entity.Selection
	linksErr  error

	lastReq      brochureUC.Request
	runCalls     int
	selectCalls  int
	discoverCall int
}

func (s *stubService) Run(_ context.Context, req brochureUC.Request) (*entity.BrochureRequest, error) {
	s.lastReq = req
	s.runCalls++
	return s.run, s.runErr
}

func (s *stubService) DiscoverLinks(_ context.Context, _ string) (entity.LinkSet, error) {
	s.discoverCall++
	return s.links, s.linksErr
}

func (s *stubService) SelectLinks(_ context.Context, _ string) (entity.LinkSet, entity.Selection, error) {
	s.selectCalls++
	return s.links, s.selection, s.linksErr
}

func invalidURLError() error {
	return fmt.Errorf("%w: %w", brochureUC.ErrInvalidBaseURL,
		&entity.ValidationError{Field: "base_url", Message: "base_url must use http or https scheme"})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMux(svc brochure.Service) *http.ServeMux {
	mux := http.NewServeMux()
	brochure.Register(mux, svc, nil, discardLogger())
	return mux
}

func post(t *testing.T, h http.Handler, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func successfulRun() *entity.BrochureRequest {
	return &entity.BrochureRequest{
		ID:          "run-1",
		BaseURL:     "https://www.acme.test",
		CompanyName: "Acme",
		Brochure:    entity.Brochure{CompanyName: "Acme", Markdown: "# Acme\n\nWe build rockets."},
	}
}

func TestGenerateHandler_Success(t *testing.T) {
	svc := &stubService{run: successfulRun()}

	rec := post(t, newMux(svc), "/generate_brochure", `{"base_url":"https://www.acme.test","company_name":"Acme"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "false", rec.Header().Get("X-Brochure-Degraded"))
	assert.JSONEq(t, `{"company_brochure":"# Acme\n\nWe build rockets."}`, rec.Body.String())
	assert.Equal(t, brochureUC.Request{BaseURL: "https://www.acme.test", CompanyName: "Acme"}, svc.lastReq)
}

func TestGenerateHandler_GeneratePromptAlias(t *testing.T) {
	svc := &stubService{run: successfulRun()}

	rec := post(t, newMux(svc), "/generate_prompt", `{"base_url":"https://www.acme.test"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.runCalls)
}

func TestGenerateHandler_DegradedRunStillSucceeds(t *testing.T) {
	run := successfulRun()
	run.Brochure = entity.Brochure{Markdown: "Error: brochure generation failed.", Err: errors.New("boom")}
	svc := &stubService{run: run}

	rec := post(t, newMux(svc), "/generate_brochure", `{"base_url":"https://www.acme.test"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("X-Brochure-Degraded"))
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestGenerateHandler_Errors(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		body      string
		runErr    error
		wantCode  int
		wantError string
		wantRuns  int
	}{
		{
			name:      "empty body",
			target:    "/generate_brochure",
			body:      "",
			wantCode:  http.StatusBadRequest,
			wantError: "request body is required",
		},
		{
			name:      "malformed json",
			target:    "/generate_brochure",
			body:      `{"base_url":`,
			wantCode:  http.StatusBadRequest,
			wantError: "request body must be a valid JSON object",
		},
		{
			name:      "unknown format",
			target:    "/generate_brochure?format=docx",
			body:      `{"base_url":"https://www.acme.test"}`,
			wantCode:  http.StatusBadRequest,
			wantError: "format must be markdown, json or pdf",
		},
		{
			name:      "invalid base url",
			target:    "/generate_brochure",
			body:      `{"base_url":"ftp://acme.test"}`,
			runErr:    invalidURLError(),
			wantCode:  http.StatusBadRequest,
			wantError: "base_url must use http or https scheme",
			wantRuns:  1,
		},
		{
			name:      "unexpected failure",
			target:    "/generate_brochure",
			body:      `{"base_url":"https://www.acme.test"}`,
			runErr:    errors.New("key sk-proj-secret123456 rejected"),
			wantCode:  http.StatusInternalServerError,
			wantError: "brochure generation failed",
			wantRuns:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{runErr: tt.runErr}

			rec := post(t, newMux(svc), tt.target, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			var body respond.ErrorBody
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantRuns, svc.runCalls)
		})
	}
}

func TestGenerateHandler_MarkdownFormat(t *testing.T) {
	svc := &stubService{run: successfulRun()}

	rec := post(t, newMux(svc), "/generate_brochure?format=markdown", `{"base_url":"https://www.acme.test"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="www_acme_test_brochure.md"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "# Acme\n\nWe build rockets.", rec.Body.String())
}

func TestGenerateHandler_JSONDocumentFormat(t *testing.T) {
	svc := &stubService{run: successfulRun()}

	rec := post(t, newMux(svc), "/generate_brochure?format=json", `{"base_url":"https://www.acme.test"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Acme", doc["company_name"])
	assert.Equal(t, "# Acme\n\nWe build rockets.", doc["company_brochure"])
}

func TestGenerateHandler_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/generate_brochure", nil)
	rec := httptest.NewRecorder()
	newMux(&stubService{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLinksHandler_DiscoverOnly(t *testing.T) {
	svc := &stubService{links: entity.LinkSet{BaseURL: "https://x.test", Links: []string{"https://x.test/about", "https://x.test/blog"}}}

	rec := post(t, newMux(svc), "/fetch_links", `{"base_url":"https://x.test"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"links":["https://x.test/about","https://x.test/blog"]}`, rec.Body.String())
	assert.Equal(t, 1, svc.discoverCall)
	assert.Equal(t, 0, svc.selectCalls)
}

func TestLinksHandler_Relevant(t *testing.T) {
	svc := &stubService{
		links: entity.LinkSet{BaseURL: "https://x.test", Links: []string{"https://x.test/about"}},
		selection: entity.Selection{Entries: []entity.RelevantLinkEntry{
			{Type: "about page", URL: "https://x.test/about"},
			{Type: "careers page", URL: "https://x.test/jobs", Suspect: true},
		}},
	}

	rec := post(t, newMux(svc), "/fetch_links", `{"base_url":"https://x.test","relevant":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"links":["https://x.test/about"],
		"relevant_links":[
			{"type":"about page","url":"https://x.test/about"},
			{"type":"careers page","url":"https://x.test/jobs","suspect":true}
		]
	}`, rec.Body.String())
	assert.Equal(t, 1, svc.selectCalls)
}

func TestLinksHandler_FailedLoadReportsError(t *testing.T) {
	svc := &stubService{links: entity.LinkSet{BaseURL: "https://x.test", Err: errors.New("dial tcp 10.0.0.1:443: refused")}}

	rec := post(t, newMux(svc), "/fetch_links", `{"base_url":"https://x.test"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"links":[],"error":"failed to load page"}`, rec.Body.String())
}

func TestLinksHandler_InvalidBaseURL(t *testing.T) {
	svc := &stubService{linksErr: invalidURLError()}

	rec := post(t, newMux(svc), "/fetch_links", `{"base_url":"mailto:x@y.test"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"base_url must use http or https scheme","field":"base_url"}`, rec.Body.String())
}

func TestRegister_AppliesLimiter(t *testing.T) {
	limited := 0
	limit := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limited++
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}
	mux := http.NewServeMux()
	brochure.Register(mux, &stubService{}, limit, discardLogger())

	for _, path := range []string{"/generate_brochure", "/generate_prompt", "/fetch_links"} {
		rec := post(t, mux, path, `{}`)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code, path)
	}
	assert.Equal(t, 3, limited)
}

// slowService finishes a run only after the request context is cancelled,
// so the handler writes its response after the timeout has fired.
type slowService struct {
	stubService
	wg sync.WaitGroup
}

func (s *slowService) Run(ctx context.Context, _ brochureUC.Request) (*entity.BrochureRequest, error) {
	defer s.wg.Done()
	<-ctx.Done()
	run := successfulRun()
	run.Brochure = entity.Brochure{Err: ctx.Err()}
	return run, nil
}

func TestGenerateHandler_TimeoutWhileHandlerWrites(t *testing.T) {
	svc := &slowService{}
	mux := http.NewServeMux()
	brochure.Register(mux, svc, hhttp.Timeout(5*time.Millisecond), discardLogger())

	for i := 0; i < 50; i++ {
		svc.wg.Add(1)
		rec := post(t, mux, "/generate_brochure", `{"base_url":"https://www.acme.test"}`)
		svc.wg.Wait()

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Empty(t, rec.Header().Get("X-Brochure-Degraded"))
		assert.JSONEq(t, `{"error":"request timeout"}`, rec.Body.String())
	}
}
