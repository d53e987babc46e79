package brochure

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"company-brochure/internal/domain/entity"
	"company-brochure/internal/handler/http/requestid"
	"company-brochure/internal/observability/metrics"
	"company-brochure/internal/observability/tracing"
	"company-brochure/internal/utils/text"
)

// Request describes one brochure run.
type Request struct {
	BaseURL string
	// CompanyName is derived from BaseURL when empty.
	CompanyName string
}

// Orchestrator runs the pipeline: fetch, select, generate.
//
// It keeps only its collaborators, so one Orchestrator can serve concurrent
// runs as long as they are safe for concurrent use.
type Orchestrator struct {
	fetcher         PageFetcher
	selector        *LinkSelector
	generator       *BrochureGenerator
	maxContentChars int
	logger          *slog.Logger
}

// NewOrchestrator creates an Orchestrator. maxContentChars caps the landing
// page text passed to the model; zero disables the cap.
func NewOrchestrator(fetcher PageFetcher, selector *LinkSelector, generator *BrochureGenerator, maxContentChars int, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		fetcher:         fetcher,
		selector:        selector,
		generator:       generator,
		maxContentChars: maxContentChars,
		logger:          logger,
	}
}

// Orchestrate generates a brochure for baseURL and returns its text.
func (o *Orchestrator) Orchestrate(ctx context.Context, baseURL string) (string, error) {
	run, err := o.Run(ctx, Request{BaseURL: baseURL})
	if err != nil {
		return "", err
	}
	return run.Brochure.Markdown, nil
}

// Run generates a brochure and returns the full record of the run. The only
// error is an invalid base URL; stage failures are recorded on the result.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*entity.BrochureRequest, error) {
	baseURL := strings.TrimSpace(req.BaseURL)
	if err := entity.ValidateBaseURL(baseURL); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	run := &entity.BrochureRequest{
		ID:          runID(ctx),
		BaseURL:     baseURL,
		CompanyName: strings.TrimSpace(req.CompanyName),
		StartedAt:   time.Now(),
	}
	if run.CompanyName == "" {
		run.CompanyName = CompanyNameFromURL(baseURL)
	}

	ctx, span := tracing.StartSpan(ctx, "brochure.run",
		attribute.String("brochure.base_url", baseURL),
		attribute.String("brochure.run_id", run.ID))
	defer span.End()

	logger := o.logger.With(slog.String("run_id", run.ID), slog.String("base_url", baseURL))
	logger.InfoContext(ctx, "brochure run started", slog.String("company", run.CompanyName))

	run.Content, run.Links = o.fetch(ctx, baseURL)
	run.Relevant = o.selectLinks(ctx, baseURL, run.Links)
	metrics.RecordLinkCounts(run.Links.Len(), len(run.Relevant.Entries))

	content := run.Content.Text
	if o.maxContentChars > 0 {
		var truncated bool
		content, truncated = text.Truncate(content, o.maxContentChars)
		if truncated {
			logger.InfoContext(ctx, "page content truncated for prompt",
				slog.Int("limit", o.maxContentChars),
				slog.Int("original_length", text.CountRunes(run.Content.Text)))
		}
	}

	run.Brochure = o.generate(ctx, run.CompanyName, content, run.Relevant.Text())

	run.Duration = time.Since(run.StartedAt)
	degraded := run.Degraded()
	metrics.RecordRun(degraded)
	span.SetAttributes(
		attribute.Bool("brochure.degraded", degraded),
		attribute.Int("brochure.links", run.Links.Len()),
		attribute.Int("brochure.relevant_links", len(run.Relevant.Entries)))

	logger.InfoContext(ctx, "brochure run completed",
		slog.Bool("degraded", degraded),
		slog.Int("links", run.Links.Len()),
		slog.Int("relevant_links", len(run.Relevant.Entries)),
		slog.Int("brochure_length", text.CountRunes(run.Brochure.Markdown)),
		slog.Duration("duration", run.Duration))

	return run, nil
}

// DiscoverLinks runs only the link discovery stage. A failed page load is
// reported on the returned LinkSet, not as an error.
func (o *Orchestrator) DiscoverLinks(ctx context.Context, baseURL string) (entity.LinkSet, error) {
	baseURL = strings.TrimSpace(baseURL)
	if err := entity.ValidateBaseURL(baseURL); err != nil {
		return entity.LinkSet{}, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	return o.fetchLinks(ctx, baseURL), nil
}

// SelectLinks runs only the discovery and selection stages.
func (o *Orchestrator) SelectLinks(ctx context.Context, baseURL string) (entity.LinkSet, entity.Selection, error) {
	baseURL = strings.TrimSpace(baseURL)
	if err := entity.ValidateBaseURL(baseURL); err != nil {
		return entity.LinkSet{}, entity.Selection{}, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	ctx, span := tracing.StartSpan(ctx, "brochure.select_links_only",
		attribute.String("brochure.base_url", baseURL))
	defer span.End()

	links := o.fetchLinks(ctx, baseURL)
	selection := o.selectLinks(ctx, baseURL, links)
	metrics.RecordLinkCounts(links.Len(), len(selection.Entries))
	return links, selection, nil
}

// fetch loads content and links concurrently. Both always complete, each
// degrading on its own.
func (o *Orchestrator) fetch(ctx context.Context, baseURL string) (entity.PageContent, entity.LinkSet) {
	var (
		content entity.PageContent
		links   entity.LinkSet
		g       errgroup.Group
	)

	g.Go(func() error {
		ctx, span := tracing.StartSpan(ctx, "brochure.fetch_content")
		defer span.End()

		start := time.Now()
		content = o.fetcher.FetchContent(ctx, baseURL)
		metrics.RecordStage(metrics.StageFetchContent, time.Since(start), content.Failed())
		tracing.RecordError(span, content.Err)
		return nil
	})
	g.Go(func() error {
		links = o.fetchLinks(ctx, baseURL)
		return nil
	})
	_ = g.Wait()

	return content, links
}

func (o *Orchestrator) fetchLinks(ctx context.Context, baseURL string) entity.LinkSet {
	ctx, span := tracing.StartSpan(ctx, "brochure.fetch_links")
	defer span.End()

	start := time.Now()
	links := o.fetcher.FetchLinks(ctx, baseURL)
	metrics.RecordStage(metrics.StageFetchLinks, time.Since(start), links.Failed())
	tracing.RecordError(span, links.Err)
	return links
}

func (o *Orchestrator) selectLinks(ctx context.Context, baseURL string, links entity.LinkSet) entity.Selection {
	ctx, span := tracing.StartSpan(ctx, "brochure.select_links",
		attribute.Int("brochure.candidates", links.Len()))
	defer span.End()

	start := time.Now()
	selection := o.selector.SelectRelevantLinks(ctx, baseURL, links)
	metrics.RecordStage(metrics.StageSelectLinks, time.Since(start), selection.Failed())
	tracing.RecordError(span, selection.Err)
	return selection
}

func (o *Orchestrator) generate(ctx context.Context, companyName, content, links string) entity.Brochure {
	ctx, span := tracing.StartSpan(ctx, "brochure.generate")
	defer span.End()

	start := time.Now()
	b := o.generator.CreateBrochure(ctx, companyName, content, links)
	metrics.RecordStage(metrics.StageGenerate, time.Since(start), b.Failed())
	tracing.RecordError(span, b.Err)
	return b
}

// runID reuses the request ID when the run was started by an HTTP request.
func runID(ctx context.Context) string {
	if id := requestid.FromContext(ctx); id != "" {
		return id
	}
	return uuid.New().String()
}
