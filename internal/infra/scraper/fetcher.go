package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"company-brochure/internal/domain/entity"
)

// PageFetcher extracts links and text from rendered pages.
//
// Neither method returns an error: a page that cannot be loaded or parsed
// yields an empty result whose Err field records the cause, and the failure
// is logged.
type PageFetcher struct {
	renderer    Renderer
	contentMode string
	logger      *slog.Logger
}

// NewPageFetcher creates a PageFetcher over renderer. An empty contentMode
// means ModeParagraphs.
func NewPageFetcher(renderer Renderer, contentMode string, logger *slog.Logger) *PageFetcher {
	if logger == nil {
		logger = slog.Default()
	}
	if contentMode == "" {
		contentMode = ModeParagraphs
	}
	return &PageFetcher{
		renderer:    renderer,
		contentMode: contentMode,
		logger:      logger,
	}
}

// FetchLinks returns the same-host links found on baseURL.
func (f *PageFetcher) FetchLinks(ctx context.Context, baseURL string) entity.LinkSet {
	set := entity.LinkSet{BaseURL: baseURL, Links: []string{}}

	base, doc, err := f.load(ctx, baseURL)
	if err != nil {
		f.logger.WarnContext(ctx, "link discovery degraded to empty",
			slog.String("url", baseURL),
			slog.String("renderer", f.renderer.Name()),
			slog.Any("error", err))
		set.Err = err
		return set
	}

	set.Links = ExtractLinks(doc, base)
	f.logger.InfoContext(ctx, "links discovered",
		slog.String("url", baseURL),
		slog.Int("count", len(set.Links)))
	return set
}

// FetchContent returns the text of pageURL according to the content mode.
func (f *PageFetcher) FetchContent(ctx context.Context, pageURL string) entity.PageContent {
	content := entity.PageContent{URL: pageURL}

	base, doc, err := f.load(ctx, pageURL)
	if err != nil {
		f.logger.WarnContext(ctx, "content extraction degraded to empty",
			slog.String("url", pageURL),
			slog.String("renderer", f.renderer.Name()),
			slog.Any("error", err))
		content.Err = err
		return content
	}

	var blocks []string
	if f.contentMode == ModeReadability {
		html, _ := doc.Html()
		blocks, err = ExtractReadable(html, base)
		if err != nil || len(blocks) == 0 {
			f.logger.DebugContext(ctx, "readability found nothing, using paragraphs",
				slog.String("url", pageURL),
				slog.Any("error", err))
			blocks = nil
		}
	}
	if blocks == nil {
		blocks = ExtractParagraphs(doc)
	}

	content.Text = strings.Join(blocks, paragraphSeparator)
	content.Paragraphs = len(blocks)
	f.logger.InfoContext(ctx, "content extracted",
		slog.String("url", pageURL),
		slog.String("mode", f.contentMode),
		slog.Int("paragraphs", content.Paragraphs))
	return content
}

// load renders rawURL and parses the result. Panics in the renderer or
// parser are turned into errors so one bad page cannot take the run down.
func (f *PageFetcher) load(ctx context.Context, rawURL string) (base *url.URL, doc *goquery.Document, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: panic while loading page: %v", ErrRenderFailed, rec)
		}
	}()

	base, err = url.Parse(rawURL)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	start := time.Now()
	html, err := f.renderer.Render(ctx, rawURL)
	if err != nil {
		return nil, nil, err
	}
	f.logger.DebugContext(ctx, "page rendered",
		slog.String("url", rawURL),
		slog.Int("bytes", len(html)),
		slog.Duration("duration", time.Since(start)))

	doc, err = goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: parse HTML: %v", ErrRenderFailed, err)
	}
	return base, doc, nil
}
