// Package app assembles the brochure pipeline from configuration. Both the
// API server and the CLI build their orchestrator here.
package app

import (
	"fmt"

	"company-brochure/internal/config"
	"company-brochure/internal/infra/llm"
	"company-brochure/internal/infra/scraper"
	"company-brochure/internal/observability/logging"
	brochureUC "company-brochure/internal/usecase/brochure"
)

// Pipeline holds the wired components of one process.
type Pipeline struct {
	Orchestrator *brochureUC.Orchestrator
	LLM          llm.Client
	Renderer     scraper.Renderer

	closers []func()
}

// Build wires the page renderer, model client and use case components.
// Every component logs through its own named logger from reg.
// It fails before any network activity when the API key is missing or malformed.
func Build(cfg *config.Config, reg *logging.Registry, opts ...llm.Option) (*Pipeline, error) {
	policy, err := brochureUC.ParseLinkPolicy(cfg.Brochure.LinkPolicy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	opts = append([]llm.Option{llm.WithLogger(reg.Logger("AIClient"))}, opts...)
	client, err := llm.New(cfg.LLM.Provider, LLMConfig(cfg.LLM), opts...)
	if err != nil {
		return nil, fmt.Errorf("create llm client: %w", err)
	}

	scraperCfg := ScraperConfig(cfg.Scraper)
	if err := scraperCfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	p := &Pipeline{LLM: client}

	rendererLogger := reg.Logger("PageRenderer")
	switch cfg.Scraper.Renderer {
	case config.RendererHTTP:
		p.Renderer = scraper.NewHTTPRenderer(scraperCfg, rendererLogger)
	default:
		chrome := scraper.NewChromeRenderer(scraperCfg, rendererLogger)
		p.Renderer = chrome
		p.closers = append(p.closers, chrome.Close)
	}

	fetcher := scraper.NewPageFetcher(p.Renderer, scraperCfg.ContentMode, reg.Logger("PageFetcher"))
	selector := brochureUC.NewLinkSelector(client, brochureUC.DefaultPrompts{}, policy, reg.Logger("LinkSelector"))
	generator := brochureUC.NewBrochureGenerator(client, brochureUC.DefaultPrompts{}, reg.Logger("BrochureGenerator"))

	p.Orchestrator = brochureUC.NewOrchestrator(fetcher, selector, generator,
		cfg.Brochure.MaxContentChars, reg.Logger("Orchestrator"))
	return p, nil
}

// Close releases the browser, if one was started.
func (p *Pipeline) Close() {
	for i := len(p.closers) - 1; i >= 0; i-- {
		p.closers[i]()
	}
}

// LLMConfig maps the environment settings onto the client configuration.
func LLMConfig(c config.LLMConfig) llm.Config {
	return llm.Config{
		Model:     c.Model,
		MaxTokens: c.MaxTokens,
		Timeout:   c.Timeout,
		BaseURL:   c.BaseURL,
	}
}

// ScraperConfig maps the environment settings onto the renderer configuration.
func ScraperConfig(c config.ScraperConfig) scraper.Config {
	sc := scraper.DefaultConfig()
	sc.Timeout = c.Timeout
	sc.MaxBodySize = c.MaxBodySize
	sc.DenyPrivateIPs = c.DenyPrivateIPs
	sc.UserAgent = c.UserAgent
	sc.ChromePath = c.ChromePath
	sc.ContentMode = c.ContentMode
	return sc
}
