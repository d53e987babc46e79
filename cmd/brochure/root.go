package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"company-brochure/internal/app"
	"company-brochure/internal/config"
	"company-brochure/internal/domain/entity"
	"company-brochure/internal/observability/logging"
	brochureUC "company-brochure/internal/usecase/brochure"
)

// service is the part of the orchestrator the commands use.
type service interface {
	Run(ctx context.Context, req brochureUC.Request) (*entity.BrochureRequest, error)
	DiscoverLinks(ctx context.Context, baseURL string) (entity.LinkSet, error)
	SelectLinks(ctx context.Context, baseURL string) (entity.LinkSet, entity.Selection, error)
}

// pipelineFactory builds the service for one command invocation and
// returns a function releasing its resources.
type pipelineFactory func(opts globalOptions) (service, func(), error)

type globalOptions struct {
	renderer string
	logLevel string
}

func newRootCmd(build pipelineFactory) *cobra.Command {
	var opts globalOptions

	root := &cobra.Command{
		Use:   "brochure",
		Short: "brochure writes a company brochure from its website",
		Long: `brochure scrapes a company's landing page, asks a language model which of
its links matter for a brochure, and asks it again to write the brochure.

Configuration comes from the environment (and a .env file if present):
OPENAI_API_KEY or ANTHROPIC_API_KEY, LLM_PROVIDER, LLM_MODEL, SCRAPER_RENDERER, ...`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.renderer, "renderer", "", "Page renderer: chrome or http (overrides SCRAPER_RENDERER)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")

	root.AddCommand(newGenerateCmd(build, &opts))
	root.AddCommand(newLinksCmd(build, &opts))
	return root
}

// buildPipeline loads configuration and wires the real pipeline. Logs go to
// stderr so that stdout carries only the brochure.
func buildPipeline(opts globalOptions) (service, func(), error) {
	bootLogger := logging.NewLogger(logging.Options{Level: "warn", Output: os.Stderr})
	if _, err := config.LoadDotEnv(".", bootLogger); err != nil {
		return nil, nil, fmt.Errorf("load .env: %w", err)
	}

	if opts.renderer != "" {
		if err := os.Setenv("SCRAPER_RENDERER", opts.renderer); err != nil {
			return nil, nil, err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	level := cfg.Log.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logger := logging.NewLogger(logging.Options{Level: level, Format: cfg.Log.Format, Output: os.Stderr})

	pipeline, err := app.Build(cfg, logging.NewRegistry(logger))
	if err != nil {
		return nil, nil, err
	}
	return pipeline.Orchestrator, pipeline.Close, nil
}
