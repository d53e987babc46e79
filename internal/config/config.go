// Package config loads the brochure service configuration from the process
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Supported LLM providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Supported page renderers.
const (
	RendererChrome = "chrome"
	RendererHTTP   = "http"
)

// Supported content extraction modes.
const (
	ContentModeParagraphs  = "paragraphs"
	ContentModeReadability = "readability"
)

// Policies for model-proposed links that were not found on the crawled page.
const (
	LinkPolicyAccept = "accept"
	LinkPolicyFlag   = "flag"
	LinkPolicyReject = "reject"
)

// Default model identifiers per provider.
const (
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultAnthropicModel = "claude-sonnet-4-5"
)

// ErrInvalidConfig is returned when a configuration value fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full service configuration.
type Config struct {
	LLM      LLMConfig
	Scraper  ScraperConfig
	Brochure BrochureConfig
	HTTP     HTTPConfig
	Log      LogConfig
}

// LLMConfig selects the completion provider and model.
// API keys are not part of this struct; they are resolved by the secret package.
type LLMConfig struct {
	// Provider is "openai" or "anthropic".
	Provider string `env:"LLM_PROVIDER" envDefault:"openai"`

	// Model is fixed for the lifetime of the process.
	// Empty selects the provider default.
	Model string `env:"LLM_MODEL"`

	MaxTokens int `env:"LLM_MAX_TOKENS" envDefault:"2048"`

	// Timeout bounds a single completion call.
	Timeout time.Duration `env:"LLM_TIMEOUT" envDefault:"60s"`

	// BaseURL overrides the OpenAI endpoint (proxies, compatible servers).
	BaseURL string `env:"OPENAI_BASE_URL"`
}

// ScraperConfig controls page loading and extraction.
type ScraperConfig struct {
	Renderer       string        `env:"SCRAPER_RENDERER" envDefault:"chrome"`
	Timeout        time.Duration `env:"SCRAPER_TIMEOUT" envDefault:"10s"`
	ContentMode    string        `env:"SCRAPER_CONTENT_MODE" envDefault:"paragraphs"`
	MaxBodySize    int64         `env:"SCRAPER_MAX_BODY_SIZE" envDefault:"10485760"`
	DenyPrivateIPs bool          `env:"SCRAPER_DENY_PRIVATE_IPS" envDefault:"true"`
	UserAgent      string        `env:"SCRAPER_USER_AGENT" envDefault:"BrochureBot/1.0"`
	// ChromePath points at a specific Chrome/Chromium binary; empty uses the default lookup.
	ChromePath string `env:"SCRAPER_CHROME_PATH"`
}

// BrochureConfig controls the generation pipeline.
type BrochureConfig struct {
	LinkPolicy      string `env:"BROCHURE_LINK_POLICY" envDefault:"flag"`
	MaxContentChars int    `env:"BROCHURE_MAX_CONTENT_CHARS" envDefault:"20000"`
}

// HTTPConfig controls the API server.
type HTTPConfig struct {
	Addr           string        `env:"HTTP_ADDR" envDefault:":8000"`
	RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"180s"`
	RateLimitRPS   float64       `env:"HTTP_RATE_LIMIT_RPS" envDefault:"1"`
	RateLimitBurst int           `env:"HTTP_RATE_LIMIT_BURST" envDefault:"5"`
	MaxBodyBytes   int64         `env:"HTTP_MAX_BODY_BYTES" envDefault:"1048576"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads configuration from the process environment and validates it.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads configuration from the given map instead of the process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LLM.Model == "" {
		switch c.LLM.Provider {
		case ProviderAnthropic:
			c.LLM.Model = DefaultAnthropicModel
		default:
			c.LLM.Model = DefaultOpenAIModel
		}
	}
}

// Validate checks configuration correctness.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("%w: LLM_PROVIDER must be %q or %q, got %q",
			ErrInvalidConfig, ProviderOpenAI, ProviderAnthropic, c.LLM.Provider)
	}

	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("%w: LLM_MAX_TOKENS must be positive", ErrInvalidConfig)
	}

	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("%w: LLM_TIMEOUT must be positive", ErrInvalidConfig)
	}

	switch c.Scraper.Renderer {
	case RendererChrome, RendererHTTP:
	default:
		return fmt.Errorf("%w: SCRAPER_RENDERER must be %q or %q, got %q",
			ErrInvalidConfig, RendererChrome, RendererHTTP, c.Scraper.Renderer)
	}

	if c.Scraper.Timeout <= 0 {
		return fmt.Errorf("%w: SCRAPER_TIMEOUT must be positive", ErrInvalidConfig)
	}

	switch c.Scraper.ContentMode {
	case ContentModeParagraphs, ContentModeReadability:
	default:
		return fmt.Errorf("%w: SCRAPER_CONTENT_MODE must be %q or %q, got %q",
			ErrInvalidConfig, ContentModeParagraphs, ContentModeReadability, c.Scraper.ContentMode)
	}

	if c.Scraper.MaxBodySize <= 0 {
		return fmt.Errorf("%w: SCRAPER_MAX_BODY_SIZE must be positive", ErrInvalidConfig)
	}

	switch c.Brochure.LinkPolicy {
	case LinkPolicyAccept, LinkPolicyFlag, LinkPolicyReject:
	default:
		return fmt.Errorf("%w: BROCHURE_LINK_POLICY must be one of accept, flag, reject, got %q",
			ErrInvalidConfig, c.Brochure.LinkPolicy)
	}

	if c.Brochure.MaxContentChars < 0 {
		return fmt.Errorf("%w: BROCHURE_MAX_CONTENT_CHARS must not be negative", ErrInvalidConfig)
	}

	if c.HTTP.Addr == "" {
		return fmt.Errorf("%w: HTTP_ADDR cannot be empty", ErrInvalidConfig)
	}

	if c.HTTP.RequestTimeout <= 0 {
		return fmt.Errorf("%w: HTTP_REQUEST_TIMEOUT must be positive", ErrInvalidConfig)
	}

	if c.HTTP.RateLimitRPS <= 0 || c.HTTP.RateLimitBurst <= 0 {
		return fmt.Errorf("%w: HTTP_RATE_LIMIT_RPS and HTTP_RATE_LIMIT_BURST must be positive", ErrInvalidConfig)
	}

	return nil
}
