package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"company-brochure/internal/resilience/circuitbreaker"
	"company-brochure/internal/secret"
)

// ClaudeClient implements Client using the Anthropic messages API.
type ClaudeClient struct {
	caller
	client anthropic.Client
}

// NewClaude builds an Anthropic client. The key is resolved from keys once;
// a missing or malformed key fails here, before any request is made.
func NewClaude(keys secret.KeyProvider, cfg Config, opts ...Option) (*ClaudeClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid claude configuration: %w", err)
	}

	apiKey, err := keys.APIKey()
	if err != nil {
		return nil, fmt.Errorf("resolve claude api key: %w", err)
	}

	o := buildOptions(circuitbreaker.ClaudeAPIConfig(), opts)

	// The SDK retries by default; each pipeline call is attempted once.
	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}
	if o.httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(o.httpClient))
	}

	o.logger.Info("initialized claude client",
		"model", cfg.Model,
		"api_key", secret.Mask(apiKey))

	return &ClaudeClient{
		caller: caller{provider: ProviderAnthropic, cfg: cfg, opts: o},
		client: anthropic.NewClient(reqOpts...),
	}, nil
}

// Complete sends the system instruction and one user message and returns
// the concatenated text blocks of the reply.
func (c *ClaudeClient) Complete(ctx context.Context, system, user string) (string, error) {
	return c.call(ctx, system, user, func(ctx context.Context) (completion, error) {
		message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     anthropic.Model(c.cfg.Model),
			MaxTokens: int64(c.cfg.MaxTokens),
			System:    []anthropic.TextBlockParam{{Text: system}},
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
			},
		})
		if err != nil {
			return completion{}, classify(ProviderAnthropic, claudeStatusCode(err), err)
		}

		var sb strings.Builder
		for _, block := range message.Content {
			if block.Type == "text" {
				sb.WriteString(block.Text)
			}
		}

		return completion{
			text:             sb.String(),
			promptTokens:     int(message.Usage.InputTokens),
			completionTokens: int(message.Usage.OutputTokens),
		}, nil
	})
}

// claudeStatusCode extracts the HTTP status from an SDK error, or 0.
func claudeStatusCode(err error) int {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
