package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"company-brochure/internal/resilience/circuitbreaker"
	"company-brochure/internal/secret"
)

// OpenAIClient implements Client using the OpenAI chat completions API.
type OpenAIClient struct {
	caller
	client *openai.Client
}

// NewOpenAI builds an OpenAI client. The key is resolved from keys once;
// a missing or malformed key fails here, before any request is made.
func NewOpenAI(keys secret.KeyProvider, cfg Config, opts ...Option) (*OpenAIClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid openai configuration: %w", err)
	}

	apiKey, err := keys.APIKey()
	if err != nil {
		return nil, fmt.Errorf("resolve openai api key: %w", err)
	}

	o := buildOptions(circuitbreaker.OpenAIAPIConfig(), opts)

	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if o.httpClient != nil {
		clientCfg.HTTPClient = o.httpClient
	}

	o.logger.Info("initialized openai client",
		"model", cfg.Model,
		"api_key", secret.Mask(apiKey))

	return &OpenAIClient{
		caller: caller{provider: ProviderOpenAI, cfg: cfg, opts: o},
		client: openai.NewClientWithConfig(clientCfg),
	}, nil
}

// Complete sends one system and one user message and returns the first choice.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	return c.call(ctx, system, user, func(ctx context.Context) (completion, error) {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:     c.cfg.Model,
			MaxTokens: c.cfg.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: system},
				{Role: openai.ChatMessageRoleUser, Content: user},
			},
		})
		if err != nil {
			return completion{}, classify(ProviderOpenAI, openAIStatusCode(err), err)
		}

		if len(resp.Choices) == 0 {
			return completion{}, nil
		}

		return completion{
			text:             resp.Choices[0].Message.Content,
			promptTokens:     resp.Usage.PromptTokens,
			completionTokens: resp.Usage.CompletionTokens,
		}, nil
	})
}

// openAIStatusCode extracts the HTTP status from a go-openai error, or 0.
func openAIStatusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
