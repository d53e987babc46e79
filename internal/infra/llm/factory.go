package llm

import (
	"fmt"

	"company-brochure/internal/secret"
)

// New builds the client for provider, reading its key from the environment
// with the provider's prefix convention.
func New(provider string, cfg Config, opts ...Option) (Client, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAI(secret.NewOpenAIKeyProvider(), cfg, opts...)
	case ProviderAnthropic:
		return NewClaude(secret.NewClaudeKeyProvider(), cfg, opts...)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", provider)
	}
}
