package llm

import (
	"fmt"
	"time"
)

// Config holds the settings shared by all providers.
type Config struct {
	// Model is the fixed model identifier used for every call.
	Model string

	// MaxTokens caps the completion length.
	MaxTokens int

	// Timeout bounds a single completion call.
	Timeout time.Duration

	// BaseURL overrides the provider endpoint. Empty uses the provider default.
	BaseURL string
}

// Validate checks the configuration and returns an error if invalid.
func (c Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}
