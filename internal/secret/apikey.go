// Package secret resolves and validates LLM provider API keys.
//
// Keys are read once, when an AI client is constructed. A missing key or a
// key without the provider's prefix is a fatal configuration error that is
// reported before any network activity takes place.
package secret

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for key resolution.
var (
	// ErrKeyMissing indicates that the key variable is unset or empty.
	ErrKeyMissing = errors.New("api key not set")

	// ErrKeyMalformed indicates that the key does not carry the expected provider prefix.
	ErrKeyMalformed = errors.New("api key has unexpected format")
)

// Well-known provider key conventions.
const (
	OpenAIKeyEnv     = "OPENAI_API_KEY"
	OpenAIKeyPrefix  = "sk-proj-"
	ClaudeKeyEnv     = "ANTHROPIC_API_KEY"
	ClaudeKeyPrefix  = "sk-ant-"
	maskVisibleChars = 4
)

// KeyProvider supplies a validated API key.
type KeyProvider interface {
	APIKey() (string, error)
}

// LookupFunc reads a variable; it mirrors os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// EnvKeyProvider reads a key from an environment variable and checks its prefix.
type EnvKeyProvider struct {
	Variable string
	Prefix   string
	Lookup   LookupFunc
}

// NewOpenAIKeyProvider returns a provider for OPENAI_API_KEY keys prefixed "sk-proj-".
func NewOpenAIKeyProvider() *EnvKeyProvider {
	return &EnvKeyProvider{Variable: OpenAIKeyEnv, Prefix: OpenAIKeyPrefix, Lookup: os.LookupEnv}
}

// NewClaudeKeyProvider returns a provider for ANTHROPIC_API_KEY keys prefixed "sk-ant-".
func NewClaudeKeyProvider() *EnvKeyProvider {
	return &EnvKeyProvider{Variable: ClaudeKeyEnv, Prefix: ClaudeKeyPrefix, Lookup: os.LookupEnv}
}

// APIKey returns the key, or ErrKeyMissing / ErrKeyMalformed.
// The key value itself never appears in returned errors.
func (p *EnvKeyProvider) APIKey() (string, error) {
	lookup := p.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	key, ok := lookup(p.Variable)
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", fmt.Errorf("%w: %s", ErrKeyMissing, p.Variable)
	}

	if p.Prefix != "" && !strings.HasPrefix(key, p.Prefix) {
		return "", fmt.Errorf("%w: %s must start with %q", ErrKeyMalformed, p.Variable, p.Prefix)
	}

	return key, nil
}

// StaticKeyProvider returns a fixed key after the same prefix check.
type StaticKeyProvider struct {
	Key    string
	Prefix string
}

// APIKey implements KeyProvider.
func (p StaticKeyProvider) APIKey() (string, error) {
	if p.Key == "" {
		return "", ErrKeyMissing
	}
	if p.Prefix != "" && !strings.HasPrefix(p.Key, p.Prefix) {
		return "", fmt.Errorf("%w: must start with %q", ErrKeyMalformed, p.Prefix)
	}
	return p.Key, nil
}

// Mask returns a log-safe rendering of key that keeps only its last few characters.
func Mask(key string) string {
	if len(key) <= maskVisibleChars {
		return strings.Repeat("*", len(key))
	}
	return "****" + key[len(key)-maskVisibleChars:]
}
