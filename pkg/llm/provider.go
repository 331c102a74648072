// Package llm selects among the configured chat model providers and owns the
// prompts used for financial advice and fraud analysis.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirasaad/aifinance/pkg/domain"
)

// Provider names a chat model backend.
type Provider string

const (
	ProviderOllama Provider = "OLLAMA"
	ProviderOpenAI Provider = "OPENAI"
	ProviderGemini Provider = "GEMINI"
)

func (p Provider) String() string { return string(p) }

// Valid reports whether p is one of the known providers.
func (p Provider) Valid() bool {
	switch p {
	case ProviderOllama, ProviderOpenAI, ProviderGemini:
		return true
	}
	return false
}

// ParseProvider parses a provider name case-insensitively. A blank name
// parses to the empty Provider, which the gateway resolves to its default.
func ParseProvider(s string) (Provider, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	p := Provider(strings.ToUpper(s))
	if !p.Valid() {
		return "", fmt.Errorf("%w: unknown llm provider %q", domain.ErrValidation, s)
	}
	return p, nil
}

// Completer runs a single prompt round trip against one backend.
// systemPrompt may be empty.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Name() string
}
