package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/aifinance/pkg/domain"
)

// Gateway dispatches prompts to the provider chosen per request.
type Gateway struct {
	completers    map[Provider]Completer
	defaultName   Provider
	fraudProvider Provider
	timeout       time.Duration
	logger        *slog.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithFraudProvider sets the provider used for fraud analysis.
func WithFraudProvider(p Provider) Option {
	return func(g *Gateway) { g.fraudProvider = p }
}

// WithTimeout bounds every provider call.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) { g.timeout = d }
}

// WithLogger sets the gateway logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gateway) { g.logger = l }
}

// NewGateway builds a gateway over the configured completers. The default
// provider must be one of them.
func NewGateway(
	completers map[Provider]Completer,
	defaultProvider Provider,
	opts ...Option,
) (*Gateway, error) {
	g := &Gateway{
		completers:    make(map[Provider]Completer, len(completers)),
		defaultName:   defaultProvider,
		fraudProvider: ProviderOllama,
		logger:        slog.Default(),
	}
	for p, c := range completers {
		if c != nil {
			g.completers[p] = c
		}
	}
	for _, opt := range opts {
		opt(g)
	}
	if _, ok := g.completers[g.defaultName]; !ok {
		return nil, fmt.Errorf("%w: default llm provider %q is not configured", domain.ErrValidation, defaultProvider)
	}
	if _, ok := g.completers[g.fraudProvider]; !ok {
		g.logger.Warn("Fraud llm provider not configured, falling back to default",
			"fraud_provider", g.fraudProvider, "default_provider", g.defaultName)
		g.fraudProvider = g.defaultName
	}
	return g, nil
}

// DefaultProvider returns the provider used when a request names none.
func (g *Gateway) DefaultProvider() Provider { return g.defaultName }

// Resolve maps an empty provider to the default and checks it is configured.
func (g *Gateway) Resolve(p Provider) (Provider, error) {
	if p == "" {
		p = g.defaultName
	}
	if !p.Valid() {
		return "", fmt.Errorf("%w: unknown llm provider %q", domain.ErrValidation, p)
	}
	if _, ok := g.completers[p]; !ok {
		return "", fmt.Errorf("%w: llm provider %q is not configured", domain.ErrValidation, p)
	}
	return p, nil
}

// GenerateAdvice answers query with the advisor persona. No retry happens here.
func (g *Gateway) GenerateAdvice(ctx context.Context, query, adviceContext string, provider Provider) (string, error) {
	p, err := g.Resolve(provider)
	if err != nil {
		return "", err
	}
	logger := g.logger.With("provider", p)
	logger.Info("Generating advice")

	out, err := g.complete(ctx, g.completers[p], advisorSystemPrompt, BuildAdvicePrompt(query, adviceContext))
	if err != nil {
		logger.Error("Failed to generate advice", "error", err)
		return "", fmt.Errorf("%w: failed to generate financial advice: %w", domain.ErrLLMProcessing, err)
	}
	logger.Debug("Generated advice successfully")
	return out, nil
}

// AnalyzeFraudPattern asks the fraud provider for a RISK_LEVEL|Explanation
// assessment of the transaction details. The raw model text is returned.
func (g *Gateway) AnalyzeFraudPattern(ctx context.Context, transactionDetails string) (string, error) {
	logger := g.logger.With("provider", g.fraudProvider)
	logger.Debug("Analyzing transaction for fraud patterns")

	out, err := g.complete(ctx, g.completers[g.fraudProvider], "", BuildFraudPrompt(transactionDetails))
	if err != nil {
		logger.Error("Failed to analyze fraud pattern", "error", err)
		return "", fmt.Errorf("%w: failed to analyze transaction for fraud: %w", domain.ErrLLMProcessing, err)
	}
	return out, nil
}

func (g *Gateway) complete(ctx context.Context, c Completer, system, user string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	out, err := c.Complete(ctx, system, user)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%s timed out: %w", c.Name(), err)
		}
		return "", err
	}
	return out, nil
}
