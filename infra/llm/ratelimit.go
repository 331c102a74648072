package llm

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	llmport "github.com/amirasaad/aifinance/pkg/llm"
)

// RateLimited throttles calls to a completer so a shared API quota is not
// exhausted by bursts of fraud checks.
type RateLimited struct {
	next    llmport.Completer
	limiter *rate.Limiter
}

// NewRateLimited allows perMinute calls per minute with a burst of one.
// A non-positive perMinute returns next unchanged.
func NewRateLimited(next llmport.Completer, perMinute int) llmport.Completer {
	if perMinute <= 0 {
		return next
	}
	return &RateLimited{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
	}
}

func (r *RateLimited) Name() string { return r.next.Name() }

func (r *RateLimited) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}
	return r.next.Complete(ctx, systemPrompt, userPrompt)
}
