package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/amirasaad/aifinance/pkg/cache"
	"github.com/amirasaad/aifinance/pkg/embedding"
)

// Cached memoizes embeddings by model and content hash. Vectors of
// different models never share keys, even at the same width.
type Cached struct {
	next   embedding.Client
	model  string
	cache  cache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCached wraps next with a cache. model names the provider and model
// behind next, for example "openai/text-embedding-3-small".
func NewCached(next embedding.Client, model string, c cache.Cache, ttl time.Duration, logger *slog.Logger) *Cached {
	return &Cached{next: next, model: model, cache: c, ttl: ttl, logger: logger}
}

func (c *Cached) Dimensions() int { return c.next.Dimensions() }

// Embed returns the cached vector for text or fetches it from next.
func (c *Cached) Embed(ctx context.Context, text string) ([]float32, error) {
	key := cacheKey(c.model, c.next.Dimensions(), text)

	var vec []float32
	if ok, err := c.cache.Get(ctx, key, &vec); err == nil && ok && len(vec) == c.next.Dimensions() {
		c.logger.Debug("Cache hit for Embed", "key", key)
		return vec, nil
	} else if err != nil {
		c.logger.Error("Error getting from cache", "key", key, "error", err)
	}

	c.logger.Debug("Cache miss for Embed, fetching from next client", "key", key)
	vec, err := c.next.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(ctx, key, vec, c.ttl); err != nil {
		c.logger.Error("Error setting cache for Embed", "key", key, "error", err)
	}
	return vec, nil
}

func cacheKey(model string, dims int, text string) string {
	sum := sha256.Sum256([]byte(text))
	return cache.Key(cache.Embeddings, model, dims, hex.EncodeToString(sum[:]))
}
