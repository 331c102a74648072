package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is a key-value store with per-entry TTL. Values are JSON encoded by
// remote implementations, so dest must be a pointer to a JSON-decodable value.
type Cache interface {
	// Get loads the value stored under key into dest. It reports false on a miss.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set stores value under key for ttl. A zero ttl uses the cache default.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}

// Cache names, matching the key prefixes used by the services.
const (
	Transactions = "transactions"
	UserStats    = "userStats"
	FraudAlerts  = "fraudAlerts"
	Embeddings   = "embeddings"
)

// Key joins a cache name and its key parts.
func Key(name string, parts ...any) string {
	k := name
	for _, p := range parts {
		k += ":" + fmt.Sprint(p)
	}
	return k
}

// GetOrLoad returns the cached value for key, or calls load, stores its
// result and returns it. Cache errors never fail the call; they only cost a
// reload.
func GetOrLoad[T any](
	ctx context.Context,
	c Cache,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (T, error),
) (T, error) {
	var cached T
	if c != nil {
		if ok, err := c.Get(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}
	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	if c != nil {
		_ = c.Set(ctx, key, v, ttl)
	}
	return v, nil
}
