package common

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/amirasaad/aifinance/pkg/cache"
	"github.com/amirasaad/aifinance/pkg/domain/events"
	"github.com/amirasaad/aifinance/pkg/eventbus"
)

// processedCache prefixes the keys of handled events.
const processedCache = "processed"

// KeyExtractor extracts an idempotency key from an event. An empty key
// disables deduplication for that event.
type KeyExtractor func(events.Event) string

// IdempotencyTracker records the keys of successfully handled events for a
// limited time. Backed by a shared cache (Redis) the record holds across
// every consumer of the group; backed by the memory cache it holds for this
// process. Concurrent deliveries of one key are collapsed into one run.
type IdempotencyTracker struct {
	store    cache.Cache
	ttl      time.Duration
	inflight singleflight.Group
}

// NewIdempotencyTracker records processed keys in store for ttl. A nil
// store only collapses concurrent deliveries.
func NewIdempotencyTracker(store cache.Cache, ttl time.Duration) *IdempotencyTracker {
	return &IdempotencyTracker{store: store, ttl: ttl}
}

// Seen reports whether key was recorded as processed.
func (t *IdempotencyTracker) Seen(ctx context.Context, key string) (bool, error) {
	if t.store == nil {
		return false, nil
	}
	var processed bool
	ok, err := t.store.Get(ctx, cache.Key(processedCache, key), &processed)
	return ok && processed, err
}

// MarkProcessed records key as processed.
func (t *IdempotencyTracker) MarkProcessed(ctx context.Context, key string) error {
	if t.store == nil {
		return nil
	}
	return t.store.Set(ctx, cache.Key(processedCache, key), true, t.ttl)
}

// Forget removes the record of key so its next delivery runs again.
func (t *IdempotencyTracker) Forget(ctx context.Context, key string) error {
	if t.store == nil {
		return nil
	}
	return t.store.Delete(ctx, cache.Key(processedCache, key))
}

// WithIdempotency wraps handler so that an event whose key was already
// handled is acknowledged without running handler again. A failed run
// leaves the key unrecorded so the redelivery is processed. Tracker errors
// never block delivery: the handler runs and the store-level constraints
// decide.
func WithIdempotency(
	handler eventbus.HandlerFunc,
	tracker *IdempotencyTracker,
	keyOf KeyExtractor,
	handlerName string,
	logger *slog.Logger,
) eventbus.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, e events.Event) error {
		key := keyOf(e)
		if key == "" {
			return handler(ctx, e)
		}
		log := logger.With("handler", handlerName, "event_type", e.Type(), "idempotency_key", key)

		_, err, shared := tracker.inflight.Do(key, func() (any, error) {
			seen, err := tracker.Seen(ctx, key)
			if err != nil {
				log.Warn("Idempotency lookup failed, handling event", "error", err)
			}
			if seen {
				log.Info("🔁 [SKIP] Event already processed")
				return nil, nil
			}
			if err := handler(ctx, e); err != nil {
				return nil, err
			}
			if err := tracker.MarkProcessed(ctx, key); err != nil {
				log.Warn("Could not record processed event", "error", err)
			}
			return nil, nil
		})
		if err != nil {
			log.Warn("Handler failed, key left unprocessed", "shared", shared, "error", err)
			return err
		}
		return nil
	}
}
