package common

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infracache "github.com/amirasaad/aifinance/infra/cache"
	"github.com/amirasaad/aifinance/pkg/domain/events"
)

func transactionKey(e events.Event) string {
	if tce, ok := e.(*events.TransactionCreated); ok {
		return tce.TransactionID.String()
	}
	return ""
}

func newCreated(txID uuid.UUID) *events.TransactionCreated {
	return events.NewTransactionCreated(txID, "user-1", decimal.NewFromInt(42))
}

func newTracker(t *testing.T) *IdempotencyTracker {
	t.Helper()
	store := infracache.NewMemoryCache(100, time.Minute)
	t.Cleanup(store.Close)
	return NewIdempotencyTracker(store, time.Hour)
}

// brokenCache fails every call.
type brokenCache struct{}

func (brokenCache) Get(context.Context, string, any) (bool, error) {
	return false, errors.New("cache down")
}

func (brokenCache) Set(context.Context, string, any, time.Duration) error {
	return errors.New("cache down")
}

func (brokenCache) Delete(context.Context, ...string) error { return errors.New("cache down") }

func TestIdempotencyTracker(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tracker := newTracker(t)

	seen, err := tracker.Seen(ctx, "k")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, tracker.MarkProcessed(ctx, "k"))
	seen, err = tracker.Seen(ctx, "k")
	require.NoError(t, err)
	assert.True(t, seen)

	require.NoError(t, tracker.Forget(ctx, "k"))
	seen, err = tracker.Seen(ctx, "k")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestIdempotencyTracker_Expires(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := infracache.NewMemoryCache(100, time.Minute)
	t.Cleanup(store.Close)
	tracker := NewIdempotencyTracker(store, 20*time.Millisecond)

	require.NoError(t, tracker.MarkProcessed(ctx, "k"))
	assert.Eventually(t, func() bool {
		seen, _ := tracker.Seen(ctx, "k")
		return !seen
	}, time.Second, 10*time.Millisecond)
}

func TestWithIdempotency(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("runs handler when no key can be extracted", func(t *testing.T) {
		t.Parallel()
		var calls int
		handler := func(ctx context.Context, e events.Event) error {
			calls++
			return nil
		}
		wrapped := WithIdempotency(handler, newTracker(t), transactionKey, "test", logger)

		other := events.NewFraudDetected(uuid.New(), uuid.New(), "user-1", decimal.RequireFromString("0.9"), "r", time.Now())
		require.NoError(t, wrapped(ctx, other))
		require.NoError(t, wrapped(ctx, other))
		assert.Equal(t, 2, calls)
	})

	t.Run("redelivery of the same transaction is acknowledged without running twice", func(t *testing.T) {
		t.Parallel()
		tracker := newTracker(t)
		var calls int
		handler := func(ctx context.Context, e events.Event) error {
			calls++
			return nil
		}
		wrapped := WithIdempotency(handler, tracker, transactionKey, "test", logger)

		txID := uuid.New()
		require.NoError(t, wrapped(ctx, newCreated(txID)))
		// A redelivered event carries a new event id but the same transaction.
		require.NoError(t, wrapped(ctx, newCreated(txID)))
		assert.Equal(t, 1, calls)
		seen, err := tracker.Seen(ctx, txID.String())
		require.NoError(t, err)
		assert.True(t, seen)
	})

	t.Run("failed key is retried on redelivery", func(t *testing.T) {
		t.Parallel()
		tracker := newTracker(t)
		handlerErr := errors.New("llm down")
		var calls int
		handler := func(ctx context.Context, e events.Event) error {
			calls++
			if calls == 1 {
				return handlerErr
			}
			return nil
		}
		wrapped := WithIdempotency(handler, tracker, transactionKey, "test", logger)

		txID := uuid.New()
		require.ErrorIs(t, wrapped(ctx, newCreated(txID)), handlerErr)
		seen, _ := tracker.Seen(ctx, txID.String())
		assert.False(t, seen)

		require.NoError(t, wrapped(ctx, newCreated(txID)))
		assert.Equal(t, 2, calls)
		seen, _ = tracker.Seen(ctx, txID.String())
		assert.True(t, seen)
	})

	t.Run("concurrent deliveries run the handler once", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		handler := func(ctx context.Context, e events.Event) error {
			calls.Add(1)
			time.Sleep(10 * time.Millisecond)
			return nil
		}
		wrapped := WithIdempotency(handler, newTracker(t), transactionKey, "test", logger)

		txID := uuid.New()
		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, wrapped(ctx, newCreated(txID)))
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("cache failure still handles the event", func(t *testing.T) {
		t.Parallel()
		var calls int
		handler := func(ctx context.Context, e events.Event) error {
			calls++
			return nil
		}
		wrapped := WithIdempotency(handler, NewIdempotencyTracker(brokenCache{}, time.Hour), transactionKey, "test", logger)
		require.NoError(t, wrapped(ctx, newCreated(uuid.New())))
		assert.Equal(t, 1, calls)
	})

	t.Run("nil store and nil logger", func(t *testing.T) {
		t.Parallel()
		var calls int
		handler := func(ctx context.Context, e events.Event) error {
			calls++
			return nil
		}
		wrapped := WithIdempotency(handler, NewIdempotencyTracker(nil, 0), transactionKey, "test", nil)
		txID := uuid.New()
		require.NoError(t, wrapped(ctx, newCreated(txID)))
		require.NoError(t, wrapped(ctx, newCreated(txID)))
		assert.Equal(t, 2, calls)
	})
}
