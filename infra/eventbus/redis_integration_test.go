//go:build integration

package eventbus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirasaad/aifinance/pkg/domain/events"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisBus(tb testing.TB) *RedisEventBus {
	tb.Helper()
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7.2",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		tb.Skipf("redis container unavailable: %v", err)
	}
	tb.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(tb, err)
	client := redis.NewClient(&redis.Options{Addr: endpoint})
	tb.Cleanup(func() { _ = client.Close() })

	bus, err := NewWithRedis(client, "eventbus-test", Topics{}, discardLogger())
	require.NoError(tb, err)
	bus.block = 200 * time.Millisecond
	tb.Cleanup(func() { _ = bus.Close() })
	return bus
}

func TestRedisBus_HandlerReceivesEvents(t *testing.T) {
	bus := setupRedisBus(t)

	received := make(chan string, 3)
	bus.Register(events.EventTypeTransactionCreated, func(_ context.Context, e events.Event) error {
		received <- e.(*events.TransactionCreated).UserID
		return nil
	})
	for _, u := range []string{"a", "b", "c"} {
		require.NoError(t, bus.Emit(context.Background(), txCreated(u)))
	}

	var got []string
	for range 3 {
		select {
		case u := <-received:
			got = append(got, u)
		case <-time.After(5 * time.Second):
			t.Fatal("not all events were received")
		}
	}
	require.Equal(t, []string{"a", "b", "c"}, got)
}

func TestRedisBus_FailedDeliveryIsDeadLettered(t *testing.T) {
	bus := setupRedisBus(t)
	ctx := context.Background()

	bus.Register(events.EventTypeTransactionCreated, func(context.Context, events.Event) error {
		return errors.New("simulated failure")
	})
	require.NoError(t, bus.Emit(ctx, txCreated("u1")))

	dlq := bus.topics.For(events.EventTypeTransactionCreated) + "-DLQ"
	require.Eventually(t, func() bool {
		n, err := bus.client.XLen(ctx, dlq).Result()
		return err == nil && n == 1
	}, 5*time.Second, 100*time.Millisecond)

	pending, err := bus.client.XPending(ctx, bus.topics.For(events.EventTypeTransactionCreated), bus.group).Result()
	require.NoError(t, err)
	require.Zero(t, pending.Count)
}
