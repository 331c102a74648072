//go:build integration

package eventbus

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirasaad/aifinance/pkg/domain/events"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	testcontainerskafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

func setupKafkaBus(tb testing.TB) *KafkaEventBus {
	tb.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	kafkaContainer, err := testcontainerskafka.Run(ctx, "confluentinc/confluent-local:7.5.0")
	if err != nil {
		tb.Skipf("kafka container unavailable: %v", err)
	}
	tb.Cleanup(func() { _ = kafkaContainer.Terminate(context.Background()) })

	brokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(tb, err)

	cfg := DefaultKafkaConfig()
	cfg.GroupID = "eventbus-test"
	cfg.Partitions = 1
	cfg.Topics = Topics{events.EventTypeTransactionCreated: "transaction-created"}
	bus, err := NewWithKafka(strings.Join(brokers, ","), discardLogger(), cfg)
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = bus.Close() })
	return bus
}

func TestKafkaBus_HandlerReceivesEvent(t *testing.T) {
	bus := setupKafkaBus(t)

	received := make(chan string, 1)
	bus.Register(events.EventTypeTransactionCreated, func(_ context.Context, e events.Event) error {
		received <- e.(*events.TransactionCreated).UserID
		return nil
	})
	require.NoError(t, bus.Emit(context.Background(), txCreated("u1")))

	select {
	case got := <-received:
		require.Equal(t, "u1", got)
	case <-time.After(20 * time.Second):
		t.Fatal("handler did not receive event in time")
	}
}

func TestKafkaBus_FailedDeliveryIsDeadLetteredAndRetried(t *testing.T) {
	bus := setupKafkaBus(t)

	var fail atomic.Bool
	fail.Store(true)
	received := make(chan string, 1)
	bus.Register(events.EventTypeTransactionCreated, func(_ context.Context, e events.Event) error {
		if fail.Load() {
			return errors.New("temporary failure")
		}
		received <- e.(*events.TransactionCreated).UserID
		return nil
	})
	require.NoError(t, bus.Emit(context.Background(), txCreated("u2")))

	dlq := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     bus.brokers,
		Topic:       dlqTopicFor("transaction-created"),
		StartOffset: kafka.FirstOffset,
		MaxWait:     500 * time.Millisecond,
	})
	defer func() { _ = dlq.Close() }()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	msg, err := dlq.ReadMessage(ctx)
	require.NoError(t, err)
	require.Equal(t, "u2", string(msg.Key))
	require.Equal(t, 1, attemptsOf(msg))
	require.Equal(t, "transaction-created", headerValue(msg.Headers, headerOriginTopic))

	fail.Store(false)
	bus.replay("transaction-created")

	select {
	case got := <-received:
		require.Equal(t, "u2", got)
	case <-time.After(20 * time.Second):
		t.Fatal("dead letter was not redelivered")
	}
}
