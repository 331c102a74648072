package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/aifinance/pkg/domain/events"
	"github.com/amirasaad/aifinance/pkg/eventbus"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisEventField = "event"

// RedisEventBus implements an event bus on Redis Streams. Each event type
// has its own stream and every process joins the same consumer group, so a
// delivery is handled once per group. Failed deliveries are copied to the
// stream's "-DLQ" companion and acknowledged.
type RedisEventBus struct {
	client   *redis.Client
	group    string
	consumer string
	topics   Topics
	block    time.Duration
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.RWMutex
	handlers map[events.EventType][]eventbus.HandlerFunc
}

// NewWithRedis creates a Redis Streams event bus on an existing client.
func NewWithRedis(client *redis.Client, group string, topics Topics, logger *slog.Logger) (*RedisEventBus, error) {
	if client == nil {
		return nil, fmt.Errorf("redis event bus: client is required")
	}
	if strings.TrimSpace(group) == "" {
		return nil, fmt.Errorf("redis event bus: consumer group is required")
	}
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis event bus: connection failed: %w", err)
	}
	if topics == nil {
		topics = Topics{}
	}
	host, _ := os.Hostname()
	ctx, cancel := context.WithCancel(context.Background())
	return &RedisEventBus{
		client:   client,
		group:    group,
		consumer: fmt.Sprintf("%s-%s", host, uuid.NewString()[:8]),
		topics:   topics,
		block:    5 * time.Second,
		logger:   logger.With("bus", "redis"),
		ctx:      ctx,
		cancel:   cancel,
		handlers: make(map[events.EventType][]eventbus.HandlerFunc),
	}, nil
}

// Emit appends the event to the stream of its type.
func (b *RedisEventBus) Emit(ctx context.Context, event events.Event) error {
	envBytes, err := encodeEnvelope(event)
	if err != nil {
		return fmt.Errorf("redis event bus: %w", err)
	}
	stream := b.topics.For(events.EventType(event.Type()))
	if err := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{redisEventField: string(envBytes)},
	}).Err(); err != nil {
		b.logger.Error("failed to emit event", "error", err, "event_type", event.Type())
		return fmt.Errorf("redis event bus: emit failed: %w", err)
	}
	b.logger.Debug("event emitted", "event_type", event.Type(), "stream", stream)
	return nil
}

// Register subscribes handler to eventType. The first handler of a type
// creates the consumer group and starts reading its stream.
func (b *RedisEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	first := len(b.handlers[eventType]) == 0
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.mu.Unlock()
	if !first {
		return
	}

	stream := b.topics.For(eventType)
	err := b.client.XGroupCreateMkStream(b.ctx, stream, b.group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		b.logger.Error("failed to create consumer group", "error", err, "stream", stream)
		return
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.consume(eventType, stream)
	}()
	b.logger.Info("handler registered", "event_type", eventType, "stream", stream, "consumer", b.consumer)
}

// Close stops the consumers. The client is owned by the caller.
func (b *RedisEventBus) Close() error {
	b.cancel()
	b.wg.Wait()
	return nil
}

func (b *RedisEventBus) consume(eventType events.EventType, stream string) {
	for {
		res, err := b.client.XReadGroup(b.ctx, &redis.XReadGroupArgs{
			Group:    b.group,
			Consumer: b.consumer,
			Streams:  []string{stream, ">"},
			Count:    10,
			Block:    b.block,
		}).Result()
		if b.ctx.Err() != nil {
			return
		}
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				b.logger.Error("error reading from stream", "error", err, "stream", stream)
				time.Sleep(time.Second)
			}
			continue
		}
		for _, s := range res {
			for _, msg := range s.Messages {
				b.handleMessage(eventType, stream, msg)
			}
		}
	}
}

func (b *RedisEventBus) handleMessage(eventType events.EventType, stream string, msg redis.XMessage) {
	ctx := b.ctx
	ok := true

	raw, isString := msg.Values[redisEventField].(string)
	if !isString {
		b.logger.Error("message has no event field", "stream", stream, "msg_id", msg.ID)
		ok = false
	} else if evt, err := decodeEnvelope([]byte(raw)); err != nil {
		b.logger.Error("failed to decode message", "error", err, "stream", stream, "msg_id", msg.ID)
		ok = false
	} else {
		b.mu.RLock()
		handlers := append([]eventbus.HandlerFunc{}, b.handlers[eventType]...)
		b.mu.RUnlock()
		ok = dispatch(ctx, b.logger, eventType, evt, handlers) == nil
	}

	if !ok {
		b.pushToDLQ(ctx, stream, msg.Values)
	}
	if err := b.client.XAck(ctx, stream, b.group, msg.ID).Err(); err != nil {
		b.logger.Error("failed to acknowledge message", "error", err, "msg_id", msg.ID)
	}
}

func (b *RedisEventBus) pushToDLQ(ctx context.Context, stream string, values map[string]any) {
	dlqStream := stream + "-DLQ"
	if err := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: dlqStream,
		Values: values,
	}).Err(); err != nil {
		b.logger.Error("failed to push to DLQ", "error", err, "stream", dlqStream)
		return
	}
	b.logger.Warn("event pushed to DLQ", "stream", dlqStream)
}

var _ eventbus.Bus = (*RedisEventBus)(nil)
