package eventbus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/amirasaad/aifinance/pkg/domain/events"
	"github.com/amirasaad/aifinance/pkg/eventbus"
)

// KafkaConfig configures the Kafka event bus.
type KafkaConfig struct {
	GroupID           string
	Topics            Topics
	Partitions        int
	ReplicationFactor int
	DeadLetter        DeadLetterPolicy
	Security          KafkaSecurity
}

// DefaultKafkaConfig returns the settings used for unset fields.
func DefaultKafkaConfig() *KafkaConfig {
	return &KafkaConfig{
		GroupID:           "ai-finance-tracker",
		Topics:            Topics{},
		Partitions:        3,
		ReplicationFactor: 1,
		DeadLetter: DeadLetterPolicy{
			RetryInterval: 5 * time.Minute,
			BatchSize:     10,
			MaxAttempts:   5,
		},
	}
}

func (c *KafkaConfig) withDefaults() KafkaConfig {
	def := DefaultKafkaConfig()
	if c == nil {
		return *def
	}
	out := *c
	if out.GroupID == "" {
		out.GroupID = def.GroupID
	}
	if out.Topics == nil {
		out.Topics = Topics{}
	}
	if out.Partitions <= 0 {
		out.Partitions = 1
	}
	if out.ReplicationFactor <= 0 {
		out.ReplicationFactor = def.ReplicationFactor
	}
	if out.DeadLetter.RetryInterval <= 0 {
		out.DeadLetter.RetryInterval = def.DeadLetter.RetryInterval
	}
	if out.DeadLetter.BatchSize <= 0 {
		out.DeadLetter.BatchSize = def.DeadLetter.BatchSize
	}
	return out
}

// KafkaEventBus carries events over Kafka, one topic per event type.
// Messages are keyed by the event's partition key so one user's events keep
// their order. A delivery is committed once every handler acknowledged it or
// once it was parked on the topic's dead letter topic.
type KafkaEventBus struct {
	brokers []string
	cfg     KafkaConfig
	dialer  *kafka.Dialer
	writer  *kafka.Writer
	admin   *topicAdmin
	logger  *slog.Logger

	mu        sync.RWMutex
	handlers  map[events.EventType][]eventbus.HandlerFunc
	consumers map[events.EventType]*kafka.Reader

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewWithKafka connects to a comma separated broker list. It fails when no
// broker is reachable so callers can fall back to another transport.
func NewWithKafka(brokers string, logger *slog.Logger, config *KafkaConfig) (*KafkaEventBus, error) {
	addrs := splitBrokers(brokers)
	if len(addrs) == 0 {
		return nil, errors.New("kafka event bus: no brokers configured")
	}
	if logger == nil {
		logger = slog.Default()
	}
	cfg := config.withDefaults()

	dialer, transport, err := cfg.Security.connect()
	if err != nil {
		return nil, fmt.Errorf("kafka event bus: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelPing()
	if err := reachable(pingCtx, dialer, addrs); err != nil {
		return nil, fmt.Errorf("kafka event bus: %w", err)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(addrs...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
	if transport != nil {
		writer.Transport = transport
	}

	ctx, cancel := context.WithCancel(context.Background())
	b := &KafkaEventBus{
		brokers:   addrs,
		cfg:       cfg,
		dialer:    dialer,
		writer:    writer,
		admin:     newTopicAdmin(addrs, transport, cfg.Partitions, cfg.ReplicationFactor),
		logger:    logger.With("bus", "kafka"),
		handlers:  make(map[events.EventType][]eventbus.HandlerFunc),
		consumers: make(map[events.EventType]*kafka.Reader),
		ctx:       ctx,
		cancel:    cancel,
	}

	b.wg.Add(1)
	go b.replayLoop()

	b.logger.Info("🚀 Kafka event bus initialized",
		"brokers", addrs,
		"group_id", cfg.GroupID,
		"dlq_retry_interval", cfg.DeadLetter.RetryInterval,
		"dlq_max_attempts", cfg.DeadLetter.MaxAttempts,
		"tls", dialer.TLS != nil,
		"sasl", dialer.SASLMechanism != nil,
	)
	return b, nil
}

// Register subscribes handler to eventType. The first handler of a type
// starts the consumer of its topic.
func (b *KafkaEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	if _, running := b.consumers[eventType]; running {
		return
	}

	topic := b.cfg.Topics.For(eventType)
	if err := b.admin.ensure(b.ctx, topic); err != nil {
		b.logger.Error("cannot subscribe", "event_type", eventType, "topic", topic, "error", err)
		return
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     b.brokers,
		GroupID:     b.cfg.GroupID,
		Topic:       topic,
		StartOffset: kafka.FirstOffset,
		MaxBytes:    10e6,
		MaxWait:     time.Second,
		Dialer:      b.dialer,
	})
	b.consumers[eventType] = reader

	b.wg.Add(1)
	go b.consume(eventType, reader)
	b.logger.Info("handler registered", "event_type", eventType, "topic", topic)
}

// Emit publishes event to the topic of its type.
func (b *KafkaEventBus) Emit(ctx context.Context, event events.Event) error {
	payload, err := encodeEnvelope(event)
	if err != nil {
		return fmt.Errorf("kafka event bus: %w", err)
	}
	topic := b.cfg.Topics.For(events.EventType(event.Type()))
	if err := b.admin.ensure(ctx, topic); err != nil {
		return fmt.Errorf("kafka event bus: %w", err)
	}
	err = b.writer.WriteMessages(ctx, kafka.Message{
		Topic:   topic,
		Key:     []byte(events.KeyOf(event)),
		Value:   payload,
		Headers: []kafka.Header{{Key: headerEventType, Value: []byte(event.Type())}},
	})
	if err != nil {
		return fmt.Errorf("kafka event bus: publish %s: %w", event.Type(), err)
	}
	b.logger.Debug("event published", "event_type", event.Type(), "topic", topic)
	return nil
}

// Close stops consumers and the replay worker, then flushes the writer.
func (b *KafkaEventBus) Close() error {
	var err error
	b.closeOnce.Do(func() {
		b.cancel()
		b.mu.Lock()
		for _, r := range b.consumers {
			_ = r.Close()
		}
		b.mu.Unlock()
		b.wg.Wait()
		err = b.writer.Close()
	})
	return err
}

func (b *KafkaEventBus) consume(eventType events.EventType, reader *kafka.Reader) {
	defer b.wg.Done()
	for {
		msg, err := reader.FetchMessage(b.ctx)
		if err != nil {
			if b.ctx.Err() != nil || errors.Is(err, io.EOF) {
				return
			}
			b.logger.Error("fetch failed", "event_type", eventType, "error", err)
			if !pause(b.ctx, time.Second) {
				return
			}
			continue
		}

		// A message is only committed once it is settled; retry the
		// dead letter publish until it is or the bus closes.
		for {
			err := b.settle(eventType, msg)
			if err == nil {
				break
			}
			b.logger.Error("delivery not settled, retrying",
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "error", err)
			if !pause(b.ctx, time.Second) {
				return
			}
		}
		if err := reader.CommitMessages(b.ctx, msg); err != nil && b.ctx.Err() == nil {
			b.logger.Error("commit failed",
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "error", err)
		}
	}
}

// settle handles msg. A nil return means msg may be committed: it was
// acknowledged, dead lettered, or can never be handled.
func (b *KafkaEventBus) settle(subscribed events.EventType, msg kafka.Message) error {
	evt, err := decodeEnvelope(msg.Value)
	if err != nil {
		b.logger.Error("dropping undecodable message", "topic", msg.Topic, "offset", msg.Offset, "error", err)
		return nil
	}
	eventType := events.EventType(evt.Type())
	if eventType != subscribed {
		b.logger.Warn("event type does not match topic", "expected", subscribed, "actual", eventType, "topic", msg.Topic)
	}

	b.mu.RLock()
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[eventType]...)
	b.mu.RUnlock()
	if len(handlers) == 0 {
		b.logger.Warn("no handlers for event", "event_type", eventType, "topic", msg.Topic)
		return nil
	}

	cause := dispatch(b.ctx, b.logger, eventType, evt, handlers)
	if cause == nil {
		return nil
	}
	return b.publishDeadLetter(b.ctx, msg, cause)
}

func (b *KafkaEventBus) subscribedTopics() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.consumers))
	for t := range b.consumers {
		out = append(out, b.cfg.Topics.For(t))
	}
	return out
}

// pause sleeps for d and reports false when ctx ended first.
func pause(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

var _ eventbus.Bus = (*KafkaEventBus)(nil)
