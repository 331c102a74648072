package eventbus

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Dead letter headers. Attempts counts failed deliveries, so a message
// that keeps failing after replay is eventually parked for good.
const (
	headerOriginTopic = "x-origin-topic"
	headerAttempts    = "x-attempts"
	headerLastError   = "x-last-error"
	headerEventType   = "x-event-type"
)

// DeadLetterPolicy controls how failed deliveries are replayed.
type DeadLetterPolicy struct {
	// RetryInterval is the pause between replay rounds.
	RetryInterval time.Duration
	// BatchSize caps the dead letters replayed per topic and round.
	BatchSize int
	// MaxAttempts parks a message once it failed this many times.
	// Zero replays forever.
	MaxAttempts int
}

func headerValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func withHeader(headers []kafka.Header, key, value string) []kafka.Header {
	out := make([]kafka.Header, 0, len(headers)+1)
	for _, h := range headers {
		if h.Key != key {
			out = append(out, h)
		}
	}
	return append(out, kafka.Header{Key: key, Value: []byte(value)})
}

func attemptsOf(msg kafka.Message) int {
	n, err := strconv.Atoi(headerValue(msg.Headers, headerAttempts))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// originOf returns the topic a dead letter must be replayed onto.
func originOf(msg kafka.Message) string {
	if origin := headerValue(msg.Headers, headerOriginTopic); origin != "" {
		return origin
	}
	return strings.TrimSuffix(msg.Topic, ".dlq")
}

// deadLetter derives the dead letter of a failed delivery.
func deadLetter(failed kafka.Message, cause error) kafka.Message {
	headers := withHeader(failed.Headers, headerOriginTopic, failed.Topic)
	headers = withHeader(headers, headerAttempts, strconv.Itoa(attemptsOf(failed)+1))
	if cause != nil {
		headers = withHeader(headers, headerLastError, cause.Error())
	}
	return kafka.Message{
		Topic:   dlqTopicFor(failed.Topic),
		Key:     failed.Key,
		Value:   failed.Value,
		Headers: headers,
		Time:    time.Now(),
	}
}

// replayable reports whether a dead letter may go back onto its topic.
func (p DeadLetterPolicy) replayable(msg kafka.Message) bool {
	return p.MaxAttempts <= 0 || attemptsOf(msg) < p.MaxAttempts
}

func (b *KafkaEventBus) publishDeadLetter(ctx context.Context, failed kafka.Message, cause error) error {
	msg := deadLetter(failed, cause)
	if err := b.admin.ensure(ctx, msg.Topic); err != nil {
		return err
	}
	if err := b.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}
	b.logger.Warn("☠️ [DLQ] delivery parked",
		"topic", failed.Topic, "offset", failed.Offset, "attempts", attemptsOf(msg), "error", cause)
	return nil
}

func (b *KafkaEventBus) replayLoop() {
	defer b.wg.Done()
	ticker := time.NewTicker(b.cfg.DeadLetter.RetryInterval)
	defer ticker.Stop()
	for {
		select {
		case <-b.ctx.Done():
			return
		case <-ticker.C:
			for _, topic := range b.subscribedTopics() {
				b.replay(topic)
			}
		}
	}
}

// replay moves up to one batch of topic's dead letters back onto topic.
// Letters over the attempt limit are acknowledged and stay in the DLQ.
func (b *KafkaEventBus) replay(topic string) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     b.brokers,
		GroupID:     b.cfg.GroupID + "-dlq-replay",
		Topic:       dlqTopicFor(topic),
		StartOffset: kafka.FirstOffset,
		MaxWait:     250 * time.Millisecond,
		Dialer:      b.dialer,
	})
	defer func() { _ = reader.Close() }()

	for range b.cfg.DeadLetter.BatchSize {
		fetchCtx, cancel := context.WithTimeout(b.ctx, time.Second)
		msg, err := reader.FetchMessage(fetchCtx)
		cancel()
		if err != nil {
			return
		}
		if b.cfg.DeadLetter.replayable(msg) {
			replayed := kafka.Message{
				Topic:   originOf(msg),
				Key:     msg.Key,
				Value:   msg.Value,
				Headers: msg.Headers,
				Time:    time.Now(),
			}
			if err := b.writer.WriteMessages(b.ctx, replayed); err != nil {
				b.logger.Error("dead letter replay failed", "topic", topic, "error", err)
				return
			}
			b.logger.Info("🔁 [DLQ] message replayed", "topic", topic, "offset", msg.Offset)
		} else {
			b.logger.Error("☠️ [DLQ] giving up on message",
				"topic", topic, "offset", msg.Offset, "attempts", attemptsOf(msg),
				"last_error", headerValue(msg.Headers, headerLastError))
		}
		if err := reader.CommitMessages(b.ctx, msg); err != nil {
			b.logger.Error("dead letter commit failed", "topic", topic, "error", err)
			return
		}
	}
}
