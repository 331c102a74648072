package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	infraeventbus "github.com/amirasaad/aifinance/infra/eventbus"
	"github.com/amirasaad/aifinance/pkg/domain/events"
)

// RunSmokeTest publishes one event of each pipeline type through the Kafka
// event bus and waits until both come back to a registered handler.
func RunSmokeTest() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	brokers := strings.TrimSpace(os.Getenv("BROKERS"))
	if brokers == "" {
		brokers = "localhost:9092"
	}
	groupID := strings.TrimSpace(os.Getenv("GROUP_ID"))
	if groupID == "" {
		groupID = "ai-finance-tracker-smoketest"
	}

	cfg := infraeventbus.DefaultKafkaConfig()
	cfg.GroupID = groupID
	cfg.Partitions = 1
	cfg.Topics = infraeventbus.Topics{
		events.EventTypeTransactionCreated: "smoketest.transaction-created",
		events.EventTypeFraudDetected:      "smoketest.fraud-detected",
	}

	bus, err := infraeventbus.NewWithKafka(brokers, logger, cfg)
	if err != nil {
		logger.Error("connect failed", "error", err)
		return err
	}
	defer func() { _ = bus.Close() }()

	received := make(chan events.Event, 2)
	for _, t := range []events.EventType{events.EventTypeTransactionCreated, events.EventTypeFraudDetected} {
		bus.Register(t, func(_ context.Context, e events.Event) error {
			received <- e
			return nil
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	txID := uuid.New()
	sent := []events.Event{
		events.NewTransactionCreated(txID, "smoketest", decimal.NewFromInt(42)),
		events.NewFraudDetected(uuid.New(), txID, "smoketest", decimal.RequireFromString("0.9"), "smoke test", time.Now().UTC()),
	}
	for _, e := range sent {
		if err := bus.Emit(ctx, e); err != nil {
			logger.Error("emit failed", "type", e.Type(), "error", err)
			return err
		}
		logger.Info("produced", "type", e.Type(), "topic", cfg.Topics.For(events.EventType(e.Type())))
	}

	for range sent {
		select {
		case e := <-received:
			logger.Info("consumed", "type", e.Type())
		case <-ctx.Done():
			return fmt.Errorf("waiting for deliveries: %w", ctx.Err())
		}
	}

	logger.Info("kafka smoke test passed")
	return nil
}

// main runs the smoke test and exits non-zero on failure.
func main() {
	if err := RunSmokeTest(); err != nil {
		os.Exit(1)
	}
}
