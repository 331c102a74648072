package eventbus

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/amirasaad/aifinance/pkg/domain/events"
	"github.com/amirasaad/aifinance/pkg/eventbus"
)

// dispatch runs every handler concurrently and returns the first negative
// acknowledgement. All handlers run to completion either way.
func dispatch(
	ctx context.Context,
	logger *slog.Logger,
	eventType events.EventType,
	event events.Event,
	handlers []eventbus.HandlerFunc,
) error {
	var g errgroup.Group
	for _, h := range handlers {
		g.Go(func() error { return runHandler(ctx, logger, eventType, event, h) })
	}
	return g.Wait()
}

// runHandler calls handler, turning a panic into a negative acknowledgement.
func runHandler(
	ctx context.Context,
	logger *slog.Logger,
	eventType events.EventType,
	event events.Event,
	handler eventbus.HandlerFunc,
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic recovered in event handler", "event_type", eventType, "panic", r)
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	if err = handler(ctx, event); err != nil {
		logger.Error("failed to process event", "event_type", eventType, "error", err)
	}
	return err
}
