package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/aifinance/pkg/domain/events"
	"github.com/amirasaad/aifinance/pkg/eventbus"
)

// MemoryEventBus dispatches events synchronously to the handlers registered
// in this process. Handler errors are logged; the publisher never sees them.
type MemoryEventBus struct {
	handlers  map[events.EventType][]eventbus.HandlerFunc
	mu        sync.RWMutex
	logger    *slog.Logger
	published []events.Event
}

// NewWithMemory creates a synchronous in-memory event bus.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	return &MemoryEventBus{
		handlers:  make(map[events.EventType][]eventbus.HandlerFunc),
		logger:    logger.With("bus", "memory"),
		published: make([]events.Event, 0),
	}
}

// Register subscribes handler to eventType.
func (b *MemoryEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit dispatches the event to all registered handlers for its type.
func (b *MemoryEventBus) Emit(ctx context.Context, event events.Event) error {
	eventType := events.EventType(event.Type())

	b.mu.Lock()
	b.published = append(b.published, event)
	handlers := append([]eventbus.HandlerFunc{}, b.handlers[eventType]...)
	b.mu.Unlock()

	for _, handler := range handlers {
		_ = runHandler(ctx, b.logger, eventType, event, handler)
	}
	return nil
}

// ClearPublished forgets every recorded event.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = make([]events.Event, 0)
}

// Published returns a copy of the events emitted so far.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]events.Event{}, b.published...)
}

var _ eventbus.Bus = (*MemoryEventBus)(nil)

type delivery struct {
	ctx   context.Context
	event events.Event
}

// MemoryAsyncEventBus queues events and dispatches them on a worker
// goroutine, so Emit returns before handlers run.
type MemoryAsyncEventBus struct {
	handlers map[events.EventType][]eventbus.HandlerFunc
	mu       sync.RWMutex
	eventCh  chan delivery
	wg       sync.WaitGroup
	once     sync.Once
	log      *slog.Logger
}

// NewWithMemoryAsync creates an asynchronous in-memory event bus with a
// queue of the given capacity.
func NewWithMemoryAsync(logger *slog.Logger, capacity int) *MemoryAsyncEventBus {
	if capacity <= 0 {
		capacity = 100
	}
	b := &MemoryAsyncEventBus{
		handlers: make(map[events.EventType][]eventbus.HandlerFunc),
		eventCh:  make(chan delivery, capacity),
		log:      logger.With("bus", "memory-async"),
	}
	b.wg.Add(1)
	go b.process()
	return b
}

func (b *MemoryAsyncEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.mu.Unlock()
}

// Emit queues the event. It blocks while the queue is full.
func (b *MemoryAsyncEventBus) Emit(ctx context.Context, event events.Event) error {
	select {
	case b.eventCh <- delivery{ctx: context.WithoutCancel(ctx), event: event}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting events and waits for queued ones to be handled.
func (b *MemoryAsyncEventBus) Close() error {
	b.once.Do(func() { close(b.eventCh) })
	b.wg.Wait()
	return nil
}

func (b *MemoryAsyncEventBus) process() {
	defer b.wg.Done()
	for d := range b.eventCh {
		eventType := events.EventType(d.event.Type())
		b.mu.RLock()
		handlers := append([]eventbus.HandlerFunc{}, b.handlers[eventType]...)
		b.mu.RUnlock()
		for _, handler := range handlers {
			_ = runHandler(d.ctx, b.log, eventType, d.event, handler)
		}
	}
}

var _ eventbus.Bus = (*MemoryAsyncEventBus)(nil)
