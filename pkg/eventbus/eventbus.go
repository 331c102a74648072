package eventbus

import (
	"context"

	"github.com/amirasaad/aifinance/pkg/domain/events"
)

// HandlerFunc processes one delivered event. Returning nil acknowledges the
// delivery; returning an error negatively acknowledges it and leaves
// redelivery or dead-lettering to the transport.
type HandlerFunc func(ctx context.Context, e events.Event) error

// Bus publishes events and dispatches them to registered handlers.
type Bus interface {
	// Register subscribes handler to every event of the given type.
	Register(eventType events.EventType, handler HandlerFunc)
	// Emit publishes event to the channel of its type.
	Emit(ctx context.Context, event events.Event) error
}
