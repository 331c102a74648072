package events

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	EventTypeTransactionCreated EventType = "Transaction.Created"
	EventTypeFraudDetected      EventType = "Fraud.Detected"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// Event is the contract every domain event satisfies.
type Event interface {
	Type() string
}

// Keyed events carry a partition key. Transports that support ordering per
// key (Kafka) use it; others ignore it.
type Keyed interface {
	Key() string
}

// KeyOf returns the partition key of e, falling back to its type.
func KeyOf(e Event) string {
	if k, ok := e.(Keyed); ok && k.Key() != "" {
		return k.Key()
	}
	return e.Type()
}
