package events

// EventTypes maps every event type to a constructor used when decoding
// envelopes received from a transport.
var EventTypes = map[EventType]func() Event{
	EventTypeTransactionCreated: func() Event { return &TransactionCreated{} },
	EventTypeFraudDetected:      func() Event { return &FraudDetected{} },
}
