package eventbus

import (
	"strings"

	"github.com/amirasaad/aifinance/pkg/domain/events"
)

// Topics maps event types to the topic (Kafka) or stream (Redis) they
// travel on.
type Topics map[events.EventType]string

// For returns the topic of eventType. Unmapped types get a name derived
// from the type, for example "Fraud.Detected" becomes "fraud-detected".
func (t Topics) For(eventType events.EventType) string {
	if name := strings.TrimSpace(t[eventType]); name != "" {
		return name
	}
	return strings.ToLower(strings.ReplaceAll(eventType.String(), ".", "-"))
}

func dlqTopicFor(topic string) string { return topic + ".dlq" }
