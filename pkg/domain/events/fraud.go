package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FraudDetected is the projection of a fraud alert at creation time,
// published once per alert.
type FraudDetected struct {
	ID            uuid.UUID       `json:"id"`
	AlertID       uuid.UUID       `json:"alertId"`
	TransactionID uuid.UUID       `json:"transactionId"`
	UserID        string          `json:"userId"`
	FraudScore    decimal.Decimal `json:"fraudScore"`
	Reason        string          `json:"reason"`
	DetectedAt    time.Time       `json:"detectedAt"`
}

func (e *FraudDetected) Type() string { return EventTypeFraudDetected.String() }

// Key partitions fraud events by user.
func (e *FraudDetected) Key() string { return e.UserID }

// NewFraudDetected creates a FraudDetected event for an alert.
func NewFraudDetected(
	alertID, transactionID uuid.UUID,
	userID string,
	score decimal.Decimal,
	reason string,
	detectedAt time.Time,
) *FraudDetected {
	return &FraudDetected{
		ID:            uuid.New(),
		AlertID:       alertID,
		TransactionID: transactionID,
		UserID:        userID,
		FraudScore:    score,
		Reason:        reason,
		DetectedAt:    detectedAt,
	}
}
