package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FraudAlertRead is the read model of a fraud alert.
type FraudAlertRead struct {
	ID            uuid.UUID       `json:"id"`
	TransactionID uuid.UUID       `json:"transactionId"`
	UserID        string          `json:"userId"`
	FraudScore    decimal.Decimal `json:"fraudScore"`
	Reason        string          `json:"reason"`
	Status        string          `json:"status"`
	DetectedAt    time.Time       `json:"detectedAt"`
	ResolvedAt    *time.Time      `json:"resolvedAt,omitempty"`
}

// FraudAlertCreate carries a new alert to the store.
type FraudAlertCreate struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	UserID        string
	FraudScore    decimal.Decimal
	Reason        string
	Status        string
	DetectedAt    time.Time
}

// AlertStatusUpdate is the request body for changing an alert's status.
type AlertStatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=PENDING UNDER_REVIEW CONFIRMED FALSE_POSITIVE"`
}
