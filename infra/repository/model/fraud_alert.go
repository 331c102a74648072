package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FraudAlert is a persisted fraud alert. The unique transaction index makes
// alert creation idempotent per transaction.
type FraudAlert struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	UserID        string          `gorm:"type:varchar(64);not null;index:idx_fraud_alerts_user_status,priority:1"`
	FraudScore    decimal.Decimal `gorm:"type:numeric(3,2);not null"`
	Reason        string          `gorm:"type:text"`
	Status        string          `gorm:"type:varchar(32);not null;index:idx_fraud_alerts_user_status,priority:2"`
	DetectedAt    time.Time       `gorm:"not null"`
	ResolvedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (FraudAlert) TableName() string {
	return "fraud_alerts"
}
