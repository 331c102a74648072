package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a persisted user transaction.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          string          `gorm:"type:varchar(64);not null;index:idx_transactions_user_date,priority:1"`
	Amount          decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	Category        string          `gorm:"type:varchar(64);not null;index"`
	Description     string          `gorm:"type:varchar(500)"`
	TransactionType string          `gorm:"type:varchar(16);not null"`
	TransactionDate time.Time       `gorm:"not null;index:idx_transactions_user_date,priority:2"`
	Merchant        string          `gorm:"type:varchar(128)"`
	Location        string          `gorm:"type:varchar(128)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
