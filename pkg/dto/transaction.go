package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRead is a read-optimized DTO for transaction queries, API responses, and reporting.
type TransactionRead struct {
	ID              uuid.UUID       `json:"id"`
	UserID          string          `json:"userId"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	Description     string          `json:"description,omitempty"`
	TransactionType string          `json:"transactionType"`
	TransactionDate time.Time       `json:"transactionDate"`
	Merchant        string          `json:"merchant,omitempty"`
	Location        string          `json:"location,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// TransactionCreate is a DTO for persisting a new, already validated transaction.
type TransactionCreate struct {
	ID              uuid.UUID
	UserID          string
	Amount          decimal.Decimal
	Category        string
	Description     string
	TransactionType string
	TransactionDate time.Time
	Merchant        string
	Location        string
}

// TransactionUpdate is a DTO for updating one or more fields of a transaction.
type TransactionUpdate struct {
	Amount          *decimal.Decimal
	Category        *string
	Description     *string
	TransactionType *string
	TransactionDate *time.Time
	Merchant        *string
	Location        *string
}

// TransactionRequest is the user input for creating or replacing a transaction.
type TransactionRequest struct {
	UserID          string          `json:"userId" validate:"required"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category" validate:"required,max=64"`
	Description     string          `json:"description" validate:"max=500"`
	TransactionType string          `json:"transactionType" validate:"required,oneof=INCOME EXPENSE INVESTMENT income expense investment"`
	TransactionDate time.Time       `json:"transactionDate"`
	Merchant        string          `json:"merchant" validate:"max=128"`
	Location        string          `json:"location" validate:"max=128"`
}
