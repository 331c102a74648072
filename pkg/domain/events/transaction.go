package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCreated is emitted once per successfully stored transaction.
// It is a snapshot: consumers reload the transaction by id.
type TransactionCreated struct {
	ID              uuid.UUID       `json:"id"`
	TransactionID   uuid.UUID       `json:"transactionId"`
	UserID          string          `json:"userId"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	TransactionType string          `json:"transactionType"`
	TransactionDate time.Time       `json:"transactionDate"`
	Merchant        string          `json:"merchant"`
	Location        string          `json:"location"`
	EventTime       time.Time       `json:"eventTime"`
}

func (e *TransactionCreated) Type() string { return EventTypeTransactionCreated.String() }

// Key partitions transaction events by user.
func (e *TransactionCreated) Key() string { return e.UserID }

// TransactionCreatedOpt configures a TransactionCreated.
type TransactionCreatedOpt func(*TransactionCreated)

// WithTransactionDetails sets the descriptive fields of the snapshot.
func WithTransactionDetails(category, txType, merchant, location string) TransactionCreatedOpt {
	return func(e *TransactionCreated) {
		e.Category = category
		e.TransactionType = txType
		e.Merchant = merchant
		e.Location = location
	}
}

// WithTransactionDate sets the business date of the transaction.
func WithTransactionDate(t time.Time) TransactionCreatedOpt {
	return func(e *TransactionCreated) { e.TransactionDate = t }
}

// NewTransactionCreated creates a TransactionCreated with the given options.
func NewTransactionCreated(
	transactionID uuid.UUID,
	userID string,
	amount decimal.Decimal,
	opts ...TransactionCreatedOpt,
) *TransactionCreated {
	e := &TransactionCreated{
		ID:            uuid.New(),
		TransactionID: transactionID,
		UserID:        userID,
		Amount:        amount,
		EventTime:     time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
