package transaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type classifies a transaction's effect on the user's finances.
type Type string

const (
	TypeIncome     Type = "INCOME"
	TypeExpense    Type = "EXPENSE"
	TypeInvestment Type = "INVESTMENT"
)

// Types lists every supported transaction type.
var Types = []Type{TypeIncome, TypeExpense, TypeInvestment}

func (t Type) String() string { return string(t) }

// Valid reports whether t is one of the supported types.
func (t Type) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeInvestment:
		return true
	}
	return false
}

// ParseType parses a transaction type case-insensitively.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown transaction type %q", domain.ErrValidation, s)
	}
	return t, nil
}

var (
	// ErrAmountMustBePositive is returned for zero or negative amounts.
	ErrAmountMustBePositive = fmt.Errorf("%w: amount must be greater than zero", domain.ErrValidation)
	// ErrDateInFuture is returned when the transaction date lies after now.
	ErrDateInFuture = fmt.Errorf("%w: transaction date cannot be in the future", domain.ErrValidation)
	// ErrUserRequired is returned when the owning user is missing.
	ErrUserRequired = fmt.Errorf("%w: user id is required", domain.ErrValidation)
)

// Transaction is a single financial movement owned by a user.
type Transaction struct {
	ID              uuid.UUID
	UserID          string
	Amount          decimal.Decimal
	Category        string
	Description     string
	Type            Type
	TransactionDate time.Time
	Merchant        string
	Location        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks the invariants every stored transaction must hold.
func Validate(userID string, amount decimal.Decimal, txType Type, date, now time.Time) error {
	if strings.TrimSpace(userID) == "" {
		return ErrUserRequired
	}
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	if !txType.Valid() {
		return fmt.Errorf("%w: unknown transaction type %q", domain.ErrValidation, txType)
	}
	if date.After(now) {
		return ErrDateInFuture
	}
	return nil
}

// New builds a validated transaction with a fresh identity.
func New(
	userID string,
	amount decimal.Decimal,
	txType Type,
	category, description, merchant, location string,
	date time.Time,
) (*Transaction, error) {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}
	if err := Validate(userID, amount, txType, date, now); err != nil {
		return nil, err
	}
	return &Transaction{
		ID:              uuid.New(),
		UserID:          userID,
		Amount:          amount,
		Category:        category,
		Description:     description,
		Type:            txType,
		TransactionDate: date,
		Merchant:        merchant,
		Location:        location,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
