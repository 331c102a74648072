package transaction

import (
	"context"
	"time"

	"github.com/amirasaad/aifinance/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TypeTotal is the summed amount of one transaction type.
type TypeTotal struct {
	TransactionType string
	Total           decimal.Decimal
}

// Repository defines the interface for transaction data
// access operations with support for CQRS (Command/Query Responsibility Segregation).
type Repository interface {
	// Create inserts a new transaction record from a DTO.
	Create(ctx context.Context, create dto.TransactionCreate) error

	// Update updates an existing transaction by its ID using a DTO.
	Update(ctx context.Context, id uuid.UUID, update dto.TransactionUpdate) error

	// Delete removes a transaction by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Get retrieves a transaction by its ID as a read-optimized DTO.
	Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error)

	// ListByUser lists a page of transactions for a user, newest first.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*dto.TransactionRead, error)

	// ListByUserBetween lists a user's transactions dated within [from, to].
	ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]*dto.TransactionRead, error)

	// ListRecentByUser lists a user's transactions dated at or after since, newest first.
	ListRecentByUser(ctx context.Context, userID string, since time.Time) ([]*dto.TransactionRead, error)

	// SumByType sums a user's amounts per transaction type within [from, to].
	SumByType(ctx context.Context, userID string, from, to time.Time) ([]TypeTotal, error)

	// CategoryStats aggregates a user's transactions per category since the
	// given time, largest total first.
	CategoryStats(ctx context.Context, userID string, since time.Time) ([]dto.CategoryTotal, error)
}
