package fraudalert

import (
	"context"
	"time"

	"github.com/amirasaad/aifinance/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for fraud alerts. Alerts are never deleted.
type Repository interface {
	// Create inserts a new alert. A second alert for the same transaction
	// fails with domain.ErrAlreadyExists.
	Create(ctx context.Context, create dto.FraudAlertCreate) error

	// Get retrieves an alert by its ID.
	Get(ctx context.Context, id uuid.UUID) (*dto.FraudAlertRead, error)

	// GetForUpdate retrieves an alert and locks its row until the surrounding
	// unit of work ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.FraudAlertRead, error)

	// GetByTransactionID retrieves the alert raised for a transaction.
	GetByTransactionID(ctx context.Context, transactionID uuid.UUID) (*dto.FraudAlertRead, error)

	// ListByUser lists a user's alerts, newest first.
	ListByUser(ctx context.Context, userID string) ([]*dto.FraudAlertRead, error)

	// ListByUserAndStatus lists a user's alerts in one status.
	ListByUserAndStatus(ctx context.Context, userID, status string) ([]*dto.FraudAlertRead, error)

	// CountByUserAndStatus counts a user's alerts in one status.
	CountByUserAndStatus(ctx context.Context, userID, status string) (int64, error)

	// CompareAndSetStatus moves an alert from expected to next only if it is
	// still in expected. It fails with domain.ErrConflict when another writer
	// changed the status first.
	CompareAndSetStatus(
		ctx context.Context,
		id uuid.UUID,
		expected, next string,
		resolvedAt *time.Time,
	) error
}
