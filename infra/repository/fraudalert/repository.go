package fraudalert

import (
	"context"
	"time"

	"github.com/amirasaad/aifinance/infra/repository/dberr"
	"github.com/amirasaad/aifinance/infra/repository/model"
	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/dto"
	repo "github.com/amirasaad/aifinance/pkg/repository/fraudalert"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates a fraud alert repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create dto.FraudAlertCreate) error {
	row := model.FraudAlert{
		ID:            create.ID,
		TransactionID: create.TransactionID,
		UserID:        create.UserID,
		FraudScore:    create.FraudScore,
		Reason:        create.Reason,
		Status:        create.Status,
		DetectedAt:    create.DetectedAt,
	}
	return dberr.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.FraudAlertRead, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

// GetForUpdate takes a row lock; it only holds inside a transaction.
func (r *repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.FraudAlertRead, error) {
	return r.first(r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id))
}

func (r *repository) GetByTransactionID(ctx context.Context, transactionID uuid.UUID) (*dto.FraudAlertRead, error) {
	return r.first(r.db.WithContext(ctx).Where("transaction_id = ?", transactionID))
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]*dto.FraudAlertRead, error) {
	return r.find(r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("detected_at DESC"))
}

func (r *repository) ListByUserAndStatus(ctx context.Context, userID, status string) ([]*dto.FraudAlertRead, error) {
	return r.find(r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, status).
		Order("detected_at DESC"))
}

func (r *repository) CountByUserAndStatus(ctx context.Context, userID, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.FraudAlert{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&n).Error
	return n, dberr.MapGormErrorToDomain(err)
}

// CompareAndSetStatus updates the status only while it still equals
// expected. Zero affected rows means the alert is gone or was changed by
// someone else.
func (r *repository) CompareAndSetStatus(
	ctx context.Context,
	id uuid.UUID,
	expected, next string,
	resolvedAt *time.Time,
) error {
	res := r.db.WithContext(ctx).
		Model(&model.FraudAlert{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(map[string]any{"status": next, "resolved_at": resolvedAt})
	if res.Error != nil {
		return dberr.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (r *repository) first(q *gorm.DB) (*dto.FraudAlertRead, error) {
	var row model.FraudAlert
	if err := q.First(&row).Error; err != nil {
		return nil, dberr.MapGormErrorToDomain(err)
	}
	return toRead(&row), nil
}

func (r *repository) find(q *gorm.DB) ([]*dto.FraudAlertRead, error) {
	var rows []model.FraudAlert
	if err := q.Find(&rows).Error; err != nil {
		return nil, dberr.MapGormErrorToDomain(err)
	}
	out := make([]*dto.FraudAlertRead, 0, len(rows))
	for i := range rows {
		out = append(out, toRead(&rows[i]))
	}
	return out, nil
}

func toRead(m *model.FraudAlert) *dto.FraudAlertRead {
	return &dto.FraudAlertRead{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		FraudScore:    m.FraudScore,
		Reason:        m.Reason,
		Status:        m.Status,
		DetectedAt:    m.DetectedAt,
		ResolvedAt:    m.ResolvedAt,
	}
}
