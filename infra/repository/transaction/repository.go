package transaction

import (
	"context"
	"time"

	"github.com/amirasaad/aifinance/infra/repository/dberr"
	"github.com/amirasaad/aifinance/infra/repository/model"
	"github.com/amirasaad/aifinance/pkg/dto"
	repo "github.com/amirasaad/aifinance/pkg/repository/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a transaction repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements transaction.Repository.
func (r *repository) Create(
	ctx context.Context,
	create dto.TransactionCreate,
) error {
	tx := mapCreateDTOToModel(create)
	return dberr.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&tx).Error
	})
}

// Update implements transaction.Repository.
func (r *repository) Update(
	ctx context.Context,
	id uuid.UUID,
	update dto.TransactionUpdate,
) error {
	updates := mapUpdateDTOToModel(update)
	if len(updates) == 0 {
		return nil
	}
	return dberr.RequireAffected(r.db.WithContext(
		ctx,
	).Model(
		&model.Transaction{},
	).Where(
		"id = ?",
		id,
	).Updates(
		updates,
	))
}

// Delete implements transaction.Repository.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return dberr.RequireAffected(r.db.WithContext(ctx).Delete(&model.Transaction{}, "id = ?", id))
}

// Get implements transaction.Repository.
func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.TransactionRead, error) {
	var tx model.Transaction
	if err := r.db.WithContext(
		ctx,
	).First(
		&tx,
		"id = ?",
		id,
	).Error; err != nil {
		return nil, dberr.MapGormErrorToDomain(err)
	}
	return mapModelToReadDTO(&tx), nil
}

// ListByUser implements transaction.Repository.
func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
	limit, offset int,
) ([]*dto.TransactionRead, error) {
	return r.find(r.db.WithContext(
		ctx,
	).Where(
		"user_id = ?",
		userID,
	).Order(
		"transaction_date DESC",
	).Limit(
		limit,
	).Offset(
		offset,
	))
}

// ListByUserBetween implements transaction.Repository.
func (r *repository) ListByUserBetween(
	ctx context.Context,
	userID string,
	from, to time.Time,
) ([]*dto.TransactionRead, error) {
	return r.find(r.db.WithContext(
		ctx,
	).Where(
		"user_id = ? AND transaction_date BETWEEN ? AND ?",
		userID, from, to,
	).Order(
		"transaction_date DESC",
	))
}

// ListRecentByUser implements transaction.Repository.
func (r *repository) ListRecentByUser(
	ctx context.Context,
	userID string,
	since time.Time,
) ([]*dto.TransactionRead, error) {
	return r.find(r.db.WithContext(
		ctx,
	).Where(
		"user_id = ? AND transaction_date >= ?",
		userID, since,
	).Order(
		"transaction_date DESC",
	))
}

// SumByType implements transaction.Repository.
func (r *repository) SumByType(
	ctx context.Context,
	userID string,
	from, to time.Time,
) ([]repo.TypeTotal, error) {
	var rows []struct {
		TransactionType string
		Total           decimal.Decimal
	}
	if err := r.db.WithContext(
		ctx,
	).Model(
		&model.Transaction{},
	).Select(
		"transaction_type, COALESCE(SUM(amount), 0) AS total",
	).Where(
		"user_id = ? AND transaction_date BETWEEN ? AND ?",
		userID, from, to,
	).Group(
		"transaction_type",
	).Scan(&rows).Error; err != nil {
		return nil, dberr.MapGormErrorToDomain(err)
	}
	out := make([]repo.TypeTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, repo.TypeTotal{TransactionType: row.TransactionType, Total: row.Total})
	}
	return out, nil
}

// CategoryStats implements transaction.Repository.
func (r *repository) CategoryStats(
	ctx context.Context,
	userID string,
	since time.Time,
) ([]dto.CategoryTotal, error) {
	var rows []dto.CategoryTotal
	if err := r.db.WithContext(
		ctx,
	).Model(
		&model.Transaction{},
	).Select(
		"category, COUNT(*) AS count, SUM(amount) AS total",
	).Where(
		"user_id = ? AND transaction_date >= ?",
		userID, since,
	).Group(
		"category",
	).Order(
		"total DESC",
	).Scan(&rows).Error; err != nil {
		return nil, dberr.MapGormErrorToDomain(err)
	}
	if rows == nil {
		rows = []dto.CategoryTotal{}
	}
	return rows, nil
}

func (r *repository) find(q *gorm.DB) ([]*dto.TransactionRead, error) {
	var txs []model.Transaction
	if err := q.Find(&txs).Error; err != nil {
		return nil, dberr.MapGormErrorToDomain(err)
	}
	result := make([]*dto.TransactionRead, 0, len(txs))
	for i := range txs {
		result = append(result, mapModelToReadDTO(&txs[i]))
	}
	return result, nil
}

// --- Mappers ---

func mapCreateDTOToModel(create dto.TransactionCreate) model.Transaction {
	return model.Transaction{
		ID:              create.ID,
		UserID:          create.UserID,
		Amount:          create.Amount,
		Category:        create.Category,
		Description:     create.Description,
		TransactionType: create.TransactionType,
		TransactionDate: create.TransactionDate,
		Merchant:        create.Merchant,
		Location:        create.Location,
	}
}

func mapUpdateDTOToModel(update dto.TransactionUpdate) map[string]any {
	updates := make(map[string]any)
	if update.Amount != nil {
		updates["amount"] = *update.Amount
	}
	if update.Category != nil {
		updates["category"] = *update.Category
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.TransactionType != nil {
		updates["transaction_type"] = *update.TransactionType
	}
	if update.TransactionDate != nil {
		updates["transaction_date"] = *update.TransactionDate
	}
	if update.Merchant != nil {
		updates["merchant"] = *update.Merchant
	}
	if update.Location != nil {
		updates["location"] = *update.Location
	}
	return updates
}

func mapModelToReadDTO(tx *model.Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:              tx.ID,
		UserID:          tx.UserID,
		Amount:          tx.Amount,
		Category:        tx.Category,
		Description:     tx.Description,
		TransactionType: tx.TransactionType,
		TransactionDate: tx.TransactionDate,
		Merchant:        tx.Merchant,
		Location:        tx.Location,
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
	}
}
