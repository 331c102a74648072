package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	r := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "transactions" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := r.Create(context.Background(), dto.TransactionCreate{
		ID:              uuid.New(),
		UserID:          "u1",
		Amount:          decimal.NewFromInt(25),
		Category:        "Food",
		TransactionType: "EXPENSE",
		TransactionDate: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	r := New(db)
	id := uuid.New()
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "amount", "category", "transaction_type", "transaction_date", "merchant",
		}).AddRow(id.String(), "u1", "120.50", "Food", "EXPENSE", date, "Grocer"))

	got, err := r.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "120.5", got.Amount.String())
	assert.Equal(t, "Grocer", got.Merchant)

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)
	_, err = r.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_UpdateMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	r := New(db)
	amount := decimal.NewFromInt(10)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "transactions" SET (.+) WHERE id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := r.Update(context.Background(), uuid.New(), dto.TransactionUpdate{Amount: &amount})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	r := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "transactions" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, r.Delete(context.Background(), uuid.New()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteReferencedByAlert(t *testing.T) {
	db, mock := newMockDB(t)
	r := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "transactions" WHERE id = \$1`).
		WillReturnError(&pgconn.PgError{
			Code:           "23503",
			Message:        `update or delete on table "transactions" violates foreign key constraint`,
			ConstraintName: "fraud_alerts_transaction_id_fkey",
		})
	mock.ExpectRollback()

	err := r.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListRecentByUser(t *testing.T) {
	db, mock := newMockDB(t)
	r := New(db)
	since := time.Now().AddDate(0, 0, -30)

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE user_id = \$1 AND transaction_date >= \$2 ORDER BY transaction_date DESC`).
		WithArgs("u1", since).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount"}).
			AddRow(uuid.NewString(), "u1", "10").
			AddRow(uuid.NewString(), "u1", "20"))

	got, err := r.ListRecentByUser(context.Background(), "u1", since)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRepository_SumByType(t *testing.T) {
	db, mock := newMockDB(t)
	r := New(db)

	mock.ExpectQuery(`SELECT transaction_type, COALESCE\(SUM\(amount\), 0\) AS total FROM "transactions" WHERE (.+) GROUP BY "transaction_type"`).
		WillReturnRows(sqlmock.NewRows([]string{"transaction_type", "total"}).
			AddRow("INCOME", "5000.00").
			AddRow("EXPENSE", "3200.25"))

	got, err := r.SumByType(context.Background(), "u1", time.Now().AddDate(0, 0, -90), time.Now())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "INCOME", got[0].TransactionType)
	assert.Equal(t, "3200.25", got[1].Total.String())
}

func TestRepository_CategoryStats(t *testing.T) {
	db, mock := newMockDB(t)
	r := New(db)

	mock.ExpectQuery(`SELECT category, COUNT\(\*\) AS count, SUM\(amount\) AS total FROM "transactions" WHERE (.+) GROUP BY "category" ORDER BY total DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"category", "count", "total"}).
			AddRow("Rent", 3, "2400").
			AddRow("Food", 12, "800.50"))

	got, err := r.CategoryStats(context.Background(), "u1", time.Now().AddDate(0, 0, -90))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Rent", got[0].Category)
	assert.Equal(t, int64(12), got[1].Count)
	assert.Equal(t, "800.5", got[1].Total.String())

	mock.ExpectQuery(`SELECT category`).WillReturnRows(sqlmock.NewRows([]string{"category", "count", "total"}))
	empty, err := r.CategoryStats(context.Background(), "u2", time.Now())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
