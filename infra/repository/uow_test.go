package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/aifinance/pkg/repository"
	fraudrepo "github.com/amirasaad/aifinance/pkg/repository/fraudalert"
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
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestUoW_DoCommits(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	assert.False(t, uow.InTransaction())
	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		assert.True(t, txUow.(*UoW).InTransaction())
		txRepo, err := txUow.TransactionRepository()
		require.NoError(t, err)
		assert.NotNil(t, txRepo)

		alerts, err := txUow.FraudAlertRepository()
		require.NoError(t, err)
		assert.NotNil(t, alerts)
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_DoRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := uow.Do(context.Background(), func(repository.UnitOfWork) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_GetRepository(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	_, err := uow.GetRepository(reflect.TypeFor[error]())
	assert.ErrorContains(t, err, "no repository registered")

	repoAny, err := uow.GetRepository(reflect.TypeFor[fraudrepo.Repository]())
	require.NoError(t, err)
	assert.Implements(t, (*fraudrepo.Repository)(nil), repoAny)

	txRepo, err := uow.TransactionRepository()
	require.NoError(t, err)
	assert.NotNil(t, txRepo)
}
