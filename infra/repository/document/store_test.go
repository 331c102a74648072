package document

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/domain/document"
	"github.com/google/uuid"
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

func TestStore_Exists(t *testing.T) {
	db, mock := newMockDB(t)
	s := New(db, 3)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "document_chunks" WHERE document_name = \$1`).
		WithArgs("budgeting.pdf").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	ok, err := s.Exists(context.Background(), "budgeting.pdf")
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "document_chunks"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	ok, err = s.Exists(context.Background(), "new.pdf")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Save(t *testing.T) {
	db, mock := newMockDB(t)
	s := New(db, 3)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "document_chunks" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	chunk := document.NewChunk("budgeting.pdf", "Track every expense.", []float32{0.1, 0.2, 0.3}, 0, 1)
	require.NoError(t, s.Save(context.Background(), chunk))
	assert.NoError(t, mock.ExpectationsWereMet())

	err := s.Save(context.Background(), document.NewChunk("x.pdf", "x", []float32{1}, 0, 1))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStore_SaveAll(t *testing.T) {
	db, mock := newMockDB(t)
	s := New(db, 3)
	chunks := []*document.Chunk{
		document.NewChunk("budgeting.pdf", "Track every expense.", []float32{0.1, 0.2, 0.3}, 0, 2),
		document.NewChunk("budgeting.pdf", "Review subscriptions.", []float32{0.3, 0.2, 0.1}, 1, 2),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "document_chunks" (.+) VALUES (.+),(.+)`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()
	require.NoError(t, s.SaveAll(context.Background(), chunks))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SaveAllRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	s := New(db, 3)
	chunks := []*document.Chunk{
		document.NewChunk("budgeting.pdf", "Track every expense.", []float32{0.1, 0.2, 0.3}, 0, 2),
		document.NewChunk("budgeting.pdf", "Review subscriptions.", []float32{0.3, 0.2, 0.1}, 1, 2),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "document_chunks"`).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()
	require.Error(t, s.SaveAll(context.Background(), chunks))
	assert.NoError(t, mock.ExpectationsWereMet())

	// A wrong sized vector is rejected before any statement runs.
	chunks[1].Embedding = []float32{1}
	err := s.SaveAll(context.Background(), chunks)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FindSimilarOrdersByCosineDistance(t *testing.T) {
	db, mock := newMockDB(t)
	s := New(db, 3)

	mock.ExpectQuery(`SELECT \* FROM "document_chunks" ORDER BY embedding <=> \$1 LIMIT \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "document_name", "content", "embedding", "metadata"}).
			AddRow(uuid.NewString(), "budgeting.pdf", "Track every expense.", "[1,0,0]",
				`{"chunkIndex":0,"totalChunks":2,"source":"budgeting.pdf"}`).
			AddRow(uuid.NewString(), "saving.pdf", "Automate savings.", "[0.5,0.5,0]",
				`{"chunkIndex":1,"totalChunks":3,"source":"saving.pdf"}`))

	got, err := s.FindSimilar(context.Background(), []float32{1, 0, 0}, 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "budgeting.pdf", got[0].DocumentName)
	assert.Equal(t, []float32{1, 0, 0}, got[0].Embedding)
	assert.Equal(t, 2, got[0].Metadata.TotalChunks)
	assert.Equal(t, 1, got[1].Metadata.ChunkIndex)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FindSimilarRejectsWrongWidth(t *testing.T) {
	db, _ := newMockDB(t)
	s := New(db, 3)
	_, err := s.FindSimilar(context.Background(), []float32{1, 0}, 3)
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := s.FindSimilar(context.Background(), []float32{1, 0, 0}, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
