package document

import (
	"context"
	"fmt"

	"github.com/amirasaad/aifinance/infra/repository/dberr"
	"github.com/amirasaad/aifinance/infra/repository/model"
	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/domain/document"
	docrepo "github.com/amirasaad/aifinance/pkg/repository/document"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store keeps document chunks in Postgres and searches them with pgvector's
// cosine distance operator.
type Store struct {
	db   *gorm.DB
	dims int
}

// New creates a pgvector-backed document store for vectors of dims dimensions.
func New(db *gorm.DB, dims int) *Store {
	return &Store{db: db, dims: dims}
}

func (s *Store) Exists(ctx context.Context, documentName string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&model.DocumentChunk{}).
		Where("document_name = ?", documentName).
		Count(&n).Error
	if err != nil {
		return false, dberr.MapGormErrorToDomain(err)
	}
	return n > 0, nil
}

// saveBatchSize bounds the rows of one INSERT statement.
const saveBatchSize = 100

func (s *Store) Save(ctx context.Context, chunk *document.Chunk) error {
	if err := s.checkDims(len(chunk.Embedding)); err != nil {
		return err
	}
	row := toRow(chunk)
	return dberr.WrapError(func() error {
		return s.db.WithContext(ctx).Create(&row).Error
	})
}

// SaveAll inserts chunks in one transaction.
func (s *Store) SaveAll(ctx context.Context, chunks []*document.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	rows := make([]model.DocumentChunk, 0, len(chunks))
	for _, c := range chunks {
		if err := s.checkDims(len(c.Embedding)); err != nil {
			return fmt.Errorf("chunk %d of %s: %w", c.Metadata.ChunkIndex, c.DocumentName, err)
		}
		rows = append(rows, toRow(c))
	}
	return dberr.WrapError(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.CreateInBatches(rows, saveBatchSize).Error
		})
	})
}

func toRow(chunk *document.Chunk) model.DocumentChunk {
	return model.DocumentChunk{
		ID:           chunk.ID,
		DocumentName: chunk.DocumentName,
		Content:      chunk.Content,
		Embedding:    pgvector.NewVector(chunk.Embedding),
		Metadata:     chunk.Metadata,
		CreatedAt:    chunk.CreatedAt,
	}
}

func (s *Store) FindSimilar(ctx context.Context, vector []float32, limit int) ([]*document.Chunk, error) {
	if err := s.checkDims(len(vector)); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []*document.Chunk{}, nil
	}
	var rows []model.DocumentChunk
	err := s.db.WithContext(ctx).
		Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "embedding <=> ?", Vars: []any{pgvector.NewVector(vector)}},
		}).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, dberr.MapGormErrorToDomain(err)
	}
	out := make([]*document.Chunk, 0, len(rows))
	for i := range rows {
		out = append(out, &document.Chunk{
			ID:           rows[i].ID,
			DocumentName: rows[i].DocumentName,
			Content:      rows[i].Content,
			Embedding:    rows[i].Embedding.Slice(),
			Metadata:     rows[i].Metadata,
			CreatedAt:    rows[i].CreatedAt,
		})
	}
	return out, nil
}

func (s *Store) checkDims(n int) error {
	if s.dims > 0 && n != s.dims {
		return fmt.Errorf("%w: vector has %d dimensions, store expects %d", domain.ErrValidation, n, s.dims)
	}
	return nil
}

var _ docrepo.Store = (*Store)(nil)
