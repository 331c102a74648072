package model

import (
	"time"

	"github.com/amirasaad/aifinance/pkg/domain/document"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// DocumentChunk is an embedded piece of a knowledge document. The vector
// column has no fixed width so the embedding model can change between
// deployments; chunks of different widths must not share a table.
type DocumentChunk struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey"`
	DocumentName string            `gorm:"type:varchar(255);not null;index"`
	Content      string            `gorm:"type:text;not null"`
	Embedding    pgvector.Vector   `gorm:"type:vector;not null"`
	Metadata     document.Metadata `gorm:"type:jsonb;serializer:json"`
	CreatedAt    time.Time
}

func (DocumentChunk) TableName() string {
	return "document_chunks"
}
