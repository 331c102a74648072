package document

import (
	"time"

	"github.com/google/uuid"
)

// Metadata keys stored with every chunk.
const (
	MetaChunkIndex  = "chunkIndex"
	MetaTotalChunks = "totalChunks"
	MetaSource      = "source"
)

// Metadata describes where a chunk came from.
type Metadata struct {
	ChunkIndex  int    `json:"chunkIndex"`
	TotalChunks int    `json:"totalChunks"`
	Source      string `json:"source"`
}

// Chunk is a piece of a source document stored with its embedding.
// Chunks are written once during ingestion and never updated.
type Chunk struct {
	ID           uuid.UUID
	DocumentName string
	Content      string
	Embedding    []float32
	Metadata     Metadata
	CreatedAt    time.Time
}

// NewChunk builds the chunk at position index of a document split into total pieces.
func NewChunk(documentName, content string, embedding []float32, index, total int) *Chunk {
	return &Chunk{
		ID:           uuid.New(),
		DocumentName: documentName,
		Content:      content,
		Embedding:    embedding,
		Metadata: Metadata{
			ChunkIndex:  index,
			TotalChunks: total,
			Source:      documentName,
		},
		CreatedAt: time.Now().UTC(),
	}
}

// Scored pairs a chunk with its similarity to a query.
type Scored struct {
	Chunk *Chunk
	Score float64
}

// SourceDocument is a raw document found in a document source.
type SourceDocument struct {
	Name string
	Size int64
}
