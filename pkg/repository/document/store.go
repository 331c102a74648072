package document

import (
	"context"

	"github.com/amirasaad/aifinance/pkg/domain/document"
)

// Store persists document chunks and answers nearest-neighbour queries.
type Store interface {
	// Exists reports whether any chunk of the named document is stored.
	Exists(ctx context.Context, documentName string) (bool, error)

	// Save stores one chunk.
	Save(ctx context.Context, chunk *document.Chunk) error

	// SaveAll stores the chunks of one document atomically: all of them or
	// none, so Exists never reports a partially stored document.
	SaveAll(ctx context.Context, chunks []*document.Chunk) error

	// FindSimilar returns up to limit chunks ordered by similarity to vector,
	// most similar first. An empty store yields an empty slice.
	FindSimilar(ctx context.Context, vector []float32, limit int) ([]*document.Chunk, error)
}

// Source lists and reads raw documents awaiting ingestion.
type Source interface {
	List(ctx context.Context) ([]document.SourceDocument, error)
	Open(ctx context.Context, name string) ([]byte, error)
}

// Extractor turns raw document bytes into plain text.
type Extractor interface {
	Extract(ctx context.Context, name string, data []byte) (string, error)
}
