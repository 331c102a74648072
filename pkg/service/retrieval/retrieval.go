// Package retrieval finds the stored document chunks most relevant to a query.
package retrieval

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/domain/document"
	"github.com/amirasaad/aifinance/pkg/embedding"
	docrepo "github.com/amirasaad/aifinance/pkg/repository/document"
)

// ContextSeparator separates chunks in a built context.
const ContextSeparator = "\n\n---\n\n"

// Service embeds queries and searches the document store.
type Service struct {
	embedder embedding.Client
	store    docrepo.Store
	logger   *slog.Logger
}

// New creates a retrieval Service.
func New(embedder embedding.Client, store docrepo.Store, logger *slog.Logger) *Service {
	return &Service{embedder: embedder, store: store, logger: logger}
}

// FindRelevant returns up to limit chunks, most similar to query first.
// An empty store yields an empty slice.
func (s *Service) FindRelevant(ctx context.Context, query string, limit int) ([]*document.Chunk, error) {
	if limit <= 0 || strings.TrimSpace(query) == "" {
		return []*document.Chunk{}, nil
	}
	s.logger.Debug("Finding relevant documents", "limit", limit)

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		s.logger.Error("Failed to embed query", "error", err)
		return nil, fmt.Errorf("%w: embed query: %w", domain.ErrRetrieval, err)
	}
	chunks, err := s.store.FindSimilar(ctx, vector, limit)
	if err != nil {
		s.logger.Error("Similarity search failed", "error", err)
		return nil, fmt.Errorf("%w: similarity search: %w", domain.ErrRetrieval, err)
	}
	if chunks == nil {
		chunks = []*document.Chunk{}
	}
	return chunks, nil
}

// BuildContext renders chunks as "Source: <name>" blocks for a prompt.
func BuildContext(chunks []*document.Chunk) string {
	blocks := make([]string, 0, len(chunks))
	for _, c := range chunks {
		blocks = append(blocks, "Source: "+c.DocumentName+"\n"+c.Content)
	}
	return strings.Join(blocks, ContextSeparator)
}

// DocumentNames returns the distinct document names of chunks in order of
// first appearance.
func DocumentNames(chunks []*document.Chunk) []string {
	names := make([]string, 0, len(chunks))
	seen := make(map[string]struct{}, len(chunks))
	for _, c := range chunks {
		if _, ok := seen[c.DocumentName]; ok {
			continue
		}
		seen[c.DocumentName] = struct{}{}
		names = append(names, c.DocumentName)
	}
	return names
}
