// Package ingestion loads source documents into the document store as
// embedded chunks.
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/amirasaad/aifinance/pkg/chunker"
	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/domain/document"
	"github.com/amirasaad/aifinance/pkg/embedding"
	docrepo "github.com/amirasaad/aifinance/pkg/repository/document"
)

// ErrNoText is reported for documents that yield no text to chunk.
var ErrNoText = errors.New("document has no extractable text")

// DocumentError records why a single document was not ingested.
type DocumentError struct {
	Document string
	Err      error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %s: %v", e.Document, e.Err)
}

// Unwrap exposes both the processing category and the cause.
func (e *DocumentError) Unwrap() []error {
	return []error{domain.ErrDocumentProcessing, e.Err}
}

// Result summarizes one ingestion run.
type Result struct {
	Processed int     `json:"processed"`
	Skipped   int     `json:"skipped"`
	Failed    int     `json:"failed"`
	Failures  []error `json:"-"`
}

// Service chunks, embeds and stores documents.
type Service struct {
	store      docrepo.Store
	embedder   embedding.Client
	chunker    chunker.Chunker
	extractors map[string]docrepo.Extractor
	logger     *slog.Logger
}

// New creates an ingestion Service. extractors are keyed by file extension
// including the dot, for example ".pdf".
func New(
	store docrepo.Store,
	embedder embedding.Client,
	c chunker.Chunker,
	extractors map[string]docrepo.Extractor,
	logger *slog.Logger,
) *Service {
	byExt := make(map[string]docrepo.Extractor, len(extractors))
	for ext, x := range extractors {
		byExt[strings.ToLower(ext)] = x
	}
	return &Service{
		store:      store,
		embedder:   embedder,
		chunker:    c,
		extractors: byExt,
		logger:     logger,
	}
}

// Supports reports whether a document name has a registered extractor.
func (s *Service) Supports(name string) bool {
	_, ok := s.extractors[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Ingest processes every supported document of source that is not stored
// yet. Only a failure to list the source aborts the run; a failing document
// is recorded in the result and the batch continues.
func (s *Service) Ingest(ctx context.Context, source docrepo.Source) (Result, error) {
	var res Result
	docs, err := source.List(ctx)
	if err != nil {
		s.logger.Error("❌ [ERROR] Failed to list documents", "error", err)
		return res, fmt.Errorf("%w: list documents: %w", domain.ErrDocumentProcessing, err)
	}
	s.logger.Info("Starting document ingestion", "documents", len(docs))

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		log := s.logger.With("document", doc.Name)
		if !s.Supports(doc.Name) {
			log.Debug("🚫 [SKIP] Unsupported document type")
			continue
		}

		exists, err := s.store.Exists(ctx, doc.Name)
		if err != nil {
			s.fail(&res, log, doc.Name, fmt.Errorf("check existing: %w", err))
			continue
		}
		if exists {
			log.Debug("🔁 [SKIP] Document already processed")
			res.Skipped++
			continue
		}

		chunks, err := s.ingestOne(ctx, source, doc)
		if err != nil {
			s.fail(&res, log, doc.Name, err)
			continue
		}
		res.Processed++
		log.Info("✅ [SUCCESS] Document ingested", "chunks", chunks)
	}

	s.logger.Info("Document ingestion finished",
		"processed", res.Processed, "skipped", res.Skipped, "failed", res.Failed)
	return res, nil
}

func (s *Service) ingestOne(ctx context.Context, source docrepo.Source, doc document.SourceDocument) (int, error) {
	data, err := source.Open(ctx, doc.Name)
	if err != nil {
		return 0, fmt.Errorf("read document: %w", err)
	}
	text, err := s.extractors[strings.ToLower(filepath.Ext(doc.Name))].Extract(ctx, doc.Name, data)
	if err != nil {
		return 0, fmt.Errorf("extract text: %w", err)
	}
	pieces, err := s.chunker.Split(text)
	if err != nil {
		return 0, fmt.Errorf("chunk text: %w", err)
	}
	if len(pieces) == 0 {
		return 0, ErrNoText
	}

	// A document is stored whole or not at all; a partial one would be
	// skipped by every later run.
	chunks := make([]*document.Chunk, len(pieces))
	for i, p := range pieces {
		vec, err := s.embedder.Embed(ctx, p)
		if err != nil {
			return 0, fmt.Errorf("embed chunk %d: %w", i, err)
		}
		chunks[i] = document.NewChunk(doc.Name, p, vec, i, len(pieces))
	}
	if err := s.store.SaveAll(ctx, chunks); err != nil {
		return 0, fmt.Errorf("save chunks: %w", err)
	}
	return len(chunks), nil
}

func (s *Service) fail(res *Result, log *slog.Logger, name string, err error) {
	log.Error("❌ [ERROR] Failed to process document", "error", err)
	res.Failed++
	res.Failures = append(res.Failures, &DocumentError{Document: name, Err: err})
}
