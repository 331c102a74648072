package ingestion

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/amirasaad/aifinance/infra/vectorstore"
	"github.com/amirasaad/aifinance/internal/fixtures/mocks"
	"github.com/amirasaad/aifinance/pkg/chunker"
	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/domain/document"
	docrepo "github.com/amirasaad/aifinance/pkg/repository/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	source   *mocks.DocumentSource
	text     *mocks.Extractor
	pdf      *mocks.Extractor
	embedder *mocks.EmbeddingClient
	store    *vectorstore.MemoryStore
	svc      *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c, err := chunker.New(100, 10)
	require.NoError(t, err)
	f := &fixture{
		source:   mocks.NewDocumentSource(t),
		text:     mocks.NewExtractor(t),
		pdf:      mocks.NewExtractor(t),
		embedder: mocks.NewEmbeddingClient(t),
		store:    vectorstore.NewMemoryStore(3),
	}
	f.svc = New(f.store, f.embedder, c, map[string]docrepo.Extractor{
		".txt": f.text,
		".PDF": f.pdf,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

func TestSupports(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	assert.True(t, f.svc.Supports("notes.txt"))
	assert.True(t, f.svc.Supports("guide.pdf"))
	assert.True(t, f.svc.Supports("GUIDE.Pdf"))
	assert.False(t, f.svc.Supports("readme.md"))
	assert.False(t, f.svc.Supports("noext"))
}

func TestIngest_SecondRunSkipsStoredDocuments(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	f.source.EXPECT().List(mock.Anything).Return([]document.SourceDocument{
		{Name: "budgeting.txt"},
		{Name: "investing.pdf"},
		{Name: "readme.md"},
	}, nil).Times(2)
	f.source.EXPECT().Open(mock.Anything, "budgeting.txt").Return([]byte("raw"), nil).Once()
	f.source.EXPECT().Open(mock.Anything, "investing.pdf").Return([]byte("%PDF"), nil).Once()
	f.text.EXPECT().Extract(mock.Anything, "budgeting.txt", []byte("raw")).
		Return("Keep an emergency fund of three to six months.", nil).Once()
	f.pdf.EXPECT().Extract(mock.Anything, "investing.pdf", []byte("%PDF")).
		Return("Diversify across asset classes.", nil).Once()
	f.embedder.EXPECT().Embed(mock.Anything, mock.Anything).Return([]float32{1, 0, 0}, nil).Times(2)

	res, err := f.svc.Ingest(ctx, f.source)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Processed)
	assert.Zero(t, res.Skipped)
	assert.Zero(t, res.Failed)
	assert.Equal(t, 2, f.store.Len())

	res, err = f.svc.Ingest(ctx, f.source)
	require.NoError(t, err)
	assert.Zero(t, res.Processed)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, 2, f.store.Len())
}

func TestIngest_ChunkMetadata(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	text := strings.Repeat("a", 250)
	f.source.EXPECT().List(mock.Anything).Return([]document.SourceDocument{{Name: "long.txt"}}, nil)
	f.source.EXPECT().Open(mock.Anything, "long.txt").Return([]byte(text), nil)
	f.text.EXPECT().Extract(mock.Anything, "long.txt", mock.Anything).Return(text, nil)
	f.embedder.EXPECT().Embed(mock.Anything, mock.Anything).Return([]float32{0, 1, 0}, nil).Times(3)

	res, err := f.svc.Ingest(ctx, f.source)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Processed)

	chunks, err := f.store.FindSimilar(ctx, []float32{0, 1, 0}, 10)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	for i, c := range chunks {
		assert.Equal(t, "long.txt", c.DocumentName)
		assert.Equal(t, i, c.Metadata.ChunkIndex)
		assert.Equal(t, 3, c.Metadata.TotalChunks)
		assert.Equal(t, "long.txt", c.Metadata.Source)
	}
}

func TestIngest_FailingDocumentDoesNotStopBatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	f.source.EXPECT().List(mock.Anything).Return([]document.SourceDocument{
		{Name: "broken.txt"},
		{Name: "empty.txt"},
		{Name: "good.txt"},
	}, nil)
	f.source.EXPECT().Open(mock.Anything, "broken.txt").Return(nil, errors.New("permission denied"))
	f.source.EXPECT().Open(mock.Anything, "empty.txt").Return([]byte(" "), nil)
	f.source.EXPECT().Open(mock.Anything, "good.txt").Return([]byte("ok"), nil)
	f.text.EXPECT().Extract(mock.Anything, "empty.txt", mock.Anything).Return("  \n ", nil)
	f.text.EXPECT().Extract(mock.Anything, "good.txt", mock.Anything).Return("Pay yourself first.", nil)
	f.embedder.EXPECT().Embed(mock.Anything, "Pay yourself first.").Return([]float32{1, 1, 0}, nil)

	res, err := f.svc.Ingest(ctx, f.source)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 2, res.Failed)
	require.Len(t, res.Failures, 2)

	var docErr *DocumentError
	require.ErrorAs(t, res.Failures[0], &docErr)
	assert.Equal(t, "broken.txt", docErr.Document)
	assert.ErrorIs(t, res.Failures[0], domain.ErrDocumentProcessing)
	assert.ErrorIs(t, res.Failures[1], ErrNoText)

	ok, err := f.store.Exists(ctx, "good.txt")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIngest_EmbeddingFailureStoresNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	text := strings.Repeat("b", 250)
	f.source.EXPECT().List(mock.Anything).Return([]document.SourceDocument{{Name: "partial.txt"}}, nil)
	f.source.EXPECT().Open(mock.Anything, "partial.txt").Return([]byte(text), nil)
	f.text.EXPECT().Extract(mock.Anything, "partial.txt", mock.Anything).Return(text, nil)
	f.embedder.EXPECT().Embed(mock.Anything, mock.Anything).Return([]float32{1, 0, 0}, nil).Once()
	f.embedder.EXPECT().Embed(mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded")).Once()

	res, err := f.svc.Ingest(ctx, f.source)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.Zero(t, f.store.Len())
}

func TestIngest_FailedSaveLeavesDocumentForNextRun(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	text := strings.Repeat("c", 250)
	f.source.EXPECT().List(mock.Anything).Return([]document.SourceDocument{{Name: "retry.txt"}}, nil).Times(2)
	f.source.EXPECT().Open(mock.Anything, "retry.txt").Return([]byte(text), nil).Times(2)
	f.text.EXPECT().Extract(mock.Anything, "retry.txt", mock.Anything).Return(text, nil).Times(2)
	// The second chunk of the first run cannot be stored.
	f.embedder.EXPECT().Embed(mock.Anything, mock.Anything).Return([]float32{1, 0, 0}, nil).Once()
	f.embedder.EXPECT().Embed(mock.Anything, mock.Anything).Return([]float32{1, 0}, nil).Once()
	f.embedder.EXPECT().Embed(mock.Anything, mock.Anything).Return([]float32{1, 0, 0}, nil).Times(4)

	res, err := f.svc.Ingest(ctx, f.source)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.ErrorIs(t, res.Failures[0], domain.ErrValidation)
	assert.Zero(t, f.store.Len())

	res, err = f.svc.Ingest(ctx, f.source)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Processed)
	assert.Zero(t, res.Skipped)
	assert.Equal(t, 3, f.store.Len())
}

func TestIngest_ListFailureIsFatal(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.source.EXPECT().List(mock.Anything).Return(nil, errors.New("bucket not found"))

	_, err := f.svc.Ingest(context.Background(), f.source)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentProcessing)
}

func TestIngest_StopsOnCancelledContext(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f.source.EXPECT().List(mock.Anything).Return([]document.SourceDocument{{Name: "a.txt"}}, nil)

	_, err := f.svc.Ingest(ctx, f.source)
	assert.ErrorIs(t, err, context.Canceled)
}
