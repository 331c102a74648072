package document

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/domain/document"
)

func TestLocalSource(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("budget"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("%PDF-1.7"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o700))

	src := NewLocalSource(dir)
	docs, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []document.SourceDocument{
		{Name: "a.pdf", Size: 8},
		{Name: "b.txt", Size: 6},
	}, docs)

	data, err := src.Open(context.Background(), "b.txt")
	require.NoError(t, err)
	assert.Equal(t, "budget", string(data))
}

func TestLocalSource_MissingDirectory(t *testing.T) {
	t.Parallel()
	docs, err := NewLocalSource(filepath.Join(t.TempDir(), "nope")).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestLocalSource_Open(t *testing.T) {
	t.Parallel()
	src := NewLocalSource(t.TempDir())

	_, err := src.Open(context.Background(), "../etc/passwd")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = src.Open(context.Background(), "missing.txt")
	require.ErrorIs(t, err, domain.ErrNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Open(ctx, "x.txt")
	require.ErrorIs(t, err, context.Canceled)
}

func TestTextExtractor(t *testing.T) {
	t.Parallel()
	out, err := TextExtractor{}.Extract(context.Background(), "a.txt", []byte("\xef\xbb\xbfhello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	_, err = TextExtractor{}.Extract(context.Background(), "bin.txt", []byte{0xff, 0xfe, 0xfd})
	require.Error(t, err)
}

func TestPDFExtractor_RejectsNonPDF(t *testing.T) {
	t.Parallel()
	_, err := NewPDFExtractor(nil, "gemini").Extract(context.Background(), "fake.pdf", []byte("hello"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a PDF")
}

func TestStripFences(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{"```\nfenced\n```", "fenced"},
		{"```text\nline one\nline two\n```\n", "line one\nline two"},
		{"  ```  ", "```"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripFences(tt.in))
	}
}
