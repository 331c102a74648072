// Package document provides document sources and text extractors used by
// ingestion.
package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/domain/document"
)

// LocalSource lists regular files in one directory. Subdirectories are not
// walked.
type LocalSource struct {
	dir string
}

func NewLocalSource(dir string) *LocalSource {
	return &LocalSource{dir: dir}
}

// List returns the files in the directory sorted by name. A missing
// directory yields no documents.
func (s *LocalSource) List(ctx context.Context) ([]document.SourceDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []document.SourceDocument{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read documents directory %s: %w", s.dir, err)
	}

	docs := make([]document.SourceDocument, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		docs = append(docs, document.SourceDocument{Name: e.Name(), Size: info.Size()})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

// Open reads a listed file. Names containing path separators are rejected.
func (s *LocalSource) Open(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == "" || name != filepath.Base(name) {
		return nil, fmt.Errorf("%w: invalid document name %q", domain.ErrValidation, name)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: document %s", domain.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", name, err)
	}
	return data, nil
}
