package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/domain/document"
)

// GCSSource lists objects under a prefix of a Cloud Storage bucket. Document
// names are object names with the prefix removed.
type GCSSource struct {
	client *storage.Client
	bucket string
	prefix string
}

func NewGCSSource(client *storage.Client, bucket, prefix string) *GCSSource {
	return &GCSSource{client: client, bucket: bucket, prefix: prefix}
}

func (s *GCSSource) List(ctx context.Context) ([]document.SourceDocument, error) {
	it := s.client.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: s.prefix})
	docs := []document.SourceDocument{}
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list gs://%s/%s: %w", s.bucket, s.prefix, err)
		}
		name := strings.TrimPrefix(attrs.Name, s.prefix)
		// Skip folder placeholders and nested objects.
		if name == "" || strings.Contains(name, "/") {
			continue
		}
		docs = append(docs, document.SourceDocument{Name: name, Size: attrs.Size})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

func (s *GCSSource) Open(ctx context.Context, name string) ([]byte, error) {
	if name == "" || strings.Contains(name, "/") {
		return nil, fmt.Errorf("%w: invalid document name %q", domain.ErrValidation, name)
	}
	r, err := s.client.Bucket(s.bucket).Object(s.prefix + name).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, fmt.Errorf("%w: document %s", domain.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("open GCS object reader: %w", err)
	}
	defer r.Close() //nolint:errcheck

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read GCS object: %w", err)
	}
	return data, nil
}
