// Package vectorstore keeps document chunks in memory and ranks them by
// cosine similarity.
package vectorstore

import (
	"container/heap"
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/domain/document"
)

// MemoryStore is a document store backed by a slice. Search is a linear scan.
type MemoryStore struct {
	mu     sync.RWMutex
	dims   int
	chunks []entry
	docs   map[string]int
}

type entry struct {
	chunk *document.Chunk
	unit  []float32
}

// NewMemoryStore creates a store accepting vectors of dims dimensions.
func NewMemoryStore(dims int) *MemoryStore {
	return &MemoryStore{dims: dims, docs: make(map[string]int)}
}

func (s *MemoryStore) Exists(_ context.Context, documentName string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[documentName] > 0, nil
}

func (s *MemoryStore) Save(ctx context.Context, chunk *document.Chunk) error {
	return s.SaveAll(ctx, []*document.Chunk{chunk})
}

// SaveAll validates every chunk before storing any of them.
func (s *MemoryStore) SaveAll(_ context.Context, chunks []*document.Chunk) error {
	entries := make([]entry, 0, len(chunks))
	for _, chunk := range chunks {
		if len(chunk.Embedding) != s.dims {
			return fmt.Errorf("%w: embedding has %d dimensions, store expects %d",
				domain.ErrValidation, len(chunk.Embedding), s.dims)
		}
		c := *chunk
		c.Embedding = append([]float32(nil), chunk.Embedding...)
		entries = append(entries, entry{chunk: &c, unit: normalize(c.Embedding)})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		s.chunks = append(s.chunks, e)
		s.docs[e.chunk.DocumentName]++
	}
	return nil
}

// FindSimilar returns the limit chunks closest to vector, best first.
func (s *MemoryStore) FindSimilar(_ context.Context, vector []float32, limit int) ([]*document.Chunk, error) {
	if len(vector) != s.dims {
		return nil, fmt.Errorf("%w: query has %d dimensions, store expects %d",
			domain.ErrValidation, len(vector), s.dims)
	}
	if limit <= 0 {
		return []*document.Chunk{}, nil
	}
	q := normalize(vector)

	s.mu.RLock()
	h := make(scoredHeap, 0, limit+1)
	for i, e := range s.chunks {
		heap.Push(&h, scored{idx: i, score: dot(q, e.unit)})
		if h.Len() > limit {
			heap.Pop(&h)
		}
	}
	out := make([]*document.Chunk, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = s.chunks[heap.Pop(&h).(scored).idx].chunk
	}
	s.mu.RUnlock()
	return out, nil
}

// Len returns the number of stored chunks.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// CosineSimilarity of two equal-length vectors. Zero vectors score 0.
func CosineSimilarity(a, b []float32) float64 {
	return dot(normalize(a), normalize(b))
}

func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	out := make([]float32, len(v))
	if sum == 0 {
		return out
	}
	norm := math.Sqrt(sum)
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

type scored struct {
	idx   int
	score float64
}

// scoredHeap is a min-heap on score; ties keep the earlier chunk.
type scoredHeap []scored

func (h scoredHeap) Len() int { return len(h) }
func (h scoredHeap) Less(i, j int) bool {
	if h[i].score == h[j].score {
		return h[i].idx > h[j].idx
	}
	return h[i].score < h[j].score
}
func (h scoredHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *scoredHeap) Push(x any)   { *h = append(*h, x.(scored)) }
func (h *scoredHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
