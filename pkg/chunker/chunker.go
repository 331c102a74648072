// Package chunker splits extracted document text into overlapping,
// sentence-aware segments ready for embedding.
package chunker

import (
	"fmt"
	"strings"

	"github.com/amirasaad/aifinance/pkg/domain"
)

// Chunker holds a chunking configuration.
type Chunker struct {
	Size    int
	Overlap int
}

// New returns a Chunker after checking the configuration.
func New(size, overlap int) (Chunker, error) {
	c := Chunker{Size: size, Overlap: overlap}
	if err := c.validate(); err != nil {
		return Chunker{}, err
	}
	return c, nil
}

// Split cuts text with the configured size and overlap.
func (c Chunker) Split(text string) ([]string, error) {
	return Chunk(text, c.Size, c.Overlap)
}

func (c Chunker) validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", domain.ErrValidation, c.Size)
	}
	if c.Overlap < 0 || c.Overlap >= c.Size {
		return fmt.Errorf(
			"%w: chunk overlap must be within [0,%d), got %d",
			domain.ErrValidation, c.Size, c.Overlap,
		)
	}
	return nil
}

// Chunk splits text into windows of size runes. A window that ends inside
// the text is cut just after the last period at or before its edge when that
// period lies past the window's midpoint, so a chunk holds at most size+1
// runes. Consecutive windows share overlap runes. Chunks are trimmed and
// blank chunks are dropped.
func Chunk(text string, size, overlap int) ([]string, error) {
	if err := (Chunker{Size: size, Overlap: overlap}).validate(); err != nil {
		return nil, err
	}

	chunks := []string{}
	if strings.TrimSpace(text) == "" {
		return chunks, nil
	}

	runes := []rune(text)
	n := len(runes)
	start := 0
	for start < n {
		end := min(start+size, n)
		if end < n {
			if cut := lastPeriod(runes, start, end+1); cut > start+size/2 {
				end = cut + 1
			}
		}

		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end >= n {
			break
		}

		next := end - overlap
		if next <= start {
			next = end
		}
		start = next
	}
	return chunks, nil
}

// lastPeriod returns the index of the last '.' in runes[from:to], or -1.
func lastPeriod(runes []rune, from, to int) int {
	for i := to - 1; i >= from; i-- {
		if runes[i] == '.' {
			return i
		}
	}
	return -1
}
