// Package embedding defines the text embedding port.
package embedding

import (
	"context"
	"fmt"

	"github.com/amirasaad/aifinance/pkg/domain"
)

// Client turns text into a fixed-length vector.
type Client interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	// Dimensions is the length of every vector the client returns.
	Dimensions() int
}

// CheckDimensions fails when vec does not have the expected length.
func CheckDimensions(vec []float32, want int) error {
	if len(vec) != want {
		return fmt.Errorf("%w: expected %d dimensions, got %d", domain.ErrEmbedding, want, len(vec))
	}
	return nil
}
