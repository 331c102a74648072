package embedding

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/amirasaad/aifinance/pkg/embedding"
)

// GeminiClient embeds text with the Gemini embedding models.
type GeminiClient struct {
	client *genai.Client
	model  string
	dims   int
}

func NewGeminiClient(client *genai.Client, model string, dims int) *GeminiClient {
	return &GeminiClient{client: client, model: model, dims: dims}
}

func (c *GeminiClient) Dimensions() int { return c.dims }

func (c *GeminiClient) Embed(ctx context.Context, text string) ([]float32, error) {
	dims := int32(c.dims)
	resp, err := c.client.Models.EmbedContent(ctx, c.model, genai.Text(text), &genai.EmbedContentConfig{
		OutputDimensionality: &dims,
	})
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	if resp == nil || len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil {
		return nil, fmt.Errorf("empty embedding response")
	}
	vec := resp.Embeddings[0].Values
	if err := embedding.CheckDimensions(vec, c.dims); err != nil {
		return nil, err
	}
	return vec, nil
}
