package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// GeminiCompleter uses the Gemini API through the genai SDK.
type GeminiCompleter struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGeminiClient creates a genai client for the Gemini API backend.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return client, nil
}

// NewGeminiCompleter wraps an existing genai client.
func NewGeminiCompleter(client *genai.Client, model string, logger *slog.Logger) *GeminiCompleter {
	return &GeminiCompleter{client: client, model: model, logger: logger}
}

func (c *GeminiCompleter) Name() string { return "gemini" }

// Complete generates a single response. The system prompt is passed as a
// system instruction rather than a conversation turn.
func (c *GeminiCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var cfg *genai.GenerateContentConfig
	if strings.TrimSpace(systemPrompt) != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		}
	}

	c.logger.Debug("Calling gemini", "model", c.model)
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userPrompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
