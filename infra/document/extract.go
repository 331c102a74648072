package document

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"google.golang.org/genai"
)

// TextExtractor returns UTF-8 text files as they are.
type TextExtractor struct{}

func (TextExtractor) Extract(_ context.Context, name string, data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s is not valid UTF-8", name)
	}
	return string(data), nil
}

const pdfExtractPrompt = "Extract all readable text from this PDF document. " +
	"Return plain text only, preserving paragraph breaks. " +
	"Do not summarize, translate or add commentary."

// PDFExtractor sends PDF bytes to a Gemini model and returns the text it reads
// back.
type PDFExtractor struct {
	client *genai.Client
	model  string
}

func NewPDFExtractor(client *genai.Client, model string) *PDFExtractor {
	return &PDFExtractor{client: client, model: model}
}

func (x *PDFExtractor) Extract(ctx context.Context, name string, data []byte) (string, error) {
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return "", fmt.Errorf("%s is not a PDF", name)
	}
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: pdfExtractPrompt},
				{
					InlineData: &genai.Blob{
						MIMEType: "application/pdf",
						Data:     data,
					},
				},
			},
		},
	}
	resp, err := x.client.Models.GenerateContent(ctx, x.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("extract %s: generate content: %w", name, err)
	}
	return stripFences(resp.Text()), nil
}

// stripFences removes a markdown code fence the model sometimes wraps
// output in.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if idx := strings.Index(s, "\n"); idx != -1 {
		s = s[idx+1:]
	} else {
		return s
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
