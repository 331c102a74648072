package dto

import "time"

// AdvisorQuery is a natural-language advice request. It is never persisted.
type AdvisorQuery struct {
	UserID                 string `json:"userId" validate:"required"`
	Query                  string `json:"query" validate:"required,max=2000"`
	Provider               string `json:"provider" validate:"omitempty,oneof=OLLAMA OPENAI GEMINI ollama openai gemini"`
	IncludeDocumentContext bool   `json:"includeDocumentContext"`
}

// AdvisorResponse is the generated advice with its provenance.
type AdvisorResponse struct {
	Advice            string    `json:"advice"`
	Provider          string    `json:"provider"`
	RelevantDocuments []string  `json:"relevantDocuments"`
	GeneratedAt       time.Time `json:"generatedAt"`
}
