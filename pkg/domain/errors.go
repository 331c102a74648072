package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrConflict is returned when a concurrent writer changed the resource first
	ErrConflict = errors.New("concurrent modification")
	// ErrInvalidTransition is returned for a status change the lifecycle does not allow
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Processing errors. Every failure of an external collaborator is reported under
// one of these categories with the original cause wrapped alongside.
var (
	ErrProcessing         = errors.New("processing failure")
	ErrLLMProcessing      = errors.New("llm processing failure")
	ErrEmbedding          = errors.New("embedding failure")
	ErrRetrieval          = errors.New("retrieval failure")
	ErrDocumentProcessing = errors.New("document processing failure")
	ErrFraudDetection     = errors.New("fraud detection failure")
)

// IsProcessing reports whether err belongs to one of the processing categories.
func IsProcessing(err error) bool {
	for _, target := range []error{
		ErrProcessing,
		ErrLLMProcessing,
		ErrEmbedding,
		ErrRetrieval,
		ErrDocumentProcessing,
		ErrFraudDetection,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
