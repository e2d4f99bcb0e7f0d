package errors

import "fmt"

// Error codes
const (
	CodeExtraction  = "EXTRACTION_ERROR"
	CodeEnrichment  = "ENRICHMENT_ERROR"
	CodePersistence = "PERSISTENCE_ERROR"
	CodeValidation  = "VALIDATION_ERROR"
	CodeCache       = "CACHE_ERROR"
)

type ScraperError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *ScraperError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ScraperError) Unwrap() error {
	return e.Cause
}

// ExtractionError marks a failure while resolving or parsing a speaker detail
// page. It is caught at the per-speaker boundary and never aborts the run.
type ExtractionError struct {
	*ScraperError
	Speaker string
	Page    int
}

func NewExtractionError(message, speaker string, page int, cause error) *ExtractionError {
	return &ExtractionError{
		ScraperError: &ScraperError{
			Message: message,
			Code:    CodeExtraction,
			Context: map[string]any{
				"speaker": speaker,
				"page":    page,
			},
			Cause: cause,
		},
		Speaker: speaker,
		Page:    page,
	}
}

type EnrichmentError struct {
	*ScraperError
	Company string
}

func NewEnrichmentError(message, company string, cause error) *EnrichmentError {
	return &EnrichmentError{
		ScraperError: &ScraperError{
			Message: message,
			Code:    CodeEnrichment,
			Context: map[string]any{
				"company": company,
			},
			Cause: cause,
		},
		Company: company,
	}
}

type PersistenceError struct {
	*ScraperError
	Path string
}

func NewPersistenceError(message, path string, cause error) *PersistenceError {
	return &PersistenceError{
		ScraperError: &ScraperError{
			Message: message,
			Code:    CodePersistence,
			Context: map[string]any{
				"path": path,
			},
			Cause: cause,
		},
		Path: path,
	}
}

type CacheError struct {
	*ScraperError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		ScraperError: &ScraperError{
			Message: message,
			Code:    CodeCache,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}

type ValidationError struct {
	*ScraperError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		ScraperError: &ScraperError{
			Message: message,
			Code:    CodeValidation,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}
