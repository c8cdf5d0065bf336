// Package errors provides standardized error handling for the clinical pipeline.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeEmptyInput            ErrorCode = "EMPTY_INPUT"
	ErrCodeTextTooLong           ErrorCode = "TEXT_TOO_LONG"
	ErrCodeInputValidationFailed ErrorCode = "INPUT_VALIDATION_FAILED"

	ErrCodeSessionStoreFailed ErrorCode = "SESSION_STORE_FAILED"

	ErrCodeCatalogUnavailable ErrorCode = "CATALOG_UNAVAILABLE"
	ErrCodeCatalogQueryFailed ErrorCode = "CATALOG_QUERY_FAILED"

	ErrCodeNarrativeTimeout   ErrorCode = "NARRATIVE_TIMEOUT"
	ErrCodeNarrativeMalformed ErrorCode = "NARRATIVE_MALFORMED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewEmptyInputError creates a non-retryable validation error for blank turns.
func NewEmptyInputError() *StandardError {
	return &StandardError{
		Code:      ErrCodeEmptyInput,
		Message:   "Input text is empty",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTextTooLongError creates a non-retryable validation error for over-length turns.
func NewTextTooLongError(length, max int) *StandardError {
	return &StandardError{
		Code:      ErrCodeTextTooLong,
		Message:   "Input text exceeds maximum length",
		Details:   fmt.Sprintf("length: %d, max: %d", length, max),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInputValidationError creates a non-retryable error for malformed numeric hints.
func NewInputValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputValidationFailed,
		Message:   "Input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionStoreError creates a retryable error for session store failures.
func NewSessionStoreError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStoreFailed,
		Message:   "Session store operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogUnavailableError is fatal for the request; clinical guidance is
// never emitted without the reference catalog.
func NewCatalogUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogUnavailable,
		Message:   "Reference catalog unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogQueryError creates a retryable error for catalog load failures.
func NewCatalogQueryError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogQueryFailed,
		Message:   "Reference catalog query failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNarrativeTimeoutError marks an enhancer timeout. Callers recover from it
// locally by keeping the deterministic text; it is never surfaced upstream.
func NewNarrativeTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNarrativeTimeout,
		Message:   "Narrative enhancement timed out",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNarrativeMalformedError marks unusable model output.
func NewNarrativeMalformedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNarrativeMalformed,
		Message:   "Narrative model returned malformed output",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
