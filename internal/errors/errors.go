package errors

import (
	"fmt"
)

// DocsError is the structured error type for appledocsmcp.
// It provides rich context for error handling, logging, and user presentation.
type DocsError struct {
	// Code is the unique error code (e.g., "ERR_201_DOC_READ").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Network, etc.).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Retryable indicates if the operation can be retried.
	Retryable bool

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *DocsError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *DocsError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with DocsError.
func (e *DocsError) Is(target error) bool {
	if t, ok := target.(*DocsError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *DocsError) WithDetail(key, value string) *DocsError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *DocsError) WithSuggestion(suggestion string) *DocsError {
	e.Suggestion = suggestion
	return e
}

// New creates a new DocsError with the given code and message.
// Category, severity, and retryable flag are derived from the code.
func New(code string, message string, cause error) *DocsError {
	return &DocsError{
		Code:      code,
		Message:   message,
		Category:  categoryFromCode(code),
		Severity:  severityFromCode(code),
		Cause:     cause,
		Retryable: isRetryableCode(code),
	}
}

// Wrap creates a DocsError from an existing error.
// The error's message becomes the DocsError message.
func Wrap(code string, err error) *DocsError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error with the given code.
func ConfigError(code, message string) *DocsError {
	return New(code, message, nil)
}

// IOError creates a document I/O error with the given code.
func IOError(code, message string, cause error) *DocsError {
	return New(code, message, cause)
}

// NetworkError creates a network-related error with the given code.
// Timeout and unavailable codes are retryable.
func NetworkError(code, message string, cause error) *DocsError {
	return New(code, message, cause)
}

// ValidationError creates a validation-related error with the given code.
func ValidationError(code, message string) *DocsError {
	return New(code, message, nil)
}

// IsRetryable checks if an error is retryable.
// Returns true if the error is a DocsError with Retryable flag set.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if de, ok := err.(*DocsError); ok {
		return de.Retryable
	}
	return false
}

// GetCode extracts the error code from a DocsError.
// Returns empty string if not a DocsError.
func GetCode(err error) string {
	if de, ok := err.(*DocsError); ok {
		return de.Code
	}
	return ""
}

// GetCategory extracts the category from a DocsError.
// Returns empty string if not a DocsError.
func GetCategory(err error) Category {
	if de, ok := err.(*DocsError); ok {
		return de.Category
	}
	return ""
}
