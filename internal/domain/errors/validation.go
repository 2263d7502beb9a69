package errors

import (
	"net/http"
	"sort"
	"strings"
)

// ValidationError collects per-field validation failures for one input,
// in the shape bulk ingestion reports them: field name to message list.
// It implements AppError.
type ValidationError struct {
	fields map[string][]string
}

// NewValidationError creates an empty validation error.
func NewValidationError() *ValidationError {
	return &ValidationError{fields: make(map[string][]string)}
}

// Add records a failure message against a field.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.fields[field] = append(e.fields[field], message)

	return e
}

// HasErrors reports whether any failure was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.fields) > 0
}

// Fields returns the recorded failures keyed by field name.
func (e *ValidationError) Fields() map[string][]string {
	return e.fields
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "input validation failed: " + e.Details()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "input validation failed"
}

// Details returns the failures as "field: message" pairs in field order.
func (e *ValidationError) Details() string {
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+strings.Join(e.fields[name], "; "))
	}

	return strings.Join(parts, ", ")
}
