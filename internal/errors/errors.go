package errors

import (
	"errors"
	"fmt"
)

// Error is the structured error type for RAGFramework.
// It provides a stable code for matching plus context for logging.
type Error struct {
	// Code is the unique error code (e.g., "ERR_201_NOT_FITTED").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, Vectorize, Index, ...).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with *Error sentinels.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *Error) WithDetail(key, value string) *Error {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Newf creates a new Error with a formatted message and no cause.
func Newf(code string, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...), nil)
}

// Sentinel errors for the retrieval pipeline. Match with errors.Is.
var (
	// ErrNotFitted is returned when Transform is called before Fit.
	ErrNotFitted = New(ErrCodeNotFitted, "vectorizer has not been fitted", nil)

	// ErrEmptyCorpus is returned when fitting or building over zero documents.
	ErrEmptyCorpus = New(ErrCodeEmptyCorpus, "corpus contains no documents", nil)

	// ErrDimensionMismatch is returned when two vectors differ in length.
	ErrDimensionMismatch = New(ErrCodeDimensionMismatch, "vector dimensions do not match", nil)

	// ErrNotBuilt is returned when Query is called before a successful Build.
	ErrNotBuilt = New(ErrCodeNotBuilt, "concept index has not been built", nil)

	// ErrConceptNotFound is returned when a concept id is absent from the index.
	ErrConceptNotFound = New(ErrCodeConceptNotFound, "concept not found", nil)

	// ErrInvalidConfiguration is returned for out-of-range configuration values.
	ErrInvalidConfiguration = New(ErrCodeInvalidConfiguration, "invalid configuration", nil)
)

// NotFitted returns a NotFitted error with operation context.
func NotFitted(operation string) *Error {
	return New(ErrCodeNotFitted, fmt.Sprintf("%s called before Fit", operation), ErrNotFitted)
}

// EmptyCorpus returns an EmptyCorpus error with source context.
func EmptyCorpus(source string) *Error {
	return New(ErrCodeEmptyCorpus, fmt.Sprintf("%s yielded no documents", source), ErrEmptyCorpus)
}

// DimensionMismatch returns a DimensionMismatch error carrying both lengths.
func DimensionMismatch(got, want int) *Error {
	return New(ErrCodeDimensionMismatch,
		fmt.Sprintf("vector length %d does not match %d", got, want),
		ErrDimensionMismatch).
		WithDetail("got", fmt.Sprintf("%d", got)).
		WithDetail("want", fmt.Sprintf("%d", want))
}

// ConceptNotFound returns a ConceptNotFound error for the given id.
func ConceptNotFound(id string) *Error {
	return New(ErrCodeConceptNotFound, fmt.Sprintf("concept %q not found", id), ErrConceptNotFound).
		WithDetail("concept_id", id)
}

// InvalidConfiguration returns an InvalidConfiguration error with field context.
func InvalidConfiguration(field, reason string) *Error {
	return New(ErrCodeInvalidConfiguration,
		fmt.Sprintf("%s: %s", field, reason),
		ErrInvalidConfiguration).
		WithDetail("field", field)
}

// Is reports whether any error in err's chain matches target.
// Re-exported so callers need only one errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching target's type.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the error code from an error chain.
// Returns ErrCodeInternal for errors that are not *Error.
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}
