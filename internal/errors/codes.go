// Package errors provides structured error handling for RAGFramework.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: Vectorizer errors
//   - 3XX: Index errors
//   - 4XX: Fuzzy-matching errors
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryVectorize indicates vectorizer lifecycle and vector-shape errors.
	CategoryVectorize Category = "VECTORIZE"
	// CategoryIndex indicates concept-index lifecycle and lookup errors.
	CategoryIndex Category = "INDEX"
	// CategoryFuzzy indicates fuzzy-expansion errors.
	CategoryFuzzy Category = "FUZZY"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates unrecoverable error, must abort.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates operation failed but can continue.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeInvalidConfiguration = "ERR_101_INVALID_CONFIGURATION"

	// Vectorizer errors (200-299)
	ErrCodeNotFitted         = "ERR_201_NOT_FITTED"
	ErrCodeEmptyCorpus       = "ERR_202_EMPTY_CORPUS"
	ErrCodeDimensionMismatch = "ERR_203_DIMENSION_MISMATCH"

	// Index errors (300-399)
	ErrCodeNotBuilt        = "ERR_301_NOT_BUILT"
	ErrCodeConceptNotFound = "ERR_302_CONCEPT_NOT_FOUND"

	// Fuzzy errors (400-499)
	ErrCodeExpansionFailed = "ERR_401_EXPANSION_FAILED"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// categoryFromCode derives the category from the numeric range of a code.
func categoryFromCode(code string) Category {
	if len(code) < 5 {
		return CategoryInternal
	}
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryVectorize
	case '3':
		return CategoryIndex
	case '4':
		return CategoryFuzzy
	default:
		return CategoryInternal
	}
}

// severityFromCode derives the severity from a code. Expansion failures
// degrade rather than abort, so they report as warnings.
func severityFromCode(code string) Severity {
	switch code {
	case ErrCodeExpansionFailed:
		return SeverityWarning
	case ErrCodeInternal:
		return SeverityFatal
	default:
		return SeverityError
	}
}
