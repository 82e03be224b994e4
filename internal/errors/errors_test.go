package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	err := New(ErrCodeNotFitted, "transform before fit", nil)
	assert.Equal(t, "[ERR_201_NOT_FITTED] transform before fit", err.Error())
}

func TestError_Is_MatchesByCode(t *testing.T) {
	err := NotFitted("Transform")
	assert.True(t, stderrors.Is(err, ErrNotFitted))
	assert.False(t, stderrors.Is(err, ErrEmptyCorpus))
}

func TestError_Is_ThroughWrapping(t *testing.T) {
	inner := EmptyCorpus("fit")
	wrapped := fmt.Errorf("building index: %w", inner)

	assert.True(t, stderrors.Is(wrapped, ErrEmptyCorpus))
	assert.Equal(t, ErrCodeEmptyCorpus, GetCode(wrapped))
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := New(ErrCodeInternal, "wrapper", cause)
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestCategoryFromCode(t *testing.T) {
	tests := []struct {
		code string
		want Category
	}{
		{ErrCodeInvalidConfiguration, CategoryConfig},
		{ErrCodeNotFitted, CategoryVectorize},
		{ErrCodeEmptyCorpus, CategoryVectorize},
		{ErrCodeDimensionMismatch, CategoryVectorize},
		{ErrCodeNotBuilt, CategoryIndex},
		{ErrCodeConceptNotFound, CategoryIndex},
		{ErrCodeExpansionFailed, CategoryFuzzy},
		{ErrCodeInternal, CategoryInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, categoryFromCode(tt.code))
		})
	}
}

func TestDimensionMismatch_Details(t *testing.T) {
	err := DimensionMismatch(3, 5)
	require.NotNil(t, err.Details)
	assert.Equal(t, "3", err.Details["got"])
	assert.Equal(t, "5", err.Details["want"])
	assert.True(t, stderrors.Is(err, ErrDimensionMismatch))
}

func TestConceptNotFound(t *testing.T) {
	err := ConceptNotFound("ml")
	assert.True(t, stderrors.Is(err, ErrConceptNotFound))
	assert.Equal(t, "ml", err.Details["concept_id"])
}

func TestInvalidConfiguration(t *testing.T) {
	err := InvalidConfiguration("fuzzy.threshold", "must be within [0,1]")
	assert.True(t, stderrors.Is(err, ErrInvalidConfiguration))
	assert.Contains(t, err.Error(), "fuzzy.threshold")
}

func TestGetCode_NonStructuredError(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, GetCode(stderrors.New("plain")))
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, SeverityWarning, New(ErrCodeExpansionFailed, "x", nil).Severity)
	assert.Equal(t, SeverityError, New(ErrCodeNotBuilt, "x", nil).Severity)
	assert.Equal(t, SeverityFatal, New(ErrCodeInternal, "x", nil).Severity)
}
