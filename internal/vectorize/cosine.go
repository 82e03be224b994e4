package vectorize

import (
	"math"

	"github.com/montraydavis/RAGFramework/internal/errors"
)

// CosineSimilarity computes the normalized dot product of two vectors.
//
// Returns 0 when either vector is all-zero, avoiding division by zero.
// Returns DimensionMismatch when the vectors differ in length.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.DimensionMismatch(len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// MeanVector computes the element-wise mean of a set of equal-length
// vectors. Returns nil for an empty input. Returns DimensionMismatch when
// the vectors are ragged.
func MeanVector(vectors [][]float64) ([]float64, error) {
	if len(vectors) == 0 {
		return nil, nil
	}

	dims := len(vectors[0])
	mean := make([]float64, dims)
	for _, vec := range vectors {
		if len(vec) != dims {
			return nil, errors.DimensionMismatch(len(vec), dims)
		}
		for i, w := range vec {
			mean[i] += w
		}
	}

	n := float64(len(vectors))
	for i := range mean {
		mean[i] /= n
	}
	return mean, nil
}
