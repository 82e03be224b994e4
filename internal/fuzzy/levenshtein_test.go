package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "kitten sitting", a: "kitten", b: "sitting", want: 3},
		{name: "identical", a: "machine", b: "machine", want: 0},
		{name: "empty left", a: "", b: "abc", want: 3},
		{name: "empty right", a: "abc", b: "", want: 3},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "single substitution", a: "cat", b: "bat", want: 1},
		{name: "single insertion", a: "machin", b: "machine", want: 1},
		{name: "unicode runes", a: "café", b: "cafe", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
		})
	}
}

func TestDistance_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"neural", "network"},
		{"", "term"},
		{"ab", "ba"},
	}
	for _, p := range pairs {
		assert.Equal(t, Distance(p[0], p[1]), Distance(p[1], p[0]))
	}
}

func TestSimilarity(t *testing.T) {
	m := NewLevenshteinMatcher()

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "learning", b: "learning", want: 1.0},
		{name: "empty left", a: "", b: "learning", want: 0.0},
		{name: "empty right", a: "learning", b: "", want: 0.0},
		{name: "both empty", a: "", b: "", want: 0.0},
		// levenshtein=1, maxlen=7 -> 1 - 1/7
		{name: "one edit of seven", a: "machin", b: "machine", want: 1.0 - 1.0/7.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Similarity(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestSimilarity_SymmetricAndBounded(t *testing.T) {
	m := NewLevenshteinMatcher()
	pairs := [][2]string{
		{"machine", "machin"},
		{"kitten", "sitting"},
		{"a", "completely-unrelated"},
		{"", "x"},
	}
	for _, p := range pairs {
		ab, err := m.Similarity(p[0], p[1])
		require.NoError(t, err)
		ba, err := m.Similarity(p[1], p[0])
		require.NoError(t, err)

		assert.Equal(t, ab, ba)
		assert.GreaterOrEqual(t, ab, 0.0)
		assert.LessOrEqual(t, ab, 1.0)
	}
}

func TestIsMatch(t *testing.T) {
	m := NewLevenshteinMatcher()

	ok, err := IsMatch(m, "machin", "machine", 0.8)
	require.NoError(t, err)
	assert.True(t, ok, "similarity ~0.857 should clear 0.8")

	ok, err = IsMatch(m, "machin", "network", 0.8)
	require.NoError(t, err)
	assert.False(t, ok)
}
