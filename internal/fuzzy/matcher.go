// Package fuzzy provides edit-distance based term matching and query-term
// expansion against a fitted vocabulary. Expansion bridges lexical variation
// between user queries and the indexed corpus (misspellings, truncations).
package fuzzy

// Matcher is the similarity capability. Callers depend on this interface,
// not on a concrete algorithm, so alternate matchers can be substituted
// without touching the expansion service.
type Matcher interface {
	// Similarity returns a normalized similarity score in [0,1].
	// 1 means identical, 0 means no lexical overlap.
	Similarity(a, b string) (float64, error)
}

// IsMatch reports whether a and b score at or above threshold under m.
func IsMatch(m Matcher, a, b string, threshold float64) (bool, error) {
	score, err := m.Similarity(a, b)
	if err != nil {
		return false, err
	}
	return score >= threshold, nil
}
