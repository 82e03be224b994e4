package fuzzy

// LevenshteinMatcher scores similarity as 1 - distance/max(len(a), len(b)).
// It is stateless and safe for concurrent use.
type LevenshteinMatcher struct{}

// Ensure LevenshteinMatcher implements Matcher.
var _ Matcher = (*LevenshteinMatcher)(nil)

// NewLevenshteinMatcher creates a new edit-distance matcher.
func NewLevenshteinMatcher() *LevenshteinMatcher {
	return &LevenshteinMatcher{}
}

// Similarity returns the normalized edit-distance similarity of a and b.
// Returns 0 when either string is empty.
func (m *LevenshteinMatcher) Similarity(a, b string) (float64, error) {
	if a == "" || b == "" {
		return 0, nil
	}

	la, lb := len([]rune(a)), len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	return 1 - float64(Distance(a, b))/float64(maxLen), nil
}

// Distance computes the Levenshtein edit distance between a and b using
// unit-cost insert, delete, and substitute operations. Single-row DP keeps
// memory at O(min side) of the matrix.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
