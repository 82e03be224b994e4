package fuzzy

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/montraydavis/RAGFramework/internal/errors"
)

// Default service configuration.
const (
	// DefaultThreshold is the minimum similarity for a vocabulary token to
	// join an expansion.
	DefaultThreshold = 0.8

	// DefaultMaxExpansions caps the number of near matches per term, not
	// counting the term itself.
	DefaultMaxExpansions = 3

	// DefaultCacheSize is the number of expansion sets kept in the LRU cache.
	DefaultCacheSize = 1000
)

// Vocabulary is a versioned snapshot of the fitted vocabulary. The version
// scopes cache entries so that expansions computed against a stale
// vocabulary are never served after a rebuild.
type Vocabulary struct {
	Tokens  []string
	Version uint64
}

// Service expands a query term into itself plus near-vocabulary variants.
// Expansion results are memoized in a thread-safe LRU cache keyed by
// (vocabulary version, term).
type Service struct {
	matcher       Matcher
	threshold     float64
	maxExpansions int
	cache         *lru.Cache[string, []string] // nil when caching is disabled
}

// ServiceOption configures the expansion service.
type ServiceOption func(*Service)

// WithThreshold sets the minimum similarity for expansion.
func WithThreshold(threshold float64) ServiceOption {
	return func(s *Service) {
		s.threshold = threshold
	}
}

// WithMaxExpansions sets the maximum near matches per term.
func WithMaxExpansions(n int) ServiceOption {
	return func(s *Service) {
		s.maxExpansions = n
	}
}

// WithoutCache disables expansion memoization.
func WithoutCache() ServiceOption {
	return func(s *Service) {
		s.cache = nil
	}
}

// NewService creates an expansion service backed by the given matcher.
// Returns InvalidConfiguration when the threshold is outside [0,1] or the
// expansion limit is not positive.
func NewService(matcher Matcher, opts ...ServiceOption) (*Service, error) {
	cache, _ := lru.New[string, []string](DefaultCacheSize)
	s := &Service{
		matcher:       matcher,
		threshold:     DefaultThreshold,
		maxExpansions: DefaultMaxExpansions,
		cache:         cache,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.matcher == nil {
		return nil, errors.InvalidConfiguration("matcher", "must not be nil")
	}
	if s.threshold < 0 || s.threshold > 1 {
		return nil, errors.InvalidConfiguration("threshold", "must be within [0,1]")
	}
	if s.maxExpansions <= 0 {
		return nil, errors.InvalidConfiguration("max_expansions", "must be positive")
	}
	return s, nil
}

// scored pairs a vocabulary token with its similarity to the query term.
type scored struct {
	token string
	score float64
}

// ExpandTerms expands term into itself plus vocabulary tokens whose
// similarity meets the threshold, best matches first, truncated to the
// configured maximum.
//
// A blank term yields an empty set. The returned set always contains the
// term itself. A matcher failure degrades to {term}: the failure is logged
// and never propagates, so expansion of other terms is unaffected.
func (s *Service) ExpandTerms(term string, vocab Vocabulary) []string {
	if strings.TrimSpace(term) == "" {
		return []string{}
	}

	key := cacheKey(term, vocab.Version)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			return cached
		}
	}

	matches := make([]scored, 0, s.maxExpansions)
	for _, token := range vocab.Tokens {
		if token == term {
			continue
		}
		score, err := s.matcher.Similarity(term, token)
		if err != nil {
			slog.Warn("fuzzy expansion degraded to raw term",
				slog.String("term", term),
				slog.String("code", errors.ErrCodeExpansionFailed),
				slog.String("error", err.Error()))
			return []string{term}
		}
		if score >= s.threshold {
			matches = append(matches, scored{token: token, score: score})
		}
	}

	// Best matches first; equal scores break ties by token for determinism.
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].token < matches[j].token
	})
	if len(matches) > s.maxExpansions {
		matches = matches[:s.maxExpansions]
	}

	expanded := make([]string, 0, len(matches)+1)
	expanded = append(expanded, term)
	for _, m := range matches {
		expanded = append(expanded, m.token)
	}

	if s.cache != nil {
		s.cache.Add(key, expanded)
	}
	return expanded
}

// CacheLen returns the number of memoized expansion sets.
func (s *Service) CacheLen() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

// PurgeCache drops all memoized expansions. Not required for correctness
// because entries are keyed by vocabulary version, but frees memory after
// a rebuild invalidates an entire generation of entries.
func (s *Service) PurgeCache() {
	if s.cache != nil {
		s.cache.Purge()
	}
}

// cacheKey scopes a term to a vocabulary generation. The NUL separator
// keeps terms containing digits unambiguous.
func cacheKey(term string, version uint64) string {
	return fmt.Sprintf("%d\x00%s", version, term)
}
