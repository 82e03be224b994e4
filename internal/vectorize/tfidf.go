// Package vectorize implements a self-contained TF-IDF vectorizer.
//
// The vectorizer learns a vocabulary and an inverse-document-frequency table
// from a training corpus in a single Fit pass, then converts arbitrary text
// into dense weight vectors of vocabulary length. A fitted vectorizer is
// immutable and safe for any number of concurrent readers; refitting replaces
// the vocabulary wholesale and bumps the vocabulary version.
package vectorize

import (
	"math"
	"sync"

	"github.com/montraydavis/RAGFramework/internal/errors"
	"github.com/montraydavis/RAGFramework/internal/textproc"
)

// TFIDFVectorizer converts text into TF-IDF weight vectors.
//
// Fit must complete before any Transform call. All vectors produced by one
// fitted instance share the same dimensionality.
type TFIDFVectorizer struct {
	mu         sync.RWMutex
	vocabulary map[string]int // token -> stable column index
	idf        []float64      // one weight per vocabulary index
	version    uint64         // incremented on every successful Fit
	fitted     bool

	stopWords map[string]struct{}
}

// Option configures a TFIDFVectorizer.
type Option func(*TFIDFVectorizer)

// WithStopWords enables stop-word filtering during both Fit and Transform.
func WithStopWords(words []string) Option {
	return func(v *TFIDFVectorizer) {
		v.stopWords = textproc.BuildStopWordMap(words)
	}
}

// NewTFIDFVectorizer creates an unfitted vectorizer.
func NewTFIDFVectorizer(opts ...Option) *TFIDFVectorizer {
	v := &TFIDFVectorizer{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// tokenize applies the shared tokenizer plus the optional stop-word filter.
func (v *TFIDFVectorizer) tokenize(text string) []string {
	tokens := textproc.Tokenize(text)
	if len(v.stopWords) > 0 {
		tokens = textproc.FilterStopWords(tokens, v.stopWords)
	}
	return tokens
}

// Fit learns the vocabulary and IDF table from the corpus.
//
// The vocabulary is the set of all surviving tokens, indexed in first-seen
// order, so the result is deterministic for a given corpus and order.
// IDF(t) = log(totalDocuments / documentFrequency(t)).
// Returns EmptyCorpus when given zero documents; in that case the previous
// fitted state is left untouched.
func (v *TFIDFVectorizer) Fit(corpus []string) error {
	if len(corpus) == 0 {
		return errors.EmptyCorpus("Fit")
	}

	vocabulary := make(map[string]int)
	docFrequency := make(map[string]int)

	for _, doc := range corpus {
		tokens := v.tokenize(doc)
		seen := make(map[string]struct{}, len(tokens))
		for _, token := range tokens {
			if _, ok := vocabulary[token]; !ok {
				vocabulary[token] = len(vocabulary)
			}
			if _, ok := seen[token]; !ok {
				seen[token] = struct{}{}
				docFrequency[token]++
			}
		}
	}

	totalDocs := float64(len(corpus))
	idf := make([]float64, len(vocabulary))
	for token, idx := range vocabulary {
		idf[idx] = math.Log(totalDocs / float64(docFrequency[token]))
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.vocabulary = vocabulary
	v.idf = idf
	v.version++
	v.fitted = true
	return nil
}

// Transform converts text into a dense TF-IDF vector of vocabulary length.
//
// Term frequency is occurrences / totalTokens restricted to the fitted
// vocabulary; out-of-vocabulary tokens are ignored, never added. Empty text
// yields an all-zero vector. Returns NotFitted before Fit.
func (v *TFIDFVectorizer) Transform(text string) ([]float64, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if !v.fitted {
		return nil, errors.NotFitted("Transform")
	}

	vector := make([]float64, len(v.vocabulary))
	tokens := v.tokenize(text)
	if len(tokens) == 0 {
		return vector, nil
	}

	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}

	total := float64(len(tokens))
	for token, count := range counts {
		idx, ok := v.vocabulary[token]
		if !ok {
			continue
		}
		tf := float64(count) / total
		vector[idx] = tf * v.idf[idx]
	}
	return vector, nil
}

// Vocabulary returns a copy of the fitted vocabulary tokens.
// Returns an empty slice before Fit.
func (v *TFIDFVectorizer) Vocabulary() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	tokens := make([]string, len(v.vocabulary))
	for token, idx := range v.vocabulary {
		tokens[idx] = token
	}
	return tokens
}

// Dimensions returns the vocabulary size, which is the length of every
// vector produced by this instance. Zero before Fit.
func (v *TFIDFVectorizer) Dimensions() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.vocabulary)
}

// Version returns the vocabulary version, incremented on every successful
// Fit. Used to scope caches that depend on the fitted vocabulary.
func (v *TFIDFVectorizer) Version() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.version
}

// IsFitted reports whether Fit has completed successfully at least once.
func (v *TFIDFVectorizer) IsFitted() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.fitted
}
