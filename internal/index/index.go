// Package index builds and queries the concept vector index. Build fits a
// TF-IDF vectorizer over the combined corpus, then computes one aggregate
// vector per concept in parallel. Query expands terms against the fitted
// vocabulary, vectorizes the expanded query, and ranks concepts by cosine
// similarity.
package index

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/montraydavis/RAGFramework/internal/errors"
	"github.com/montraydavis/RAGFramework/internal/fuzzy"
	"github.com/montraydavis/RAGFramework/internal/repository"
	"github.com/montraydavis/RAGFramework/internal/textproc"
	"github.com/montraydavis/RAGFramework/internal/vectorize"
)

// Result is a single ranked query hit.
type Result struct {
	ConceptID string  `json:"concept_id"`
	Score     float64 `json:"score"`
}

// Stats describes the current index generation.
type Stats struct {
	Concepts   int
	Dimensions int
	Generation uint64
}

// snapshot is one fully-built index generation. Snapshots are immutable
// after publication and swapped wholesale, so a build in flight never
// disturbs readers and a failed or cancelled build leaves the previous
// generation intact.
type snapshot struct {
	vectorizer *vectorize.TFIDFVectorizer
	vocab      fuzzy.Vocabulary
	vectors    map[string][]float64
}

// Index maps concept ids to aggregate TF-IDF vectors and answers ranked
// similarity queries against them.
type Index struct {
	fuzzy   *fuzzy.Service
	workers int
	vecOpts []vectorize.Option

	mu         sync.RWMutex
	snap       *snapshot
	generation uint64
}

// Option configures an Index.
type Option func(*Index)

// WithWorkers sets the build fan-out width. Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(ix *Index) {
		ix.workers = n
	}
}

// WithVectorizerOptions forwards options to the vectorizer built on every
// index generation (stop words and the like).
func WithVectorizerOptions(opts ...vectorize.Option) Option {
	return func(ix *Index) {
		ix.vecOpts = opts
	}
}

// New creates an empty index. It must be built before it can be queried.
// Returns InvalidConfiguration when the fuzzy service is nil or the worker
// count is not positive.
func New(fuzzySvc *fuzzy.Service, opts ...Option) (*Index, error) {
	ix := &Index{
		fuzzy:   fuzzySvc,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(ix)
	}

	if ix.fuzzy == nil {
		return nil, errors.InvalidConfiguration("fuzzy_service", "must not be nil")
	}
	if ix.workers <= 0 {
		return nil, errors.InvalidConfiguration("workers", "must be positive")
	}
	return ix, nil
}

// Build fits the vectorizer over the combined corpus of every document and
// computes one mean vector per concept, one worker task per concept.
//
// Concepts with zero documents are skipped. A failure inside one concept is
// logged and that concept omitted; it never aborts the build. A corpus with
// no documents at all aborts with EmptyCorpus. The new generation is
// published wholesale only on success: a cancelled or failed build leaves
// the previous index intact.
func (ix *Index) Build(ctx context.Context, concepts []repository.Concept) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var corpus []string
	for _, c := range concepts {
		for _, d := range c.Documents {
			corpus = append(corpus, d.Content)
		}
	}
	if len(corpus) == 0 {
		return errors.EmptyCorpus("Build")
	}

	// Each generation gets a fresh vectorizer so a build in flight never
	// disturbs the published snapshot.
	vectorizer := vectorize.NewTFIDFVectorizer(ix.vecOpts...)
	if err := vectorizer.Fit(corpus); err != nil {
		return err
	}

	vectors := make(map[string][]float64, len(concepts))
	var vectorsMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ix.workers)

	for _, concept := range concepts {
		concept := concept
		if len(concept.Documents) == 0 {
			slog.Debug("skipping concept with no documents",
				slog.String("concept_id", concept.ID))
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			vec, err := conceptVector(vectorizer, concept)
			if err != nil {
				// Isolated: the concept is omitted, the build continues.
				slog.Warn("concept vector computation failed, omitting concept",
					slog.String("concept_id", concept.ID),
					slog.String("error", err.Error()))
				return nil
			}

			vectorsMu.Lock()
			vectors[concept.ID] = vec
			vectorsMu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.generation++
	ix.snap = &snapshot{
		vectorizer: vectorizer,
		vocab: fuzzy.Vocabulary{
			Tokens:  vectorizer.Vocabulary(),
			Version: ix.generation,
		},
		vectors: vectors,
	}

	slog.Info("concept index built",
		slog.Int("concepts", len(vectors)),
		slog.Int("dimensions", vectorizer.Dimensions()),
		slog.Uint64("generation", ix.generation))
	return nil
}

// conceptVector transforms each of the concept's documents and returns
// their element-wise mean.
func conceptVector(vectorizer *vectorize.TFIDFVectorizer, concept repository.Concept) ([]float64, error) {
	docVectors := make([][]float64, 0, len(concept.Documents))
	for _, doc := range concept.Documents {
		vec, err := vectorizer.Transform(doc.Content)
		if err != nil {
			return nil, err
		}
		docVectors = append(docVectors, vec)
	}
	return vectorize.MeanVector(docVectors)
}

// Query ranks indexed concepts against text by cosine similarity.
//
// Each query token is expanded against the fitted vocabulary via the fuzzy
// service, the deduplicated expansion is rejoined and vectorized, and every
// concept vector is scored. Scores at or above minScore are kept, sorted
// descending with ascending concept id as the tie break, and truncated to
// topK. Returns NotBuilt before the first successful Build.
func (ix *Index) Query(ctx context.Context, text string, minScore float64, topK int) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if minScore < 0 || minScore > 1 {
		return nil, errors.InvalidConfiguration("min_score", "must be within [0,1]")
	}
	if topK <= 0 {
		return nil, errors.InvalidConfiguration("top_k", "must be positive")
	}

	ix.mu.RLock()
	snap := ix.snap
	ix.mu.RUnlock()
	if snap == nil {
		return nil, errors.New(errors.ErrCodeNotBuilt, "Query called before Build", errors.ErrNotBuilt)
	}

	expanded := ix.expandQuery(text, snap.vocab)
	queryVec, err := snap.vectorizer.Transform(expanded)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(snap.vectors))
	for id, vec := range snap.vectors {
		score, err := vectorize.CosineSimilarity(queryVec, vec)
		if err != nil {
			return nil, err
		}
		if score >= minScore {
			results = append(results, Result{ConceptID: id, Score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ConceptID < results[j].ConceptID
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// expandQuery expands every token of text against the fitted vocabulary and
// rejoins the deduplicated union into an extended query string.
func (ix *Index) expandQuery(text string, vocab fuzzy.Vocabulary) string {
	tokens := textproc.Tokenize(text)

	seen := make(map[string]struct{})
	var terms []string
	for _, token := range tokens {
		for _, term := range ix.fuzzy.ExpandTerms(token, vocab) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			terms = append(terms, term)
		}
	}
	return strings.Join(terms, " ")
}

// ConceptVector returns a copy of the indexed vector for the given concept
// id. Returns NotBuilt before Build and ConceptNotFound for unknown or
// zero-document concepts.
func (ix *Index) ConceptVector(id string) ([]float64, error) {
	ix.mu.RLock()
	snap := ix.snap
	ix.mu.RUnlock()
	if snap == nil {
		return nil, errors.New(errors.ErrCodeNotBuilt, "ConceptVector called before Build", errors.ErrNotBuilt)
	}

	vec, ok := snap.vectors[id]
	if !ok {
		return nil, errors.ConceptNotFound(id)
	}
	return append([]float64(nil), vec...), nil
}

// Len returns the number of indexed concepts.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if ix.snap == nil {
		return 0
	}
	return len(ix.snap.vectors)
}

// Stats returns the current index statistics.
func (ix *Index) Stats() Stats {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if ix.snap == nil {
		return Stats{}
	}
	return Stats{
		Concepts:   len(ix.snap.vectors),
		Dimensions: ix.snap.vectorizer.Dimensions(),
		Generation: ix.generation,
	}
}
