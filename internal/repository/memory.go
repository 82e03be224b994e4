package repository

import (
	"context"
	"sync"

	"github.com/montraydavis/RAGFramework/internal/errors"
)

// MemoryRepository is an in-memory Repository. Concepts are copied in on
// construction and on Put, so callers cannot mutate stored state through
// retained slices.
type MemoryRepository struct {
	mu       sync.RWMutex
	concepts map[string]Concept
	order    []string // insertion order, keeps Concepts deterministic
}

// Ensure MemoryRepository implements Repository.
var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates a repository seeded with the given concepts.
func NewMemoryRepository(concepts ...Concept) *MemoryRepository {
	r := &MemoryRepository{
		concepts: make(map[string]Concept, len(concepts)),
	}
	for _, c := range concepts {
		r.put(c)
	}
	return r
}

// Put inserts or replaces a concept.
func (r *MemoryRepository) Put(concept Concept) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(concept)
}

func (r *MemoryRepository) put(concept Concept) {
	if _, exists := r.concepts[concept.ID]; !exists {
		r.order = append(r.order, concept.ID)
	}
	concept.Documents = append([]Document(nil), concept.Documents...)
	r.concepts[concept.ID] = concept
}

// Concepts returns every concept in insertion order.
func (r *MemoryRepository) Concepts(ctx context.Context) ([]Concept, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Concept, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.concepts[id])
	}
	return out, nil
}

// Concept returns a single concept by id, or ConceptNotFound.
func (r *MemoryRepository) Concept(ctx context.Context, id string) (Concept, error) {
	if err := ctx.Err(); err != nil {
		return Concept{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.concepts[id]
	if !ok {
		return Concept{}, errors.ConceptNotFound(id)
	}
	return c, nil
}

// Len returns the number of stored concepts.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.concepts)
}
