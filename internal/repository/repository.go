// Package repository defines the concept/document model consumed by the
// retrieval core, an in-memory implementation, and a YAML corpus loader.
// The core reads concepts through the Repository interface and never
// mutates them.
package repository

import (
	"context"
)

// Document is a unit of raw text belonging to exactly one concept.
type Document struct {
	ID      string `yaml:"id"`
	Content string `yaml:"content"`
}

// Concept is a named topical grouping of documents sharing semantic context.
type Concept struct {
	ID        string     `yaml:"id"`
	Name      string     `yaml:"name"`
	Documents []Document `yaml:"documents"`
}

// Repository provides read-only access to concepts and their documents.
type Repository interface {
	// Concepts returns every concept with its documents.
	Concepts(ctx context.Context) ([]Concept, error)

	// Concept returns a single concept by id.
	Concept(ctx context.Context, id string) (Concept, error)
}
