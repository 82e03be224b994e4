package repository

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// corpusFile is the on-disk corpus schema:
//
//	concepts:
//	  - id: ml
//	    name: Machine Learning
//	    documents:
//	      - id: ml-1
//	        content: ...
type corpusFile struct {
	Concepts []Concept `yaml:"concepts"`
}

// LoadYAML reads a concept corpus from a YAML file into a MemoryRepository.
func LoadYAML(path string) (*MemoryRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file: %w", err)
	}

	var file corpusFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing corpus file %s: %w", path, err)
	}

	return NewMemoryRepository(file.Concepts...), nil
}
