package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montraydavis/RAGFramework/internal/errors"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "negative threshold",
			mutate: func(c *Config) { c.Fuzzy.Threshold = -0.5 },
		},
		{
			name:   "threshold above one",
			mutate: func(c *Config) { c.Fuzzy.Threshold = 1.5 },
		},
		{
			name:   "zero max expansions",
			mutate: func(c *Config) { c.Fuzzy.MaxExpansions = 0 },
		},
		{
			name:   "negative workers",
			mutate: func(c *Config) { c.Index.Workers = -1 },
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Logging.Level = "verbose" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidConfiguration))
		})
	}
}

func TestLoad(t *testing.T) {
	content := `fuzzy:
  threshold: 0.75
  max_expansions: 5
  cache_enabled: true
index:
  workers: 4
  stop_words: [the, a, of]
logging:
  level: debug
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, cfg.Fuzzy.Threshold, 1e-12)
	assert.Equal(t, 5, cfg.Fuzzy.MaxExpansions)
	assert.Equal(t, 4, cfg.Index.Workers)
	assert.Equal(t, []string{"the", "a", "of"}, cfg.Index.StopWords)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidValues(t *testing.T) {
	content := `fuzzy:
  threshold: 2.0
  max_expansions: 3
  cache_enabled: true
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfiguration))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
