package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCorpus = `concepts:
  - id: ml
    name: Machine Learning
    documents:
      - id: ml-1
        content: machine learning trains models on data
      - id: ml-2
        content: neural models generalize from training data
  - id: db
    name: Databases
    documents:
      - id: db-1
        content: relational databases store tables and indexes
`

func writeTestCorpus(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCorpus), 0o644))
	return path
}

// runCommand executes the root command with args and captures stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Reset persistent flag state between runs.
	configPath = ""
	debugMode = false

	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_Version(t *testing.T) {
	out, err := runCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "ragframework version")
}

func TestIndexCmd(t *testing.T) {
	corpus := writeTestCorpus(t)

	out, err := runCommand(t, "index", "--corpus", corpus)
	require.NoError(t, err)
	assert.Contains(t, out, "Indexed 2 concepts")
}

func TestIndexCmd_MissingCorpusFlag(t *testing.T) {
	_, err := runCommand(t, "index")
	assert.Error(t, err)
}

func TestIndexCmd_MissingCorpusFile(t *testing.T) {
	_, err := runCommand(t, "index", "--corpus", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestQueryCmd_TextOutput(t *testing.T) {
	corpus := writeTestCorpus(t)

	out, err := runCommand(t, "query", "--corpus", corpus, "--min-score", "0", "machine learning")
	require.NoError(t, err)
	assert.Contains(t, out, "ml")
	assert.Contains(t, out, "score:")
}

func TestQueryCmd_JSONOutput(t *testing.T) {
	corpus := writeTestCorpus(t)

	out, err := runCommand(t, "query", "--corpus", corpus, "--min-score", "0", "--format", "json", "databases")
	require.NoError(t, err)

	var results []struct {
		ConceptID string  `json:"concept_id"`
		Score     float64 `json:"score"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.NotEmpty(t, results)
	assert.Equal(t, "db", results[0].ConceptID)
}

func TestQueryCmd_NoMatches(t *testing.T) {
	corpus := writeTestCorpus(t)

	out, err := runCommand(t, "query", "--corpus", corpus, "--min-score", "0.99", "quantum chromodynamics")
	require.NoError(t, err)
	assert.Contains(t, out, "No concepts matched.")
}

func TestQueryCmd_InvalidMinScore(t *testing.T) {
	corpus := writeTestCorpus(t)

	_, err := runCommand(t, "query", "--corpus", corpus, "--min-score", "1.5", "anything")
	assert.Error(t, err)
}

func TestQueryCmd_ConfigFile(t *testing.T) {
	corpus := writeTestCorpus(t)
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`fuzzy:
  threshold: 0.7
  max_expansions: 5
  cache_enabled: true
index:
  workers: 2
logging:
  level: warn
`), 0o644))

	out, err := runCommand(t, "query", "--corpus", corpus, "--config", cfg, "--min-score", "0", "machin")
	require.NoError(t, err)
	assert.Contains(t, out, "ml")
}
