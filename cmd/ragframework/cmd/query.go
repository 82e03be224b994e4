package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// queryOptions holds CLI flags for query.
type queryOptions struct {
	corpus   string
	minScore float64
	topK     int
	format   string // "text", "json"
}

func newQueryCmd() *cobra.Command {
	var opts queryOptions

	cmd := &cobra.Command{
		Use:   "query <text>",
		Short: "Query the concept index",
		Long: `Build the concept index from a YAML corpus file and rank concepts
against the query text.

Query terms are fuzzy-expanded against the fitted vocabulary, so
misspellings like "machin" still reach "machine".

Examples:
  ragframework query --corpus corpus.yaml "machine learning"
  ragframework query --corpus corpus.yaml --min-score 0.2 --top-k 3 "machin lerning"
  ragframework query --corpus corpus.yaml --format json "neural networks"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			setupLogging(cfg)

			ix, err := buildIndex(cmd.Context(), cfg, opts.corpus)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			results, err := ix.Query(cmd.Context(), text, opts.minScore, opts.topK)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			if len(results) == 0 {
				fmt.Fprintln(out, "No concepts matched.")
				return nil
			}
			for i, r := range results {
				fmt.Fprintf(out, "%2d. %s  (score: %.4f)\n", i+1, r.ConceptID, r.Score)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.corpus, "corpus", "", "Path to YAML corpus file (required)")
	cmd.Flags().Float64Var(&opts.minScore, "min-score", 0.1, "Minimum similarity score (0.0-1.0, inclusive)")
	cmd.Flags().IntVarP(&opts.topK, "top-k", "n", 5, "Maximum number of results")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	_ = cmd.MarkFlagRequired("corpus")

	return cmd
}
