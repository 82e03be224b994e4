package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/montraydavis/RAGFramework/internal/config"
	"github.com/montraydavis/RAGFramework/internal/fuzzy"
	"github.com/montraydavis/RAGFramework/internal/index"
	"github.com/montraydavis/RAGFramework/internal/repository"
	"github.com/montraydavis/RAGFramework/internal/vectorize"
)

func newIndexCmd() *cobra.Command {
	var corpusPath string

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build the concept vector index from a corpus file",
		Long: `Build the concept vector index from a YAML corpus file and print
index statistics.

Examples:
  ragframework index --corpus corpus.yaml
  ragframework index --corpus corpus.yaml --debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			setupLogging(cfg)

			ix, err := buildIndex(cmd.Context(), cfg, corpusPath)
			if err != nil {
				return err
			}

			stats := ix.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d concepts (%d dimensions)\n",
				stats.Concepts, stats.Dimensions)
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "Path to YAML corpus file (required)")
	_ = cmd.MarkFlagRequired("corpus")

	return cmd
}

// buildIndex constructs the full retrieval pipeline from config and builds
// it over the corpus file.
func buildIndex(ctx context.Context, cfg config.Config, corpusPath string) (*index.Index, error) {
	repo, err := repository.LoadYAML(corpusPath)
	if err != nil {
		return nil, err
	}
	concepts, err := repo.Concepts(ctx)
	if err != nil {
		return nil, err
	}

	fuzzyOpts := []fuzzy.ServiceOption{
		fuzzy.WithThreshold(cfg.Fuzzy.Threshold),
		fuzzy.WithMaxExpansions(cfg.Fuzzy.MaxExpansions),
	}
	if !cfg.Fuzzy.CacheEnabled {
		fuzzyOpts = append(fuzzyOpts, fuzzy.WithoutCache())
	}
	svc, err := fuzzy.NewService(fuzzy.NewLevenshteinMatcher(), fuzzyOpts...)
	if err != nil {
		return nil, err
	}

	indexOpts := []index.Option{index.WithWorkers(cfg.Index.Workers)}
	if len(cfg.Index.StopWords) > 0 {
		indexOpts = append(indexOpts,
			index.WithVectorizerOptions(vectorize.WithStopWords(cfg.Index.StopWords)))
	}
	ix, err := index.New(svc, indexOpts...)
	if err != nil {
		return nil, err
	}

	if err := ix.Build(ctx, concepts); err != nil {
		return nil, err
	}
	return ix, nil
}
