// Package cmd provides the CLI commands for RAGFramework.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/montraydavis/RAGFramework/internal/config"
	"github.com/montraydavis/RAGFramework/internal/logging"
	"github.com/montraydavis/RAGFramework/pkg/version"
)

var (
	configPath string
	debugMode  bool
)

// NewRootCmd creates the root command for the ragframework CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ragframework",
		Short: "Concept retrieval over text corpora",
		Long: `RAGFramework retrieves topical concepts relevant to a free-text query,
tolerating misspellings and lexical variation.

It builds a TF-IDF vector per concept from a YAML corpus and answers
ranked cosine-similarity queries with fuzzy query-term expansion.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("ragframework version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (YAML)")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	cmd.AddCommand(newIndexCmd())
	cmd.AddCommand(newQueryCmd())

	return cmd
}

// loadConfig resolves the effective configuration from flags and the
// optional config file.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if debugMode {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// setupLogging initializes structured logging from the resolved config.
func setupLogging(cfg config.Config) {
	logging.Setup(cfg.Logging.Level)
}
