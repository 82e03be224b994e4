// Package main provides the entry point for the ragframework CLI.
package main

import (
	"os"

	"github.com/montraydavis/RAGFramework/cmd/ragframework/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
