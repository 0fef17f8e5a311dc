// Package main provides the entry point for the JobShield fraud
// screening CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobshield",
	Short: "Job posting fraud screening",
	Long:  "JobShield screens job postings for fraud signals: it extracts and normalizes posting text, parses it into a structured context, and scores it against a registry of scam heuristics.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
