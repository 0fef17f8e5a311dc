package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobshield/jobshield/internal/config"
	"github.com/jobshield/jobshield/internal/fetch"
	"github.com/jobshield/jobshield/internal/logger"
	"github.com/jobshield/jobshield/internal/pipeline"
)

var (
	analyzeConfigPath string
	analyzeJob        string
	analyzeJobURL     string
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Screen a single job posting for fraud signals",
	Long: `Runs the full screening pipeline against a posting from a local text
file or a URL and prints the aggregate report as JSON.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA portals (requires Chrome)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("one of --job or --job-url is required")
	}

	log, err := logger.New(false, analyzeVerbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	opts := pipeline.Options{Logger: log}

	switch {
	case cfg.Job != "":
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		opts.Text = string(data)
	default:
		markup, err := fetchPostingMarkup(ctx, &cfg, log)
		if err != nil {
			return err
		}
		opts.Markup = markup
	}

	report, err := pipeline.Analyze(opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// fetchPostingMarkup retrieves page markup for the configured URL,
// preferring headless rendering for portals known to need it.
func fetchPostingMarkup(ctx context.Context, cfg *config.Config, log *zap.Logger) (string, error) {
	if cfg.UseBrowser && fetch.NeedsBrowser(fetch.PortalFromURL(cfg.JobURL)) {
		return fetch.BrowserSimple(ctx, cfg.JobURL, log)
	}

	opts := fetch.DefaultOptions()
	opts.Timeout = cfg.FetchTimeoutDuration(10 * time.Second)

	result, err := fetch.URL(ctx, cfg.JobURL, opts)
	if err != nil {
		return "", err
	}
	if !result.Success {
		return "", fmt.Errorf("fetch failed: %s", result.Reason)
	}
	return result.HTML, nil
}
