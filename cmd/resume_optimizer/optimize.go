package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/fetch"
	"github.com/jonathan/resume-optimizer/internal/optimizer"
	"github.com/jonathan/resume-optimizer/internal/parsing"
	"github.com/jonathan/resume-optimizer/internal/types"
)

var optimizeCommand = &cobra.Command{
	Use:   "optimize",
	Short: "Optimize a resume against a job description",
	Long: `Reads a resume text file, extracts ranked keywords from a job description, and inserts the missing ones into the most fitting sections.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runOptimizeCmd,
}

var (
	optConfigPath   string
	optResume       string
	optJob          string
	optJobURL       string
	optOutput       string
	optMaxKeywords  int
	optDensityLimit float64
	optUseBrowser   bool
	optVerbose      bool
)

func init() {
	// Config file flag (processed first)
	optimizeCommand.Flags().StringVar(&optConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	optimizeCommand.Flags().StringVarP(&optResume, "resume", "r", "", "Path to resume text file")
	optimizeCommand.Flags().StringVarP(&optJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	optimizeCommand.Flags().StringVar(&optJobURL, "job-url", "", "URL to fetch job description from (mutually exclusive with --job)")
	optimizeCommand.Flags().StringVarP(&optOutput, "output", "o", "", "Path to write the optimized resume (default: stdout)")
	optimizeCommand.Flags().IntVar(&optMaxKeywords, "max-keywords", 0, "Maximum keywords inserted per run")
	optimizeCommand.Flags().Float64Var(&optDensityLimit, "density-limit", 0, "Keyword density ceiling, between 0 and 1")
	optimizeCommand.Flags().BoolVar(&optUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	optimizeCommand.Flags().BoolVarP(&optVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(optimizeCommand)
}

func runOptimizeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("a resume file is required (--resume or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("a job description is required (--job or --job-url)")
	}

	resumeText, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jobText, err := loadJobDescription(ctx, cfg)
	if err != nil {
		return err
	}

	engine, err := optimizer.New()
	if err != nil {
		return fmt.Errorf("failed to create optimizer: %w", err)
	}

	doc := parsing.ParseDocument(string(resumeText))
	optimized, report, err := engine.Optimize(doc, jobText, cfg.Settings())
	if err != nil {
		return fmt.Errorf("optimization failed: %w", err)
	}

	output := parsing.RenderText(optimized)
	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Println(output)
	}

	printReport(report, cfg.Verbose)
	return nil
}

// loadMergedConfig builds the effective config: flags the user explicitly
// set win, the config file fills everything else.
func loadMergedConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if cmd.Flags().Changed("resume") {
		cfg.Resume = optResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = optJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = optJobURL
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = optOutput
	}
	if cmd.Flags().Changed("max-keywords") {
		cfg.MaxKeywords = optMaxKeywords
	}
	if cmd.Flags().Changed("density-limit") {
		cfg.DensityLimit = optDensityLimit
	}
	cfg.UseBrowser = optUseBrowser
	cfg.Verbose = optVerbose

	if optConfigPath != "" {
		loaded, err := config.LoadConfig(optConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*loaded)
		// MergeWithDefaults leaves bools alone; a true in the file only
		// applies when the flag was not given.
		if !cmd.Flags().Changed("use-browser") && loaded.UseBrowser {
			cfg.UseBrowser = true
		}
		if !cmd.Flags().Changed("verbose") && loaded.Verbose {
			cfg.Verbose = true
		}
		if cfg.Verbose {
			fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", optConfigPath)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadJobDescription reads the job description from a file or fetches it
// from a URL.
func loadJobDescription(ctx context.Context, cfg config.Config) (string, error) {
	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	text, err := fetch.JobDescription(fetchCtx, cfg.JobURL, fetch.Options{UseBrowser: cfg.UseBrowser})
	if err != nil {
		return "", fmt.Errorf("failed to fetch job description: %w", err)
	}
	return text, nil
}

// printReport writes a run summary to stderr so it never mixes with the
// optimized resume on stdout.
func printReport(report *types.Report, verbose bool) {
	fmt.Fprintf(os.Stderr, "Inserted %d keyword(s)\n", report.KeywordsAdded)
	for label, count := range report.PerSectionCounts {
		fmt.Fprintf(os.Stderr, "  %s: %d\n", label, count)
	}
	for _, warning := range report.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
	if verbose {
		for _, record := range report.Records {
			fmt.Fprintf(os.Stderr, "  [%s] %q via %s: %s\n", record.Section, record.Keyword.DisplayTerm, record.Strategy, record.Delta)
		}
	}
}
