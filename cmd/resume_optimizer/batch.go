package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-optimizer/internal/fetch"
	"github.com/jonathan/resume-optimizer/internal/optimizer"
	"github.com/jonathan/resume-optimizer/internal/parsing"
	"github.com/jonathan/resume-optimizer/internal/types"
)

var batchCommand = &cobra.Command{
	Use:   "batch",
	Short: "Optimize every resume in a directory against one job description",
	Long:  `Runs the optimizer over all .txt files in a directory, writing each result to the output directory as <name>.optimized.txt.`,
	RunE:  runBatchCmd,
}

var (
	batchDir         string
	batchJob         string
	batchJobURL      string
	batchOutDir      string
	batchConcurrency int
	batchUseBrowser  bool
)

func init() {
	batchCommand.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory containing resume .txt files (required)")
	batchCommand.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	batchCommand.Flags().StringVar(&batchJobURL, "job-url", "", "URL to fetch job description from (mutually exclusive with --job)")
	batchCommand.Flags().StringVarP(&batchOutDir, "out-dir", "o", "", "Output directory (default: same as --dir)")
	batchCommand.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Number of resumes optimized in parallel")
	batchCommand.Flags().BoolVar(&batchUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")

	_ = batchCommand.MarkFlagRequired("dir")

	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if batchJob == "" && batchJobURL == "" {
		return fmt.Errorf("a job description is required (--job or --job-url)")
	}
	if batchJob != "" && batchJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}
	if batchConcurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1")
	}

	jobText, err := loadBatchJob(ctx)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(batchDir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	outDir := batchOutDir
	if outDir == "" {
		outDir = batchDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	engine, err := optimizer.New()
	if err != nil {
		return fmt.Errorf("failed to create optimizer: %w", err)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(batchConcurrency)

	processed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") || strings.HasSuffix(entry.Name(), ".optimized.txt") {
			continue
		}
		processed++

		name := entry.Name()
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			return optimizeOne(engine, jobText, name, outDir)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Optimized %d resume(s)\n", processed)
	return nil
}

func optimizeOne(engine *optimizer.Optimizer, jobText, name, outDir string) error {
	data, err := os.ReadFile(filepath.Join(batchDir, name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	doc := parsing.ParseDocument(string(data))
	optimized, report, err := engine.Optimize(doc, jobText, types.DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed to optimize %s: %w", name, err)
	}

	outName := strings.TrimSuffix(name, ".txt") + ".optimized.txt"
	outPath := filepath.Join(outDir, outName)
	if err := os.WriteFile(outPath, []byte(parsing.RenderText(optimized)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outName, err)
	}

	fmt.Fprintf(os.Stderr, "%s: inserted %d keyword(s)\n", name, report.KeywordsAdded)
	return nil
}

func loadBatchJob(ctx context.Context) (string, error) {
	if batchJob != "" {
		data, err := os.ReadFile(batchJob)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	text, err := fetch.JobDescription(fetchCtx, batchJobURL, fetch.Options{UseBrowser: batchUseBrowser})
	if err != nil {
		return "", fmt.Errorf("failed to fetch job description: %w", err)
	}
	return text, nil
}
