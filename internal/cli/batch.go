package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/readcoil/strictstrings/internal/model"
	"github.com/readcoil/strictstrings/internal/pipeline"
	"github.com/readcoil/strictstrings/internal/report"
	"github.com/readcoil/strictstrings/internal/worker"
)

var (
	concurrency int
	outputDir   string
	fileTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <path>",
	Short: "Scan multiple files in parallel",
	Long: `Batch scans many files concurrently:
- Point it at a directory to scan every regular file under it
- Point it at a manifest file with one path per line (# for comments)
- Each file runs the full filter chain inside a worker pool
- Surviving strings are written per file to the output directory

Example:
  strictstrings batch ./samples
  strictstrings batch manifest.txt --concurrency 8 --output-dir ./results
  strictstrings batch ./samples --timeout 2m --detector openai`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./strictstrings-out", "output directory for per-file results")
	batchCmd.Flags().DurationVar(&fileTimeout, "timeout", 0, "timeout per file (0 disables)")

	// Inherit filter flags from the scan command
	batchCmd.Flags().Float64VarP(&langThreshold, "language", "t", 0.5, "language detection threshold")
	batchCmd.Flags().Float64VarP(&simThreshold, "similarity", "s", 0.8, "similarity filtering threshold")
	batchCmd.Flags().IntVarP(&minLength, "min", "m", 6, "minimum length of strings to process")
	batchCmd.Flags().IntVarP(&maxLength, "max", "M", 200, "maximum length of strings to process")
	batchCmd.Flags().IntVarP(&wsLength, "wslen", "W", 30, "maximum length of strings without whitespace")

	// Detector flags
	batchCmd.Flags().StringVar(&detector, "detector", "lingua", "language detector (lingua, gibber, openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&targetLang, "target", "english", "target language for the plausibility filter")
	batchCmd.Flags().StringVar(&gibberModel, "gibber-model", "", "path to a trained gibber model file")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (empty picks the provider default)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the language score cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	target := args[0]

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  StrictStrings Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input:        %s\n", target)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	if fileTimeout > 0 {
		fmt.Fprintf(os.Stderr, "  Timeout:      %v per file\n", fileTimeout)
	}
	fmt.Fprintf(os.Stderr, "\n")

	// Workers interleave, so the shared pipeline runs without progress
	// bars or per-file reject logs.
	cfg := flagConfig()
	cfg.Output.Quiet = true
	cfg.Output.LogDir = ""
	cfg.Concurrency.Workers = concurrency

	if err := applyDetectorEnv(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Create pipeline
	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	scanFile := func(ctx context.Context, path string) (*model.Report, error) {
		if fileTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, fileTimeout)
			defer cancel()
		}
		return p.ScanFile(ctx, path)
	}

	processor := worker.NewBatchProcessor(scanFile, concurrency)

	fmt.Fprintf(os.Stderr, "⚙️  Processing files with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	results, err := processor.ProcessTarget(context.Background(), target)
	if err != nil {
		return fmt.Errorf("process %s: %w", target, err)
	}

	// Process results
	successCount := 0
	failureCount := 0
	names := make(map[string]int)

	for _, result := range results {
		if result.Err != nil {
			failureCount++
			if errors.Is(result.Err, pipeline.ErrNoStrings) {
				fmt.Fprintf(os.Stderr, "✗ %s: no strings found\n", result.Path)
			} else {
				fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Err)
			}
			continue
		}

		outPath := filepath.Join(outputDir, outputName(names, result.Path))
		if err := report.WriteStrings(outPath, result.Report.Final); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write results: %v\n", result.Path, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s (%d strings)\n", result.Path, len(result.Report.Final))
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d files\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// outputName derives a result file name from the input path, keeping
// names unique when inputs in different directories share a base name.
func outputName(seen map[string]int, path string) string {
	base := filepath.Base(path)
	seen[base]++
	if n := seen[base]; n > 1 {
		return fmt.Sprintf("%s.%d.strings.txt", base, n)
	}
	return base + ".strings.txt"
}
