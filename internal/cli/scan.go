package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/readcoil/strictstrings/internal/model"
	"github.com/readcoil/strictstrings/internal/pipeline"
	"github.com/readcoil/strictstrings/internal/report"
)

var (
	outFile       string
	langThreshold float64
	simThreshold  float64
	minLength     int
	maxLength     int
	wsLength      int
	logDir        string
	printBytes    bool
	detector      string
	targetLang    string
	gibberModel   string
	llmModel      string
	noCache       bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Extract and strictly filter strings from a file",
	Long: `Scan extracts printable strings from a file and runs them through the
full filter chain:
- Length bounds and UTF-8 validity
- Whitespace density for long strings
- Language plausibility scoring
- Impossible letter pairs
- Near-duplicate removal

The surviving strings are printed to stdout, one per line.

Example:
  strictstrings scan ./sample.bin
  strictstrings scan ./firmware.img -m 8 -M 120 -o strings.txt
  strictstrings scan ./dump.bin --detector openai --llm-model gpt-4o
  strictstrings scan ./dump.bin -l ./rejects -b`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Filter flags
	scanCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file for the final strings")
	scanCmd.Flags().Float64VarP(&langThreshold, "language", "t", 0.5, "language detection threshold")
	scanCmd.Flags().Float64VarP(&simThreshold, "similarity", "s", 0.8, "similarity filtering threshold")
	scanCmd.Flags().IntVarP(&minLength, "min", "m", 6, "minimum length of strings to process")
	scanCmd.Flags().IntVarP(&maxLength, "max", "M", 200, "maximum length of strings to process")
	scanCmd.Flags().IntVarP(&wsLength, "wslen", "W", 30, "maximum length of strings without whitespace")
	scanCmd.Flags().StringVarP(&logDir, "logs", "l", "", "output filtered values to log directory")
	scanCmd.Flags().BoolVarP(&printBytes, "bytes", "b", false, "print byte representation after strings")

	// Detector flags
	scanCmd.Flags().StringVar(&detector, "detector", "lingua", "language detector (lingua, gibber, openai, anthropic, ollama)")
	scanCmd.Flags().StringVar(&targetLang, "target", "english", "target language for the plausibility filter")
	scanCmd.Flags().StringVar(&gibberModel, "gibber-model", "", "path to a trained gibber model file")
	scanCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (empty picks the provider default)")
	scanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the language score cache")
}

// flagConfig builds a configuration from the shared flag variables
func flagConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Scan.MinLength = minLength
	cfg.Scan.MaxLength = maxLength
	cfg.Filter.WhitespaceLength = wsLength
	cfg.Detect.Provider = detector
	cfg.Detect.Target = targetLang
	cfg.Detect.Threshold = langThreshold
	cfg.Detect.GibberModel = gibberModel
	cfg.Detect.Model = llmModel
	cfg.Dedupe.Threshold = simThreshold
	cfg.Cache.Enabled = !noCache
	cfg.Output.Quiet = quiet
	cfg.Output.Verbose = verbose
	return cfg
}

func runScan(cmd *cobra.Command, args []string) error {
	path := args[0]

	// Build configuration from flags
	cfg := flagConfig()
	cfg.Output.Bytes = printBytes
	cfg.Output.Out = outFile
	cfg.Output.LogDir = logDir

	if err := applyDetectorEnv(cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	w := report.NewWriter(cfg.Output)
	w.PrintBanner(cfg, path)

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	rep, scanErr := p.ScanFile(context.Background(), path)
	if scanErr != nil && !errors.Is(scanErr, pipeline.ErrNoStrings) {
		return fmt.Errorf("scan failed: %w", scanErr)
	}

	// Reject logs cover the stages that ran, even on an empty result
	if cfg.Output.LogDir != "" && rep != nil {
		if err := report.WriteRejectLogs(cfg.Output.LogDir, rep.Rejects); err != nil {
			return err
		}
		log.Debug().
			Str("dir", cfg.Output.LogDir).
			Int("rejected", rep.Rejects.Total()).
			Msg("Reject logs written")
	}

	if scanErr != nil {
		if !quiet {
			fmt.Fprintln(os.Stderr, "No strings found.")
		}
		return scanErr
	}

	return w.Render(rep)
}

// applyDetectorEnv pulls API keys and base URLs for remote detectors
// from the environment.
func applyDetectorEnv(cfg *model.Config) error {
	switch cfg.Detect.Provider {
	case "openai":
		cfg.Detect.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Detect.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.Detect.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.Detect.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.Detect.BaseURL = baseURL
		}
	}
	return nil
}
