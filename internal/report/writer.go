package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/readcoil/strictstrings/internal/model"
)

// Writer renders a scan report. Final strings go to Out so they can be
// piped; banner and summary go to Err and quiet mode suppresses them.
type Writer struct {
	Out io.Writer
	Err io.Writer

	cfg model.OutputConfig
}

// NewWriter creates a writer bound to stdout and stderr
func NewWriter(cfg model.OutputConfig) *Writer {
	return &Writer{Out: os.Stdout, Err: os.Stderr, cfg: cfg}
}

// PrintBanner announces the run parameters before scanning starts
func (w *Writer) PrintBanner(cfg *model.Config, path string) {
	if w.cfg.Quiet {
		return
	}
	fmt.Fprintf(w.Err, "Processing file:         %s\n", path)
	fmt.Fprintf(w.Err, "Language Threshold:      %v\n", cfg.Detect.Threshold)
	fmt.Fprintf(w.Err, "Similarity Threshold:    %v\n", cfg.Dedupe.Threshold)
	fmt.Fprintf(w.Err, "Minimum string length:   %d\n", cfg.Scan.MinLength)
	fmt.Fprintf(w.Err, "Maximum string length:   %d\n", cfg.Scan.MaxLength)
}

// Render writes the final strings, the optional output file and, unless
// quiet, the run summary.
func (w *Writer) Render(report *model.Report) error {
	if !w.cfg.Quiet {
		fmt.Fprintf(w.Err, "Final strings: %d\n\n", len(report.Final))
	}

	if w.cfg.Bytes {
		renderTable(w.Out, report.Final)
	} else {
		for _, s := range report.Final {
			fmt.Fprintln(w.Out, s)
		}
	}

	if w.cfg.Out != "" {
		if err := WriteStrings(w.cfg.Out, report.Final); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
	}

	w.printSummary(report)
	return nil
}

func (w *Writer) printSummary(report *model.Report) {
	if w.cfg.Quiet {
		return
	}
	fmt.Fprintf(w.Err, "\nUnique Strings:           %d\n", report.Candidates)
	fmt.Fprintf(w.Err, "Whitespace Filtered:      %d\n", report.AfterWhitespace)
	fmt.Fprintf(w.Err, "Language Filtered:        %d\n", report.AfterLanguage)
	fmt.Fprintf(w.Err, "Ngram Filtered:           %d\n", report.AfterNgram)
	fmt.Fprintf(w.Err, "Levenshtein Filtered:     %d\n", len(report.Final))
	fmt.Fprintf(w.Err, "\nExecution time: %v\n", report.Duration)
}

// WriteStrings writes the strings newline-separated to path
func WriteStrings(path string, lines []string) error {
	var buf strings.Builder
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(buf.String()), 0o644)
}
