package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/readcoil/strictstrings/internal/model"
)

func testWriter(cfg model.OutputConfig) (*Writer, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	w := NewWriter(cfg)
	w.Out = out
	w.Err = errOut
	return w, out, errOut
}

func sampleReport() *model.Report {
	return &model.Report{
		Input:           "sample.bin",
		Candidates:      10,
		AfterWhitespace: 8,
		AfterLanguage:   5,
		AfterNgram:      4,
		Final:           []string{"alpha centauri", "beta orbit"},
		Duration:        1500 * time.Millisecond,
	}
}

func TestWriter_Render_PlainStrings(t *testing.T) {
	w, out, errOut := testWriter(model.OutputConfig{})

	if err := w.Render(sampleReport()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if got := out.String(); got != "alpha centauri\nbeta orbit\n" {
		t.Errorf("Unexpected stdout: %q", got)
	}

	chrome := errOut.String()
	if !strings.Contains(chrome, "Final strings: 2") {
		t.Errorf("Expected final strings header, got %q", chrome)
	}
	if !strings.Contains(chrome, "Unique Strings:           10") {
		t.Errorf("Expected candidate count in summary, got %q", chrome)
	}
	if !strings.Contains(chrome, "Levenshtein Filtered:     2") {
		t.Errorf("Expected final count in summary, got %q", chrome)
	}
	if !strings.Contains(chrome, "Execution time: 1.5s") {
		t.Errorf("Expected execution time, got %q", chrome)
	}
}

func TestWriter_Render_QuietStillPrintsStrings(t *testing.T) {
	w, out, errOut := testWriter(model.OutputConfig{Quiet: true})

	if err := w.Render(sampleReport()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if got := out.String(); got != "alpha centauri\nbeta orbit\n" {
		t.Errorf("Unexpected stdout: %q", got)
	}
	if errOut.Len() != 0 {
		t.Errorf("Expected no stderr output under quiet, got %q", errOut.String())
	}
}

func TestWriter_Render_BytesTable(t *testing.T) {
	w, out, _ := testWriter(model.OutputConfig{Quiet: true, Bytes: true})

	if err := w.Render(sampleReport()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(strings.ToUpper(got), "UTF-8 BYTES") {
		t.Errorf("Expected table header, got %q", got)
	}
	if !strings.Contains(got, "alpha centauri") {
		t.Errorf("Expected string cell, got %q", got)
	}
	if !strings.Contains(got, "14") {
		t.Errorf("Expected byte length cell, got %q", got)
	}
	if !strings.Contains(got, "61 6c 70 68 61") {
		t.Errorf("Expected hex bytes cell, got %q", got)
	}
}

func TestWriter_Render_OutFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "strings.txt")
	w, _, _ := testWriter(model.OutputConfig{Quiet: true, Out: outFile})

	if err := w.Render(sampleReport()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if string(data) != "alpha centauri\nbeta orbit\n" {
		t.Errorf("Unexpected output file content: %q", string(data))
	}
}

func TestWriter_Render_OutFileError(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "missing", "strings.txt")
	w, _, _ := testWriter(model.OutputConfig{Quiet: true, Out: outFile})

	if err := w.Render(sampleReport()); err == nil {
		t.Fatal("Expected an error for an unwritable output file")
	}
}

func TestWriter_PrintBanner(t *testing.T) {
	cfg := model.DefaultConfig()
	w, _, errOut := testWriter(model.OutputConfig{})

	w.PrintBanner(cfg, "sample.bin")

	banner := errOut.String()
	for _, want := range []string{
		"Processing file:         sample.bin",
		"Language Threshold:      0.5",
		"Similarity Threshold:    0.8",
		"Minimum string length:   6",
		"Maximum string length:   200",
	} {
		if !strings.Contains(banner, want) {
			t.Errorf("Expected banner line %q, got %q", want, banner)
		}
	}
}

func TestWriter_PrintBanner_Quiet(t *testing.T) {
	w, _, errOut := testWriter(model.OutputConfig{Quiet: true})

	w.PrintBanner(model.DefaultConfig(), "sample.bin")

	if errOut.Len() != 0 {
		t.Errorf("Expected no banner under quiet, got %q", errOut.String())
	}
}
