package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/readcoil/strictstrings/internal/model"
)

// WriteRejectLogs writes one newline-separated file per stage under
// dir, creating the directory if needed. All five files are written
// even when empty, so a missing file never reads as a skipped stage.
func WriteRejectLogs(dir string, rejects model.Rejects) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	files := []struct {
		name  string
		lines []string
	}{
		{"filtered_by_len.txt", rejects.Length},
		{"filtered_by_whitespace.txt", rejects.Whitespace},
		{"filtered_by_lang.txt", rejects.Language},
		{"filtered_by_ngram.txt", rejects.Ngram},
		{"filtered_by_leven.txt", rejects.Leven},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := WriteStrings(path, f.lines); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
	}

	return nil
}
