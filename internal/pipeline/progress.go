package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Progress renders the per-stage progress bars on stderr. Quiet mode
// suppresses them entirely; stages receive a nil tick and skip the
// accounting.
type Progress struct {
	quiet bool
}

// NewProgress creates a progress renderer
func NewProgress(quiet bool) *Progress {
	return &Progress{quiet: quiet}
}

// FileReader wraps r with a byte-count bar sized to the input. The
// returned finish fills and terminates the bar once the scan is done.
func (p *Progress) FileReader(r io.Reader, size int64) (io.Reader, func()) {
	if p.quiet {
		return r, func() {}
	}

	bar := progressbar.NewOptions64(size,
		progressbar.OptionSetDescription("Scanning bytes"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(true),
	)

	reader := progressbar.NewReader(r, bar)
	return &reader, func() {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
}

// StageBar builds a per-item bar for a filter stage. The tick callback
// advances one item; finish terminates the bar. Both are safe no-ops in
// quiet mode or for an empty stage.
func (p *Progress) StageBar(description string, total int) (tick func(), finish func()) {
	if p.quiet || total == 0 {
		return nil, func() {}
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
	)

	return func() { _ = bar.Add(1) },
		func() {
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)
		}
}
