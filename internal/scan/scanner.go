package scan

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Scanner extracts human-readable candidate strings from raw bytes.
// It accumulates runs of text-like bytes, flushes a run whenever any
// other byte value appears, and keeps the trimmed lines of each run
// that decode as UTF-8 and fall within the configured length bounds.
type Scanner struct {
	minLength int
	maxLength int

	// BufferSize is the read chunk size. Runs survive chunk
	// boundaries, so the value only affects throughput.
	BufferSize int

	// CaptureRejects records trimmed lines that fail the length
	// bounds, for the reject log.
	CaptureRejects bool
}

// NewScanner creates a scanner with inclusive length bounds
func NewScanner(minLength, maxLength int) *Scanner {
	return &Scanner{
		minLength:  minLength,
		maxLength:  maxLength,
		BufferSize: 1 << 20,
	}
}

// Result holds the outcome of a scan
type Result struct {
	// Strings are the unique candidates in first-seen order
	Strings []string

	// Rejected are the unique trimmed lines that failed the length
	// bounds. Only populated when CaptureRejects is set.
	Rejected []string

	// BytesRead is the total input size consumed
	BytesRead int64
}

// Scan reads r to EOF and extracts candidate strings
func (s *Scanner) Scan(ctx context.Context, r io.Reader) (*Result, error) {
	size := s.BufferSize
	if size <= 0 {
		size = 1 << 20
	}

	res := &Result{}
	buf := make([]byte, size)
	run := make([]byte, 0, 256)
	seen := make(map[string]bool)
	rejectSeen := make(map[string]bool)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := r.Read(buf)
		if n > 0 {
			res.BytesRead += int64(n)
			for _, b := range buf[:n] {
				if printable(b) {
					run = append(run, b)
				} else {
					run = s.flush(run, res, seen, rejectSeen)
				}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
	}

	// Terminal flush for data not followed by a non-printable byte
	s.flush(run, res, seen, rejectSeen)

	return res, nil
}

// flush converts the accumulated run into candidate strings and
// returns the emptied run buffer. Runs that are not valid UTF-8 are
// dropped whole, without being recorded anywhere.
func (s *Scanner) flush(run []byte, res *Result, seen, rejectSeen map[string]bool) []byte {
	if len(run) == 0 {
		return run
	}
	if !utf8.Valid(run) {
		return run[:0]
	}

	// Both CR and LF split a run, so CRLF yields an empty piece.
	text := strings.ReplaceAll(string(run), "\r", "\n")
	for _, line := range strings.Split(text, "\n") {
		cleaned := strings.TrimSpace(line)
		if cleaned != "" && len(cleaned) >= s.minLength && len(cleaned) <= s.maxLength {
			if !seen[cleaned] {
				seen[cleaned] = true
				res.Strings = append(res.Strings, cleaned)
			}
		} else if s.CaptureRejects && !rejectSeen[cleaned] {
			rejectSeen[cleaned] = true
			res.Rejected = append(res.Rejected, cleaned)
		}
	}
	return run[:0]
}

// printable reports whether b belongs to a text run: printable ASCII,
// tab, LF or CR
func printable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\t' || b == '\n' || b == '\r'
}
