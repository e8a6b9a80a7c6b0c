package filter

import (
	"strings"
	"unicode"
)

// encodedMarkers are percent-encoded whitespace and separator tokens
// that count as whitespace for the density check. Matching is
// case-sensitive: lowercase encodings do not qualify.
var encodedMarkers = []string{
	"%20",    // space
	"%09",    // tab
	"%0A",    // newline
	"%0D%0A", // CRLF
	"%0D",    // carriage return
	"%0C",    // form feed
	"%5C",    // backslash
	"%3E",    // >
	"%3C",    // <
	"%3A",    // colon
	"%2F",    // slash
}

// Whitespace drops long strings that carry no whitespace at all.
// Extracted runs of that shape are almost always packed binary data
// rather than text. Short strings pass unconditionally.
type Whitespace struct {
	// MinLength is the length at or above which the whitespace
	// requirement applies
	MinLength int
}

// NewWhitespace creates a whitespace density filter
func NewWhitespace(minLength int) *Whitespace {
	return &Whitespace{MinLength: minLength}
}

// Keep reports whether s survives the filter
func (f *Whitespace) Keep(s string) bool {
	if len(s) < f.MinLength {
		return true
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			return true
		}
	}
	for _, m := range encodedMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// Partition splits in into survivors and rejects, preserving order
func (f *Whitespace) Partition(in []string) (kept, rejected []string) {
	for _, s := range in {
		if f.Keep(s) {
			kept = append(kept, s)
		} else {
			rejected = append(rejected, s)
		}
	}
	return kept, rejected
}
