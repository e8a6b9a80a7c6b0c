package model

import "time"

// Report represents the complete outcome of one extraction run
type Report struct {
	Input     string    `json:"input"`      // Path that was scanned
	SizeBytes int64     `json:"size_bytes"` // Raw input size
	ScannedAt time.Time `json:"scanned_at"` // When the run started

	Candidates      int `json:"candidates"`       // Unique strings after the byte scan
	AfterWhitespace int `json:"after_whitespace"` // Survivors of the density filter
	AfterLanguage   int `json:"after_language"`   // Survivors of the plausibility filter
	AfterNgram      int `json:"after_ngram"`      // Survivors of the letter-pair filter

	Final []string `json:"final"` // Deduplicated result set, case-insensitive order

	Rejects  Rejects       `json:"rejects,omitempty"` // Per-stage rejected strings (only captured when reject logging is on)
	Duration time.Duration `json:"duration"`
}

// Rejects collects the strings each stage dropped. Field names follow
// the reject log files they are written to.
type Rejects struct {
	Length     []string `json:"length,omitempty"`     // outside [min, max] after trimming
	Whitespace []string `json:"whitespace,omitempty"` // long strings with no whitespace or marker
	Language   []string `json:"language,omitempty"`   // target confidence at or below threshold
	Ngram      []string `json:"ngram,omitempty"`      // contained a denylisted letter pair
	Leven      []string `json:"leven,omitempty"`      // near-duplicate of a kept string
}

// Total returns the number of rejected strings across all stages.
func (r Rejects) Total() int {
	return len(r.Length) + len(r.Whitespace) + len(r.Language) + len(r.Ngram) + len(r.Leven)
}
