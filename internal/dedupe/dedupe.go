package dedupe

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// SimilarityFunc scores how alike two strings are on a [0, 1] scale,
// where 1 means identical.
type SimilarityFunc func(a, b string) float64

// NormalizedLevenshtein returns 1 - distance/length, with distance and
// length both counted in runes and length taken from the longer string.
// Two empty strings are identical.
func NormalizedLevenshtein(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// Deduper collapses near-duplicate strings. Sorting case-insensitively
// first puts the usual binary-file near-duplicates (version suffixes,
// counter tails) next to each other, so a single pairwise pass over
// neighbors catches them without comparing every pair.
type Deduper struct {
	threshold  float64
	similarity SimilarityFunc
}

// NewDeduper creates a deduper. A nil similarity falls back to
// NormalizedLevenshtein.
func NewDeduper(threshold float64, similarity SimilarityFunc) *Deduper {
	if similarity == nil {
		similarity = NormalizedLevenshtein
	}
	return &Deduper{
		threshold:  threshold,
		similarity: similarity,
	}
}

// Reduce collapses near-duplicates out of in, returning the survivors
// sorted case-insensitively plus the dropped strings. A neighbor whose
// similarity to the current survivor is at or above the threshold drops;
// the survivor keeps absorbing neighbors until one differs enough to be
// committed. The tick callback fires once per considered string.
//
// Earlier stages guarantee a non-empty candidate list; calling Reduce
// with no strings is a bug in the caller and panics.
func (d *Deduper) Reduce(in []string, tick func()) (final, dropped []string) {
	if len(in) == 0 {
		panic("dedupe: Reduce called with no strings")
	}

	sorted := append([]string(nil), in...)
	sortCaseInsensitive(sorted)

	current := sorted[0]
	if tick != nil {
		tick()
	}

	for _, next := range sorted[1:] {
		if d.similarity(current, next) >= d.threshold {
			dropped = append(dropped, next)
		} else {
			final = append(final, current)
			current = next
		}
		if tick != nil {
			tick()
		}
	}
	final = append(final, current)

	sortCaseInsensitive(final)
	return final, dropped
}

func sortCaseInsensitive(s []string) {
	sort.SliceStable(s, func(i, j int) bool {
		return strings.ToLower(s[i]) < strings.ToLower(s[j])
	})
}
