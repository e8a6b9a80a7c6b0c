package detect

import (
	"context"
	"fmt"
)

// Filter keeps strings whose target-language confidence clears a threshold.
type Filter struct {
	detector  Detector
	target    Language
	threshold float64
}

// NewFilter builds the plausibility stage. The target must be one of the
// detector's candidate languages.
func NewFilter(detector Detector, target Language, threshold float64) (*Filter, error) {
	found := false
	for _, lang := range detector.Languages() {
		if lang == target {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("target language %s is not scored by the %s detector", target, detector.Name())
	}

	return &Filter{
		detector:  detector,
		target:    target,
		threshold: threshold,
	}, nil
}

// Partition splits in into keeps and rejects. A string survives only when
// its target confidence is strictly above the threshold; ties drop. The
// tick callback fires once per scored string.
func (f *Filter) Partition(ctx context.Context, in []string, tick func()) ([]string, []string, error) {
	var kept, rejected []string
	for _, s := range in {
		scores, err := f.detector.Scores(ctx, s)
		if err != nil {
			return nil, nil, fmt.Errorf("score %q: %w", s, err)
		}

		if scores[f.target] > f.threshold {
			kept = append(kept, s)
		} else {
			rejected = append(rejected, s)
		}

		if tick != nil {
			tick()
		}
	}
	return kept, rejected, nil
}
