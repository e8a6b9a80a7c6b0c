package detect

import (
	"context"
	"fmt"
	"os"

	"github.com/shabbyrobe/gibberdet"
)

// GibberDetector scores strings with a trained gibberdet transition model.
// A model covers a single language, so only the target receives a score.
type GibberDetector struct {
	model  *gibberdet.Model
	target Language
}

// NewGibber loads a gibberdet model from the configured file
func NewGibber(config Config) (*GibberDetector, error) {
	if config.GibberModel == "" {
		return nil, fmt.Errorf("gibber detector needs a trained model file (--gibber-model)")
	}

	data, err := os.ReadFile(config.GibberModel)
	if err != nil {
		return nil, fmt.Errorf("read gibber model: %w", err)
	}

	model := new(gibberdet.Model)
	if err := model.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("load gibber model %s: %w", config.GibberModel, err)
	}

	return &GibberDetector{
		model:  model,
		target: config.Target,
	}, nil
}

// Name returns the provider name
func (d *GibberDetector) Name() string {
	return "gibber"
}

// Languages returns the single language the model was trained on
func (d *GibberDetector) Languages() []Language {
	return []Language{d.target}
}

// Scores maps the model's transition score onto the target language.
// GibberScore already lands in (0, 1] and returns 0 for strings with no
// scoreable transitions.
func (d *GibberDetector) Scores(_ context.Context, text string) (map[Language]float64, error) {
	return map[Language]float64{d.target: d.model.GibberScore(text)}, nil
}
