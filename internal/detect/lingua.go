package detect

import (
	"context"
	"fmt"

	"github.com/pemistahl/lingua-go"
)

// LinguaDetector scores strings with lingua's offline n-gram models.
type LinguaDetector struct {
	detector  lingua.LanguageDetector
	languages []Language
}

// NewLingua builds the offline detector over the configured candidate set
func NewLingua(config Config) (*LinguaDetector, error) {
	if len(config.Languages) == 0 {
		return nil, fmt.Errorf("lingua detector needs at least one candidate language")
	}

	candidates := make([]lingua.Language, 0, len(config.Languages))
	for _, lang := range config.Languages {
		mapped, err := toLingua(lang)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, mapped)
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(candidates...).
		Build()

	return &LinguaDetector{
		detector:  detector,
		languages: config.Languages,
	}, nil
}

// Name returns the provider name
func (d *LinguaDetector) Name() string {
	return "lingua"
}

// Languages returns the candidate set
func (d *LinguaDetector) Languages() []Language {
	return d.languages
}

// Scores computes relative confidence values across the candidate set.
// The models ship with the binary, so this never needs the context.
func (d *LinguaDetector) Scores(_ context.Context, text string) (map[Language]float64, error) {
	scores := make(map[Language]float64, len(d.languages))
	for _, lang := range d.languages {
		scores[lang] = 0
	}

	for _, cv := range d.detector.ComputeLanguageConfidenceValues(text) {
		if lang, ok := fromLingua(cv.Language()); ok {
			scores[lang] = cv.Value()
		}
	}

	return scores, nil
}

func toLingua(lang Language) (lingua.Language, error) {
	switch lang {
	case English:
		return lingua.English, nil
	case French:
		return lingua.French, nil
	case German:
		return lingua.German, nil
	case Spanish:
		return lingua.Spanish, nil
	case Russian:
		return lingua.Russian, nil
	case Chinese:
		return lingua.Chinese, nil
	default:
		return lingua.Unknown, fmt.Errorf("no lingua model for language: %s", lang)
	}
}

func fromLingua(lang lingua.Language) (Language, bool) {
	switch lang {
	case lingua.English:
		return English, true
	case lingua.French:
		return French, true
	case lingua.German:
		return German, true
	case lingua.Spanish:
		return Spanish, true
	case lingua.Russian:
		return Russian, true
	case lingua.Chinese:
		return Chinese, true
	default:
		return "", false
	}
}
