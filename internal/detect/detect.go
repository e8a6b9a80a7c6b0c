package detect

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/readcoil/strictstrings/internal/model"
)

// Language identifies one of the candidate languages a detector can score.
type Language string

// Candidate languages covered by the bundled detectors.
const (
	English Language = "english"
	French  Language = "french"
	German  Language = "german"
	Spanish Language = "spanish"
	Russian Language = "russian"
	Chinese Language = "chinese"
)

// AllLanguages lists every language a detector can be asked to score.
var AllLanguages = []Language{English, French, German, Spanish, Russian, Chinese}

// ParseLanguage resolves a language name from config or flags.
func ParseLanguage(name string) (Language, error) {
	switch lang := Language(strings.ToLower(strings.TrimSpace(name))); lang {
	case English, French, German, Spanish, Russian, Chinese:
		return lang, nil
	default:
		return "", fmt.Errorf("unknown language: %q (supported: %s)", name, joinLanguages(AllLanguages))
	}
}

func joinLanguages(languages []Language) string {
	names := make([]string, len(languages))
	for i, lang := range languages {
		names[i] = string(lang)
	}
	return strings.Join(names, ", ")
}

// Detector scores how plausible it is that a string is readable text in
// each of its candidate languages.
type Detector interface {
	// Name returns the detector name
	Name() string

	// Languages returns the candidate set this detector scores
	Languages() []Language

	// Scores returns a confidence in [0, 1] per candidate language.
	// Every candidate appears in the map; absent evidence scores 0.
	Scores(ctx context.Context, text string) (map[Language]float64, error)
}

// Config holds detector configuration
type Config struct {
	// Provider name: "lingua", "gibber", "openai", "anthropic", "ollama"
	Provider string

	// Target is the language the filter keeps
	Target Language

	// Languages is the candidate set detectors score against
	Languages []Language

	// GibberModel is the path to a trained gibberdet model file
	GibberModel string

	// Model name for LLM providers (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// Rate limit applied to remote providers
	RequestsPerSecond float64
	BurstSize         int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// ConfigFromModel converts model.DetectConfig to detect.Config, parsing
// the language names up front so bad config fails before any scan work.
func ConfigFromModel(mc model.DetectConfig) (Config, error) {
	languages := make([]Language, 0, len(mc.Languages))
	seen := make(map[Language]bool)
	for _, name := range mc.Languages {
		lang, err := ParseLanguage(name)
		if err != nil {
			return Config{}, err
		}
		if seen[lang] {
			continue
		}
		seen[lang] = true
		languages = append(languages, lang)
	}
	if len(languages) == 0 {
		languages = append([]Language(nil), AllLanguages...)
	}

	target, err := ParseLanguage(mc.Target)
	if err != nil {
		return Config{}, fmt.Errorf("target language: %w", err)
	}

	found := false
	for _, lang := range languages {
		if lang == target {
			found = true
			break
		}
	}
	if !found {
		return Config{}, fmt.Errorf("target language %s is not among the candidates (%s)", target, joinLanguages(languages))
	}

	return Config{
		Provider:          mc.Provider,
		Target:            target,
		Languages:         languages,
		GibberModel:       mc.GibberModel,
		Model:             mc.Model,
		APIKey:            mc.APIKey,
		BaseURL:           mc.BaseURL,
		Timeout:           mc.Timeout,
		RequestsPerSecond: mc.RequestsPerSecond,
		BurstSize:         mc.BurstSize,
		HTTPProxy:         mc.HTTPProxy,
		HTTPSProxy:        mc.HTTPSProxy,
		NoProxy:           mc.NoProxy,
	}, nil
}

// newRequestLimiter builds the rate limiter shared by the remote
// providers. Zero values fall back to a slow default so a missing config
// never hammers an endpoint.
func newRequestLimiter(requestsPerSecond float64, burst int) *rate.Limiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 2
	}
	if burst <= 0 {
		burst = 5
	}
	return rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}

func requestTimeout(seconds int, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
