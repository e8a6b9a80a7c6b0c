package detect

import (
	"fmt"
	"strings"
)

// NewDetector creates a language detector based on configuration
func NewDetector(config Config) (Detector, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "lingua", "":
		// Offline n-gram models, the default
		return NewLingua(config)

	case "gibber":
		return NewGibber(config)

	case "openai":
		return NewOpenAI(config)

	case "anthropic", "claude":
		return NewAnthropic(config)

	case "ollama":
		return NewOllama(config)

	default:
		return nil, fmt.Errorf("unknown detector: %s (supported: lingua, gibber, openai, anthropic, ollama)", config.Provider)
	}
}
