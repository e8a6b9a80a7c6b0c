package model

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Config holds the complete runtime configuration
type Config struct {
	Scan        ScanConfig        `yaml:"scan"`
	Filter      FilterConfig      `yaml:"filter"`
	Detect      DetectConfig      `yaml:"detect"`
	Dedupe      DedupeConfig      `yaml:"dedupe"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// ScanConfig controls candidate extraction from raw bytes
type ScanConfig struct {
	// MinLength is the inclusive lower bound on kept string length
	MinLength int `yaml:"min_length"`

	// MaxLength is the inclusive upper bound on kept string length
	MaxLength int `yaml:"max_length"`

	// BufferSize is the read chunk size in bytes
	BufferSize int `yaml:"buffer_size"`
}

// FilterConfig controls the whitespace density filter
type FilterConfig struct {
	// WhitespaceLength is the length at or above which a string must
	// contain whitespace (or an encoded whitespace marker) to survive
	WhitespaceLength int `yaml:"wslen"`
}

// DetectConfig controls the language plausibility oracle
type DetectConfig struct {
	// Provider name: "lingua", "gibber", "openai", "anthropic", "ollama"
	Provider string `yaml:"provider"`

	// Target is the language whose confidence is compared to Threshold
	Target string `yaml:"target"`

	// Threshold is the exclusive lower bound on target confidence
	Threshold float64 `yaml:"threshold"`

	// Languages is the fixed candidate set presented to the oracle
	Languages []string `yaml:"languages"`

	// GibberModel is the path to a trained gibberdet model file
	GibberModel string `yaml:"gibber_model,omitempty"`

	// Model is the LLM model name. Empty picks a provider default;
	// the ollama provider requires an explicit model.
	Model string `yaml:"model,omitempty"`

	// APIKey for remote providers (prefer environment variables)
	APIKey string `yaml:"-"`

	// BaseURL for custom endpoints (e.g. Ollama, OpenAI-compatible gateways)
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout for provider API requests
	Timeout int `yaml:"timeout_seconds"` // seconds

	// RequestsPerSecond throttles remote providers
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	// BurstSize is the rate limiter burst allowance
	BurstSize int `yaml:"burst_size"`

	// Proxy settings for remote providers
	HTTPProxy  string `yaml:"http_proxy,omitempty"`
	HTTPSProxy string `yaml:"https_proxy,omitempty"`
	NoProxy    string `yaml:"no_proxy,omitempty"`
}

// DedupeConfig controls similarity deduplication
type DedupeConfig struct {
	// Threshold is the inclusive similarity at which two adjacent
	// strings are considered duplicates
	Threshold float64 `yaml:"threshold"`
}

// CacheConfig controls the language score cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"`
	TTL     time.Duration `yaml:"ttl"`
}

// ConcurrencyConfig controls batch parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// OutputConfig controls result presentation
type OutputConfig struct {
	// Quiet suppresses banner, progress and summary output
	Quiet bool `yaml:"quiet"`

	// Verbose enables debug logging
	Verbose bool `yaml:"verbose"`

	// Bytes renders results as a table with UTF-8 and hex byte columns
	Bytes bool `yaml:"bytes"`

	// Out is an optional file for the final strings
	Out string `yaml:"out,omitempty"`

	// LogDir is an optional directory for per-stage reject logs
	LogDir string `yaml:"log_dir,omitempty"`
}

// DefaultLanguages is the candidate set presented to the oracle when
// none is configured
var DefaultLanguages = []string{"english", "french", "german", "spanish", "russian", "chinese"}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			MinLength:  6,
			MaxLength:  200,
			BufferSize: 1 << 20,
		},
		Filter: FilterConfig{
			WhitespaceLength: 30,
		},
		Detect: DetectConfig{
			Provider:          "lingua",
			Target:            "english",
			Threshold:         0.5,
			Languages:         append([]string(nil), DefaultLanguages...),
			Timeout:           30,
			RequestsPerSecond: 2,
			BurstSize:         4,
		},
		Dedupe: DedupeConfig{
			Threshold: 0.8,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     defaultCacheDir(),
			TTL:     30 * 24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Output: OutputConfig{},
	}
}

// Validate checks configuration invariants
func (c *Config) Validate() error {
	if c.Scan.MinLength < 1 {
		return fmt.Errorf("scan.min_length must be at least 1, got %d", c.Scan.MinLength)
	}
	if c.Scan.MaxLength < c.Scan.MinLength {
		return fmt.Errorf("scan.max_length %d is below scan.min_length %d", c.Scan.MaxLength, c.Scan.MinLength)
	}
	if c.Scan.BufferSize < 1 {
		return fmt.Errorf("scan.buffer_size must be positive, got %d", c.Scan.BufferSize)
	}
	if c.Filter.WhitespaceLength < 0 {
		return fmt.Errorf("filter.wslen must not be negative, got %d", c.Filter.WhitespaceLength)
	}
	if c.Detect.Threshold < 0 || c.Detect.Threshold > 1 {
		return fmt.Errorf("detect.threshold must be within [0, 1], got %v", c.Detect.Threshold)
	}
	if c.Dedupe.Threshold < 0 || c.Dedupe.Threshold > 1 {
		return fmt.Errorf("dedupe.threshold must be within [0, 1], got %v", c.Dedupe.Threshold)
	}
	if len(c.Detect.Languages) == 0 {
		return fmt.Errorf("detect.languages must not be empty")
	}
	if c.Detect.Target == "" {
		return fmt.Errorf("detect.target must be set")
	}
	found := false
	for _, l := range c.Detect.Languages {
		if l == c.Detect.Target {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("detect.target %q is not in detect.languages", c.Detect.Target)
	}
	if c.Concurrency.Workers < 1 {
		return fmt.Errorf("concurrency.workers must be at least 1, got %d", c.Concurrency.Workers)
	}
	return nil
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".strictstrings-cache"
	}
	return filepath.Join(home, ".strictstrings", "cache")
}
