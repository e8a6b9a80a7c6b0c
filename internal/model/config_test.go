package model

import (
	"strings"
	"testing"
)

func TestDefaultConfig_Validates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestConfig_Validate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero min length",
			mutate:  func(c *Config) { c.Scan.MinLength = 0 },
			wantErr: "scan.min_length",
		},
		{
			name:    "max below min",
			mutate:  func(c *Config) { c.Scan.MinLength = 10; c.Scan.MaxLength = 5 },
			wantErr: "scan.max_length",
		},
		{
			name:    "zero buffer size",
			mutate:  func(c *Config) { c.Scan.BufferSize = 0 },
			wantErr: "scan.buffer_size",
		},
		{
			name:    "negative whitespace length",
			mutate:  func(c *Config) { c.Filter.WhitespaceLength = -1 },
			wantErr: "filter.wslen",
		},
		{
			name:    "language threshold above one",
			mutate:  func(c *Config) { c.Detect.Threshold = 1.5 },
			wantErr: "detect.threshold",
		},
		{
			name:    "negative similarity threshold",
			mutate:  func(c *Config) { c.Dedupe.Threshold = -0.1 },
			wantErr: "dedupe.threshold",
		},
		{
			name:    "no candidate languages",
			mutate:  func(c *Config) { c.Detect.Languages = nil },
			wantErr: "detect.languages",
		},
		{
			name:    "no target language",
			mutate:  func(c *Config) { c.Detect.Target = "" },
			wantErr: "detect.target",
		},
		{
			name:    "target outside candidates",
			mutate:  func(c *Config) { c.Detect.Target = "english"; c.Detect.Languages = []string{"french"} },
			wantErr: "not in detect.languages",
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Concurrency.Workers = 0 },
			wantErr: "concurrency.workers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}
