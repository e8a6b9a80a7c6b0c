package detect

import (
	"context"
	"testing"
)

func TestLinguaDetector_EnglishOutscoresSpanish(t *testing.T) {
	det, err := NewLingua(Config{Languages: []Language{English, Spanish}})
	if err != nil {
		t.Fatalf("NewLingua failed: %v", err)
	}

	scores, err := det.Scores(context.Background(), "the quick brown fox jumps over the lazy dog")
	if err != nil {
		t.Fatalf("Scores failed: %v", err)
	}

	if scores[English] <= scores[Spanish] {
		t.Errorf("Expected english (%v) to outscore spanish (%v)", scores[English], scores[Spanish])
	}
	for lang, score := range scores {
		if score < 0 || score > 1 {
			t.Errorf("Score for %s out of range: %v", lang, score)
		}
	}
}

func TestLinguaDetector_CoversAllConfiguredLanguages(t *testing.T) {
	det, err := NewLingua(Config{Languages: AllLanguages})
	if err != nil {
		t.Fatalf("NewLingua failed: %v", err)
	}

	scores, err := det.Scores(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Scores failed: %v", err)
	}

	if len(scores) != len(AllLanguages) {
		t.Errorf("Expected a score for each of %d languages, got %d entries", len(AllLanguages), len(scores))
	}
}

func TestNewLingua_NoLanguages(t *testing.T) {
	if _, err := NewLingua(Config{}); err == nil {
		t.Error("Expected error for empty candidate set, got nil")
	}
}
