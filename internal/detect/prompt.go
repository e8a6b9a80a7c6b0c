package detect

import (
	"encoding/json"
	"fmt"
	"strings"
)

const scoreSystemPrompt = "You score short strings pulled out of binary files for language plausibility. Respond with JSON only."

// scorePrompt builds the scoring instruction shared by the LLM providers.
// The response contract is a bare JSON object so parseScores can stay dumb.
func scorePrompt(languages []Language, text string) string {
	return fmt.Sprintf(`Score how plausible it is that the following string is human-readable text in each candidate language.

Candidate languages: %s

RULES:
1. Score every candidate between 0.0 and 1.0.
2. Random identifiers, hashes, paths and byte salad score near 0.0 for every candidate.
3. Respond with a single JSON object mapping each candidate to its score, for example: {"english": 0.92, "french": 0.03}.
4. Do not add any text outside the JSON object.

String:
%s`, joinLanguages(languages), text)
}

// parseScores extracts the score object from an LLM reply. Models wrap the
// JSON in markdown fences or prose often enough that everything outside
// the outermost braces is ignored.
func parseScores(raw string, languages []Language) (map[Language]float64, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response: %q", raw)
	}

	var parsed map[string]float64
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("parse scores: %w", err)
	}

	scores := make(map[Language]float64, len(languages))
	for _, lang := range languages {
		scores[lang] = 0
	}
	for name, value := range parsed {
		lang, err := ParseLanguage(name)
		if err != nil {
			continue
		}
		if _, ok := scores[lang]; !ok {
			continue
		}
		scores[lang] = clamp01(value)
	}

	return scores, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
