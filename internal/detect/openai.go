package detect

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

// OpenAIDetector scores strings through OpenAI's Chat Completions API
type OpenAIDetector struct {
	client    *openai.Client
	limiter   *rate.Limiter
	config    Config
	languages []Language
}

// NewOpenAI creates a new OpenAI-backed detector
func NewOpenAI(config Config) (*OpenAIDetector, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIDetector{
		client:    openai.NewClientWithConfig(clientConfig),
		limiter:   newRequestLimiter(config.RequestsPerSecond, config.BurstSize),
		config:    config,
		languages: config.Languages,
	}, nil
}

// Name returns the provider name
func (d *OpenAIDetector) Name() string {
	return "openai"
}

// Languages returns the candidate set
func (d *OpenAIDetector) Languages() []Language {
	return d.languages
}

// Scores asks the chat model for a per-language score object
func (d *OpenAIDetector) Scores(ctx context.Context, text string) (map[Language]float64, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	model := d.config.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, requestTimeout(d.config.Timeout, 30*time.Second))
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: scoreSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: scorePrompt(d.languages, text),
			},
		},
		MaxTokens:   200,
		Temperature: 0.1, // Scoring wants repeatable output
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := d.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	return parseScores(strings.TrimSpace(resp.Choices[0].Message.Content), d.languages)
}
