package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// openAIClient implements the Client interface for OpenAI-compatible APIs.
// A custom BaseURL selects compatible third-party endpoints.
type openAIClient struct {
	api         *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
}

// newOpenAIClient creates a new OpenAI-compatible API client.
func newOpenAIClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	return &openAIClient{
		api:         openai.NewClientWithConfig(apiCfg),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		timeout:     timeout,
	}, nil
}

// Classify sends a classification request to an OpenAI-compatible API.
// The effort flag maps to reasoning effort: dynamic lets the provider
// decide, off requests the cheapest setting.
func (c *openAIClient) Classify(ctx context.Context, req Request) (Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	// "low" is the closest these APIs get to reasoning off; leaving the
	// field empty lets the provider budget effort dynamically. Chat models
	// reject the parameter outright, so it is only sent to models that
	// accept it.
	if !req.ThinkingEnabled && supportsReasoningEffort(c.model) {
		chatReq.ReasoningEffort = "low"
	}

	resp, err := c.api.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return Response{}, fmt.Errorf("request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return Response{}, fmt.Errorf("no completion choices returned")
	}

	return parseVerdict(resp.Choices[0].Message.Content)
}

// supportsReasoningEffort reports whether a model accepts the
// reasoning_effort parameter. Plain chat models return 400 when it is set.
func supportsReasoningEffort(model string) bool {
	for _, prefix := range []string{"o1", "o3", "o4", "gpt-5"} {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}
