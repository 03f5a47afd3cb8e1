// Package llm provides clients for the external AI collaborator that
// assigns category labels to files.
package llm

import (
	"context"
	"time"
)

// Client defines the interface for AI providers.
type Client interface {
	// Classify asks the provider for a category verdict. The returned
	// label is raw provider output; vocabulary sanitation happens in the
	// classification engine.
	Classify(ctx context.Context, req Request) (Response, error)
}

// Request is one classification call: a prompt pair plus the two-valued
// effort hint. ThinkingEnabled maps to the provider's dynamic-effort mode;
// false disables extended reasoning entirely.
type Request struct {
	System          string
	Prompt          string
	ThinkingEnabled bool
}

// Response is the provider's verdict for a single file.
type Response struct {
	Category  string
	Reasoning string
}

// Config holds configuration for AI clients.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	MaxRetries  int
	RateLimit   int
	RetryDelay  time.Duration
	Timeout     time.Duration
	Temperature float32
	MaxTokens   int
}
