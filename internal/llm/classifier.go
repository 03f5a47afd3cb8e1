package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alejandrosb8/Smart-Desktop/internal/common"
)

// Classifier wraps a raw Client with rate limiting, per-call timeouts and
// retry behavior. The classification engine talks to this, never to a raw
// client.
type Classifier struct {
	client      Client
	logger      *slog.Logger
	rateLimiter *rateLimiter
	retryOpts   common.RetryOptions
	timeout     time.Duration
}

// NewClassifier creates a rate-limited, retrying classifier from the
// provider configuration.
func NewClassifier(cfg Config, logger *slog.Logger) (*Classifier, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	retryOpts := common.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 3
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Classifier{
		client:      client,
		logger:      logger,
		rateLimiter: newRateLimiter(cfg.RateLimit),
		retryOpts:   retryOpts,
		timeout:     timeout,
	}, nil
}

// Classify performs one rate-limited classification call with retries.
// A timeout on one call never affects other in-flight calls.
func (c *Classifier) Classify(ctx context.Context, req Request) (Response, error) {
	if err := c.rateLimiter.wait(ctx); err != nil {
		return Response{}, fmt.Errorf("rate limit error: %w", err)
	}

	var response Response

	err := common.WithRetry(ctx, func() error {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		resp, err := c.client.Classify(callCtx, req)
		if err != nil {
			c.logger.Warn("classification attempt failed", "error", err)
			return &common.RetryableError{Err: err, Retryable: true}
		}

		response = resp
		return nil
	}, c.retryOpts)

	if err != nil {
		return Response{}, fmt.Errorf("classification call failed: %w", err)
	}

	return response, nil
}

// Close stops background goroutines and cleans up resources.
func (c *Classifier) Close() error {
	if c.rateLimiter != nil {
		c.rateLimiter.Close()
	}
	return nil
}
