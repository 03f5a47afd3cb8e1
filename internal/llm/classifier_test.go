package llm

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrosb8/Smart-Desktop/internal/common"
)

// scriptedClient returns queued outcomes in order, repeating the last one.
type scriptedClient struct {
	outcomes []func() (Response, error)
	calls    int
}

func (s *scriptedClient) Classify(_ context.Context, _ Request) (Response, error) {
	idx := s.calls
	if idx >= len(s.outcomes) {
		idx = len(s.outcomes) - 1
	}
	s.calls++
	return s.outcomes[idx]()
}

func ok(category string) func() (Response, error) {
	return func() (Response, error) {
		return Response{Category: category}, nil
	}
}

func fail(msg string) func() (Response, error) {
	return func() (Response, error) {
		return Response{}, errors.New(msg)
	}
}

func testClassifier(client Client) *Classifier {
	c := &Classifier{
		client:      client,
		rateLimiter: newRateLimiter(1000),
		retryOpts: common.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: time.Millisecond,
			MaxDelay:     5 * time.Millisecond,
			Multiplier:   2.0,
		},
		timeout: time.Second,
		logger:  slog.Default(),
	}
	return c
}

func TestClassifierRetriesTransientFailures(t *testing.T) {
	client := &scriptedClient{outcomes: []func() (Response, error){
		fail("upstream 503"),
		fail("upstream 503"),
		ok("Documents"),
	}}

	c := testClassifier(client)
	defer func() { _ = c.Close() }()

	resp, err := c.Classify(context.Background(), Request{Prompt: "file"})
	require.NoError(t, err)
	assert.Equal(t, "Documents", resp.Category)
	assert.Equal(t, 3, client.calls)
}

func TestClassifierGivesUpAfterMaxRetries(t *testing.T) {
	client := &scriptedClient{outcomes: []func() (Response, error){
		fail("upstream down"),
	}}

	c := testClassifier(client)
	defer func() { _ = c.Close() }()

	_, err := c.Classify(context.Background(), Request{Prompt: "file"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMaxRetries)
	assert.Equal(t, 3, client.calls)
}

func TestClassifierRespectsCancellation(t *testing.T) {
	client := &scriptedClient{outcomes: []func() (Response, error){
		fail("upstream down"),
	}}

	c := testClassifier(client)
	defer func() { _ = c.Close() }()

	// Cancellation between attempts stops the retry loop.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Classify(ctx, Request{Prompt: "file"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, client.calls)
}

func TestNewClassifierRejectsUnknownProvider(t *testing.T) {
	_, err := NewClassifier(Config{Provider: "carrier-pigeon"}, nil)
	assert.Error(t, err)
}
