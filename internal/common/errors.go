// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Configuration errors.
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidExclusion = errors.New("invalid exclusion rule")

	// Classification errors.
	ErrClassificationFailed = errors.New("classification failed")
	ErrLabelOutOfVocabulary = errors.New("label not in permitted category set")

	// Planning errors.
	ErrCollisionUnresolved = errors.New("destination collision could not be resolved")

	// Apply/revert errors.
	ErrUnconsumedLog = errors.New("movement log from a previous run still present")
	ErrNoMovementLog = errors.New("no movement log found")

	// Retry errors.
	ErrRateLimit  = errors.New("rate limit exceeded")
	ErrMaxRetries = errors.New("max retries exceeded")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimit) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
