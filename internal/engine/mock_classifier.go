package engine

import (
	"context"
	"strings"
	"sync"

	"github.com/alejandrosb8/Smart-Desktop/internal/llm"
)

// MockClassifier is a test implementation of the Classifier interface.
// It returns deterministic verdicts based on the file extension embedded
// in the prompt and records every call it receives.
type MockClassifier struct {
	// Responses maps a substring of the prompt to a fixed response.
	Responses map[string]llm.Response
	// Errors maps a substring of the prompt to an error.
	Errors map[string]error
	// Default is returned when no substring matches.
	Default llm.Response

	calls []llm.Request
	mu    sync.Mutex
}

// NewMockClassifier creates a mock that answers Default for everything.
func NewMockClassifier(defaultCategory string) *MockClassifier {
	return &MockClassifier{
		Responses: make(map[string]llm.Response),
		Errors:    make(map[string]error),
		Default:   llm.Response{Category: defaultCategory},
	}
}

// Classify records the call and replies deterministically.
func (m *MockClassifier) Classify(_ context.Context, req llm.Request) (llm.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)

	for substr, err := range m.Errors {
		if strings.Contains(req.Prompt, substr) {
			return llm.Response{}, err
		}
	}
	for substr, resp := range m.Responses {
		if strings.Contains(req.Prompt, substr) {
			return resp, nil
		}
	}

	return m.Default, nil
}

// Calls returns a copy of the recorded requests.
func (m *MockClassifier) Calls() []llm.Request {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]llm.Request, len(m.calls))
	copy(calls, m.calls)
	return calls
}
