package engine

import (
	"context"
	"sync"

	"github.com/janasetu/janasetu/internal/llm"
	"github.com/janasetu/janasetu/internal/model"
)

// MockLLMClient is a configurable llm.Client for tests.
type MockLLMClient struct {
	Response llm.ClassificationResponse
	Err      error
	calls    int
	mu       sync.Mutex
}

// Classify returns the configured response or error and counts the call.
func (m *MockLLMClient) Classify(_ context.Context, _ string, _ model.Language) (llm.ClassificationResponse, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.Err != nil {
		return llm.ClassificationResponse{}, m.Err
	}
	return m.Response, nil
}

// Calls reports how many times Classify was invoked.
func (m *MockLLMClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
