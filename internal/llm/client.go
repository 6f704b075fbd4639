// Package llm wraps the upstream generative-language service behind a
// narrow client interface and a quota circuit breaker.
package llm

import (
	"context"

	"github.com/janasetu/janasetu/internal/model"
)

// Client defines the interface for generative-language providers.
type Client interface {
	Classify(ctx context.Context, text string, language model.Language) (ClassificationResponse, error)
}

// ClassificationResponse contains the upstream model's parsed result.
type ClassificationResponse struct {
	Reply      string
	Category   model.Category
	Priority   model.Priority
	Confidence float64
}

// Config holds configuration for the upstream client.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	TimeoutSecs int
	Temperature float64
	MaxTokens   int
}
