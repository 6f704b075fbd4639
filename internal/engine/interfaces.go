package engine

import (
	"context"

	"github.com/janasetu/janasetu/internal/llm"
	"github.com/janasetu/janasetu/internal/model"
)

// UpstreamClassifier is the AI adapter boundary. The concrete type is
// llm.Adapter; tests substitute mocks.
type UpstreamClassifier interface {
	Classify(ctx context.Context, text string, language model.Language) (llm.ClassificationResponse, error)
}
