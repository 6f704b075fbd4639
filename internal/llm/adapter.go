package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/janasetu/janasetu/internal/model"
)

// Adapter fronts a provider client with the quota circuit breaker. It is
// the only component that talks to the upstream service.
type Adapter struct {
	client  Client
	breaker *QuotaBreaker
	logger  *slog.Logger
}

// NewAdapter wraps a provider client built from cfg.
func NewAdapter(cfg Config, logger *slog.Logger) (*Adapter, error) {
	var client Client
	var err error

	switch strings.ToLower(cfg.Provider) {
	case "gemini", "":
		client, err = newGeminiClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &Adapter{
		client:  client,
		breaker: NewQuotaBreaker(),
		logger:  logger,
	}, nil
}

// NewAdapterWithClient wraps an existing client; used by tests and by the
// engine's mock wiring.
func NewAdapterWithClient(client Client, breaker *QuotaBreaker, logger *slog.Logger) *Adapter {
	if breaker == nil {
		breaker = NewQuotaBreaker()
	}
	return &Adapter{client: client, breaker: breaker, logger: logger}
}

// Available reports whether the breaker currently permits upstream calls.
func (a *Adapter) Available() bool {
	return !a.breaker.Open()
}

// Classify calls the upstream model unless the breaker is open. A
// rate-limit-class error trips the breaker; every other failure is a
// single-call failure the caller handles by degrading to heuristics.
func (a *Adapter) Classify(ctx context.Context, text string, language model.Language) (ClassificationResponse, error) {
	if !a.breaker.Allow() {
		return ClassificationResponse{}, fmt.Errorf("quota breaker open: %w", errShortCircuit)
	}

	resp, err := a.client.Classify(ctx, text, language)
	if err != nil {
		var rateLimitErr *RateLimitError
		if errors.As(err, &rateLimitErr) {
			a.breaker.Trip(rateLimitErr.RetryAfter)
		} else {
			a.logger.Warn("upstream classification failed",
				"error", err,
				"language", language)
		}
		return ClassificationResponse{}, err
	}

	return resp, nil
}

var errShortCircuit = errors.New("upstream short-circuited")
