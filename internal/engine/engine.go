// Package engine composes the message-understanding pipeline: language
// detection, AI classification with heuristic fallback, entity extraction,
// reply synthesis, and asynchronous request materialization.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/janasetu/janasetu/internal/common"
	"github.com/janasetu/janasetu/internal/heuristic"
	"github.com/janasetu/janasetu/internal/lang"
	"github.com/janasetu/janasetu/internal/model"
	"github.com/janasetu/janasetu/internal/reply"
	"github.com/janasetu/janasetu/internal/service"
)

// MaxMessageLength bounds inbound message text, counted in characters.
const MaxMessageLength = 2000

// lowConfidenceThreshold is the score below which an upstream result is
// cross-checked against the heuristic classifier.
const lowConfidenceThreshold = 0.4

// Outcome is the full result of processing one inbound message.
type Outcome struct {
	Result           model.ClassificationResult
	Entities         model.ExtractedEntities
	Language         model.Language
	CreatedRequestID string
}

// Engine runs the classification pipeline for inbound messages.
type Engine struct {
	upstream   UpstreamClassifier
	heuristics *heuristic.Classifier
	store      service.Storage
	queue      *TaskQueue
	logger     *slog.Logger
}

// New creates a pipeline engine. upstream may be nil when no AI provider
// is configured; every message then uses the heuristic classifier.
func New(upstream UpstreamClassifier, store service.Storage, logger *slog.Logger) *Engine {
	return &Engine{
		upstream:   upstream,
		heuristics: heuristic.NewDefaultClassifier(),
		store:      store,
		queue:      NewTaskQueue(64, logger),
		logger:     logger,
	}
}

// Process classifies one message and schedules persistence. It returns a
// best-effort result for every valid input; only validation failures
// produce an error. Upstream failures silently degrade to heuristics.
func (e *Engine) Process(ctx context.Context, msg model.InboundMessage) (Outcome, error) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return Outcome{}, fmt.Errorf("%w: message is empty", common.ErrValidation)
	}
	if utf8.RuneCountInString(msg.Text) > MaxMessageLength {
		return Outcome{}, fmt.Errorf("%w: message exceeds %d characters", common.ErrValidation, MaxMessageLength)
	}

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}

	language := lang.Resolve(msg.Language, text)
	result := e.classify(ctx, text, language)
	entities := heuristic.ExtractEntities(text, result.Category)

	if result.UsingFallback {
		result.Reply = reply.Localize(result.Category, language, entities)
	}

	outcome := Outcome{
		Result:   result,
		Entities: entities,
		Language: language,
	}

	if ShouldCreateRequest(result.Category) {
		request := BuildRequest(msg, language, result, entities)
		outcome.CreatedRequestID = request.ID
		e.queue.Enqueue(func(taskCtx context.Context) {
			e.materialize(taskCtx, request)
		})
	}

	e.scheduleChatRecord(msg, language, result)

	return outcome, nil
}

// classify runs the AI adapter when available and falls back to the
// heuristic classifier on any failure or inconclusive answer.
func (e *Engine) classify(ctx context.Context, text string, language model.Language) model.ClassificationResult {
	if e.upstream == nil {
		return e.heuristicResult(text)
	}

	resp, err := e.upstream.Classify(ctx, text, language)
	if err != nil {
		e.logger.Debug("using heuristic fallback", "error", err)
		return e.heuristicResult(text)
	}

	category, priority := resp.Category, resp.Priority

	// A generic or low-confidence answer gets cross-checked: if the rule
	// table finds a specific category, the rules win.
	if resp.Category == model.CategoryGeneralInquiry ||
		(resp.Confidence > 0 && resp.Confidence < lowConfidenceThreshold) {
		if ruleCategory := e.heuristics.Categorize(text); ruleCategory != model.CategoryGeneralInquiry {
			return e.heuristicResult(text)
		}
	}

	return model.ClassificationResult{
		Category:      category,
		Priority:      priority,
		Reply:         resp.Reply,
		Confidence:    resp.Confidence,
		UsingFallback: false,
	}
}

func (e *Engine) heuristicResult(text string) model.ClassificationResult {
	category, priority := e.heuristics.Classify(text)
	return model.ClassificationResult{
		Category:      category,
		Priority:      priority,
		UsingFallback: true,
	}
}

// scheduleChatRecord persists the exchange off the response path.
func (e *Engine) scheduleChatRecord(msg model.InboundMessage, language model.Language, result model.ClassificationResult) {
	record := model.ChatRecord{
		ID:            msg.ID,
		UserID:        msg.UserID,
		Message:       lang.NormalizeEnglish(msg.Text, language),
		Reply:         result.Reply,
		Language:      language,
		Category:      result.Category,
		Priority:      result.Priority,
		UsingFallback: result.UsingFallback,
		CreatedAt:     time.Now().UTC(),
	}

	e.queue.Enqueue(func(taskCtx context.Context) {
		if err := e.store.SaveChatRecord(taskCtx, &record); err != nil {
			e.logger.Error("failed to save chat record",
				"record_id", record.ID,
				"user_id", record.UserID,
				"error", err)
		}
	})
}

// Close flushes pending background work.
func (e *Engine) Close() {
	e.queue.Close()
}
