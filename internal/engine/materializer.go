package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/janasetu/janasetu/internal/common"
	"github.com/janasetu/janasetu/internal/heuristic"
	"github.com/janasetu/janasetu/internal/lang"
	"github.com/janasetu/janasetu/internal/model"
	"github.com/janasetu/janasetu/internal/reply"
)

// placeholderLocation is stored when the message carried no location hint.
const placeholderLocation = "To be confirmed"

// ShouldCreateRequest reports whether a category materializes a formal
// service request. Emergencies are surfaced with urgent priority in chat
// but are not modeled as typed requests.
func ShouldCreateRequest(category model.Category) bool {
	switch category {
	case model.CategoryBloodRequest, model.CategoryElderSupport, model.CategoryComplaint:
		return true
	case model.CategoryEmergency, model.CategoryGeneralInquiry:
		return false
	}
	return false
}

// BuildRequest converts a classified message into a SynthesizedRequest,
// populating type-specific defaults. Caller must have checked
// ShouldCreateRequest first.
func BuildRequest(msg model.InboundMessage, language model.Language, result model.ClassificationResult, entities model.ExtractedEntities) model.SynthesizedRequest {
	normalized := lang.NormalizeEnglish(msg.Text, language)

	request := model.SynthesizedRequest{
		ID:              uuid.NewString(),
		SourceMessageID: msg.ID,
		UserID:          msg.UserID,
		Type:            result.Category,
		Title:           reply.Title(result.Category, msg.Text, result.Priority, entities),
		Description:     reply.Description(normalized),
		Priority:        result.Priority,
		Status:          model.StatusPending,
		Location:        entities.LocationHint,
		CreatedAt:       time.Now().UTC(),
	}

	if request.Location == "" {
		request.Location = placeholderLocation
	}

	switch result.Category {
	case model.CategoryBloodRequest:
		request.BloodType = entities.BloodType
		if request.BloodType == "" {
			request.BloodType = heuristic.BloodTypeUnspecified
		}
	case model.CategoryComplaint:
		request.ComplaintBucket = entities.ComplaintCategory
		if request.ComplaintBucket == "" {
			request.ComplaintBucket = model.ComplaintOther
		}
	case model.CategoryElderSupport:
		request.ServiceType = entities.ServiceType
		due := time.Now().UTC().Add(24 * time.Hour)
		request.DueDate = &due
	case model.CategoryEmergency, model.CategoryGeneralInquiry:
	}

	return request
}

// materialize persists a built request from the background worker with a
// short bounded retry. Failure is logged only; the reply has already been
// sent and must not be affected.
func (e *Engine) materialize(ctx context.Context, request model.SynthesizedRequest) {
	err := common.WithRetry(ctx, func() error {
		if err := e.store.SaveServiceRequest(ctx, &request); err != nil {
			return &common.RetryableError{Err: err, Retryable: true}
		}
		return nil
	}, common.RetryOptions{MaxAttempts: 3, InitialDelay: 200 * time.Millisecond, MaxDelay: 2 * time.Second})
	if err != nil {
		e.logger.Error("failed to materialize service request",
			"request_id", request.ID,
			"source_message_id", request.SourceMessageID,
			"type", request.Type,
			"error", err)
		return
	}

	e.logger.Info("service request created",
		"request_id", request.ID,
		"type", request.Type,
		"priority", request.Priority)
}
