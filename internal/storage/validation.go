package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/janasetu/janasetu/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrInvalidRecord  = errors.New("invalid chat record")
	ErrInvalidRequest = errors.New("invalid service request")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateChatRecord validates a chat record before persistence.
func validateChatRecord(record *model.ChatRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record", ErrNilParameter)
	}
	if record.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}
	if record.UserID == "" {
		return fmt.Errorf("%w: missing user id", ErrInvalidRecord)
	}
	if !record.Category.Valid() {
		return fmt.Errorf("%w: category %q", ErrInvalidRecord, record.Category)
	}
	if !record.Priority.Valid() {
		return fmt.Errorf("%w: priority %q", ErrInvalidRecord, record.Priority)
	}
	return nil
}

// validateServiceRequest validates a synthesized request before persistence.
func validateServiceRequest(request *model.SynthesizedRequest) error {
	if request == nil {
		return fmt.Errorf("%w: request", ErrNilParameter)
	}
	if request.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidRequest)
	}
	if !request.Type.Valid() {
		return fmt.Errorf("%w: type %q", ErrInvalidRequest, request.Type)
	}
	if !request.Priority.Valid() {
		return fmt.Errorf("%w: priority %q", ErrInvalidRequest, request.Priority)
	}
	if request.Title == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidRequest)
	}
	return nil
}
