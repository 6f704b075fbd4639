// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/janasetu/janasetu/internal/model"
)

// RequestFilter defines filtering options for service-request queries.
type RequestFilter struct {
	UserID string
	Type   model.Category
	Status model.RequestStatus
	Limit  int
	Offset int
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Chat log operations
	SaveChatRecord(ctx context.Context, record *model.ChatRecord) error
	ListChatRecords(ctx context.Context, userID string, limit int) ([]model.ChatRecord, error)
	AllChatRecords(ctx context.Context) ([]model.ChatRecord, error)
	UpdateChatClassification(ctx context.Context, id string, category model.Category, priority model.Priority) error

	// Service request operations
	SaveServiceRequest(ctx context.Context, request *model.SynthesizedRequest) error
	GetServiceRequest(ctx context.Context, id string) (*model.SynthesizedRequest, error)
	ListServiceRequests(ctx context.Context, filter RequestFilter) ([]model.SynthesizedRequest, error)
	UpdateRequestStatus(ctx context.Context, id string, status model.RequestStatus) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
