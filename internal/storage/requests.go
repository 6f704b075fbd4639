package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/janasetu/janasetu/internal/common"
	"github.com/janasetu/janasetu/internal/model"
	"github.com/janasetu/janasetu/internal/service"
)

// SaveServiceRequest persists a synthesized service request.
func (s *SQLiteStorage) SaveServiceRequest(ctx context.Context, request *model.SynthesizedRequest) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateServiceRequest(request); err != nil {
		return err
	}

	createdAt := request.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	status := request.Status
	if status == "" {
		status = model.StatusPending
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO service_requests
			(id, source_message_id, user_id, type, title, description, priority, status,
			 blood_type, location, complaint_bucket, service_type, due_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		request.ID, request.SourceMessageID, request.UserID, string(request.Type),
		request.Title, request.Description, string(request.Priority), string(status),
		request.BloodType, request.Location, string(request.ComplaintBucket),
		request.ServiceType, request.DueDate, createdAt)
	if err != nil {
		return fmt.Errorf("failed to save service request: %w", err)
	}

	return nil
}

// GetServiceRequest loads a single request by id.
func (s *SQLiteStorage) GetServiceRequest(ctx context.Context, id string) (*model.SynthesizedRequest, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, selectRequestColumns+` WHERE id = ?`, id)

	request, err := scanServiceRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("service request %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return request, nil
}

// ListServiceRequests returns requests matching the filter, newest first.
func (s *SQLiteStorage) ListServiceRequests(ctx context.Context, filter service.RequestFilter) ([]model.SynthesizedRequest, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := selectRequestColumns + ` WHERE 1=1`
	args := []any{}

	if filter.UserID != "" {
		query += ` AND user_id = ?`
		args = append(args, filter.UserID)
	}
	if filter.Type != "" {
		query += ` AND type = ?`
		args = append(args, string(filter.Type))
	}
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(filter.Status))
	}

	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list service requests: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var requests []model.SynthesizedRequest
	for rows.Next() {
		request, err := scanServiceRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate service requests: %w", err)
	}

	return requests, nil
}

// UpdateRequestStatus moves a request through its lifecycle.
func (s *SQLiteStorage) UpdateRequestStatus(ctx context.Context, id string, status model.RequestStatus) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	switch status {
	case model.StatusPending, model.StatusInProgress, model.StatusResolved:
	default:
		return fmt.Errorf("%w: status %q", ErrInvalidRequest, status)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE service_requests SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("service request %s: %w", id, common.ErrNotFound)
	}

	return nil
}

const selectRequestColumns = `
	SELECT id, source_message_id, user_id, type, title, description, priority, status,
	       blood_type, location, complaint_bucket, service_type, due_date, created_at
	FROM service_requests`

// scanner abstracts sql.Row and sql.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanServiceRequest(row scanner) (*model.SynthesizedRequest, error) {
	var r model.SynthesizedRequest
	var reqType, priority, status, complaintBucket string
	var description, bloodType, location, serviceType sql.NullString
	var dueDate sql.NullTime

	err := row.Scan(&r.ID, &r.SourceMessageID, &r.UserID, &reqType, &r.Title,
		&description, &priority, &status, &bloodType, &location,
		&complaintBucket, &serviceType, &dueDate, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan service request: %w", err)
	}

	r.Type = model.Category(reqType)
	r.Priority = model.Priority(priority)
	r.Status = model.RequestStatus(status)
	r.Description = description.String
	r.BloodType = bloodType.String
	r.Location = location.String
	r.ComplaintBucket = model.ComplaintCategory(complaintBucket)
	r.ServiceType = serviceType.String
	if dueDate.Valid {
		due := dueDate.Time
		r.DueDate = &due
	}

	return &r, nil
}
