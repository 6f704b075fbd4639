package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/janasetu/janasetu/internal/model"
)

// SaveChatRecord persists a chat exchange.
func (s *SQLiteStorage) SaveChatRecord(ctx context.Context, record *model.ChatRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateChatRecord(record); err != nil {
		return err
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_records (id, user_id, message, reply, language, category, priority, using_fallback, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.UserID, record.Message, record.Reply,
		string(record.Language), string(record.Category), string(record.Priority),
		boolToInt(record.UsingFallback), createdAt)
	if err != nil {
		return fmt.Errorf("failed to save chat record: %w", err)
	}

	return nil
}

// ListChatRecords returns the most recent chat records for a user, newest first.
func (s *SQLiteStorage) ListChatRecords(ctx context.Context, userID string, limit int) ([]model.ChatRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, message, reply, language, category, priority, using_fallback, created_at
		FROM chat_records
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanChatRecords(rows)
}

// AllChatRecords returns every stored chat record, oldest first. Used by
// the reprocess command.
func (s *SQLiteStorage) AllChatRecords(ctx context.Context) ([]model.ChatRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, message, reply, language, category, priority, using_fallback, created_at
		FROM chat_records
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanChatRecords(rows)
}

// UpdateChatClassification rewrites the stored category and priority for a
// record, used when the heuristic rule table changes.
func (s *SQLiteStorage) UpdateChatClassification(ctx context.Context, id string, category model.Category, priority model.Priority) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	if !category.Valid() {
		return fmt.Errorf("%w: category %q", ErrInvalidRecord, category)
	}
	if !priority.Valid() {
		return fmt.Errorf("%w: priority %q", ErrInvalidRecord, priority)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE chat_records SET category = ?, priority = ? WHERE id = ?`,
		string(category), string(priority), id)
	if err != nil {
		return fmt.Errorf("failed to update chat classification: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("chat record %s: %w", id, sql.ErrNoRows)
	}

	return nil
}

func scanChatRecords(rows *sql.Rows) ([]model.ChatRecord, error) {
	var records []model.ChatRecord
	for rows.Next() {
		var r model.ChatRecord
		var language, category, priority string
		var usingFallback int

		if err := rows.Scan(&r.ID, &r.UserID, &r.Message, &r.Reply,
			&language, &category, &priority, &usingFallback, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat record: %w", err)
		}

		r.Language = model.Language(language)
		r.Category = model.Category(category)
		r.Priority = model.Priority(priority)
		r.UsingFallback = usingFallback != 0
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chat records: %w", err)
	}

	return records, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
