package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janasetu/janasetu/internal/common"
	"github.com/janasetu/janasetu/internal/model"
	"github.com/janasetu/janasetu/internal/service"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))

	return store
}

func testChatRecord(userID string) *model.ChatRecord {
	return &model.ChatRecord{
		ID:            uuid.NewString(),
		UserID:        userID,
		Message:       "I need O+ blood",
		Reply:         "Donors will be notified.",
		Language:      model.LanguageEnglish,
		Category:      model.CategoryBloodRequest,
		Priority:      model.PriorityUrgent,
		UsingFallback: true,
	}
}

func testServiceRequest(userID string) *model.SynthesizedRequest {
	return &model.SynthesizedRequest{
		ID:              uuid.NewString(),
		SourceMessageID: uuid.NewString(),
		UserID:          userID,
		Type:            model.CategoryBloodRequest,
		Title:           "Need O+ blood",
		Description:     "I need O+ blood",
		Priority:        model.PriorityUrgent,
		Status:          model.StatusPending,
		BloodType:       "O+",
		Location:        "Gandhi Nagar",
	}
}

func TestMigrate(t *testing.T) {
	t.Run("is idempotent", func(t *testing.T) {
		store := newTestStorage(t)
		require.NoError(t, store.Migrate(context.Background()))
	})

	t.Run("records schema version", func(t *testing.T) {
		store := newTestStorage(t)

		var version int
		row := store.db.QueryRow(`SELECT MAX(version) FROM schema_versions`)
		require.NoError(t, row.Scan(&version))
		assert.Equal(t, ExpectedSchemaVersion, version)
	})
}

func TestChatRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("save and list round trip", func(t *testing.T) {
		store := newTestStorage(t)

		record := testChatRecord("user-1")
		require.NoError(t, store.SaveChatRecord(ctx, record))

		records, err := store.ListChatRecords(ctx, "user-1", 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, record.ID, records[0].ID)
		assert.Equal(t, record.Message, records[0].Message)
		assert.Equal(t, model.CategoryBloodRequest, records[0].Category)
		assert.True(t, records[0].UsingFallback)
		assert.False(t, records[0].CreatedAt.IsZero())
	})

	t.Run("list is newest first and scoped to user", func(t *testing.T) {
		store := newTestStorage(t)

		base := time.Now().UTC().Add(-time.Hour)
		for i := 0; i < 3; i++ {
			record := testChatRecord("user-1")
			record.Message = fmt.Sprintf("message %d", i)
			record.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			require.NoError(t, store.SaveChatRecord(ctx, record))
		}
		require.NoError(t, store.SaveChatRecord(ctx, testChatRecord("user-2")))

		records, err := store.ListChatRecords(ctx, "user-1", 10)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "message 2", records[0].Message)
		assert.Equal(t, "message 0", records[2].Message)
	})

	t.Run("list honors limit", func(t *testing.T) {
		store := newTestStorage(t)

		base := time.Now().UTC().Add(-time.Hour)
		for i := 0; i < 5; i++ {
			record := testChatRecord("user-1")
			record.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			require.NoError(t, store.SaveChatRecord(ctx, record))
		}

		records, err := store.ListChatRecords(ctx, "user-1", 2)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("all records are oldest first", func(t *testing.T) {
		store := newTestStorage(t)

		base := time.Now().UTC().Add(-time.Hour)
		for i := 0; i < 3; i++ {
			record := testChatRecord("user-1")
			record.Message = fmt.Sprintf("message %d", i)
			record.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			require.NoError(t, store.SaveChatRecord(ctx, record))
		}

		records, err := store.AllChatRecords(ctx)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "message 0", records[0].Message)
	})

	t.Run("update classification", func(t *testing.T) {
		store := newTestStorage(t)

		record := testChatRecord("user-1")
		require.NoError(t, store.SaveChatRecord(ctx, record))

		require.NoError(t, store.UpdateChatClassification(ctx, record.ID, model.CategoryComplaint, model.PriorityLow))

		records, err := store.ListChatRecords(ctx, "user-1", 1)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, model.CategoryComplaint, records[0].Category)
		assert.Equal(t, model.PriorityLow, records[0].Priority)
	})

	t.Run("update of unknown record fails", func(t *testing.T) {
		store := newTestStorage(t)

		err := store.UpdateChatClassification(ctx, "missing", model.CategoryComplaint, model.PriorityLow)
		require.Error(t, err)
	})

	t.Run("invalid record rejected", func(t *testing.T) {
		store := newTestStorage(t)

		record := testChatRecord("user-1")
		record.Category = "pizza_order"
		err := store.SaveChatRecord(ctx, record)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidRecord))
	})

	t.Run("nil record rejected", func(t *testing.T) {
		store := newTestStorage(t)
		require.Error(t, store.SaveChatRecord(ctx, nil))
	})

	t.Run("empty user id rejected on list", func(t *testing.T) {
		store := newTestStorage(t)
		_, err := store.ListChatRecords(ctx, "  ", 10)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyString))
	})
}

func TestServiceRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("save and get round trip", func(t *testing.T) {
		store := newTestStorage(t)

		request := testServiceRequest("user-1")
		due := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
		request.DueDate = &due
		require.NoError(t, store.SaveServiceRequest(ctx, request))

		got, err := store.GetServiceRequest(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, request.Title, got.Title)
		assert.Equal(t, request.SourceMessageID, got.SourceMessageID)
		assert.Equal(t, "O+", got.BloodType)
		assert.Equal(t, model.StatusPending, got.Status)
		require.NotNil(t, got.DueDate)
		assert.WithinDuration(t, due, *got.DueDate, time.Second)
	})

	t.Run("get missing request is not found", func(t *testing.T) {
		store := newTestStorage(t)

		_, err := store.GetServiceRequest(ctx, "missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrNotFound))
	})

	t.Run("empty status defaults to pending", func(t *testing.T) {
		store := newTestStorage(t)

		request := testServiceRequest("user-1")
		request.Status = ""
		require.NoError(t, store.SaveServiceRequest(ctx, request))

		got, err := store.GetServiceRequest(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, got.Status)
	})

	t.Run("list filters by user type and status", func(t *testing.T) {
		store := newTestStorage(t)

		blood := testServiceRequest("user-1")
		require.NoError(t, store.SaveServiceRequest(ctx, blood))

		complaint := testServiceRequest("user-1")
		complaint.ID = uuid.NewString()
		complaint.Type = model.CategoryComplaint
		complaint.Title = "Water supply problem"
		complaint.ComplaintBucket = model.ComplaintWater
		require.NoError(t, store.SaveServiceRequest(ctx, complaint))

		other := testServiceRequest("user-2")
		other.ID = uuid.NewString()
		require.NoError(t, store.SaveServiceRequest(ctx, other))

		byUser, err := store.ListServiceRequests(ctx, service.RequestFilter{UserID: "user-1"})
		require.NoError(t, err)
		assert.Len(t, byUser, 2)

		byType, err := store.ListServiceRequests(ctx, service.RequestFilter{Type: model.CategoryComplaint})
		require.NoError(t, err)
		require.Len(t, byType, 1)
		assert.Equal(t, model.ComplaintWater, byType[0].ComplaintBucket)

		require.NoError(t, store.UpdateRequestStatus(ctx, blood.ID, model.StatusResolved))
		resolved, err := store.ListServiceRequests(ctx, service.RequestFilter{Status: model.StatusResolved})
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.Equal(t, blood.ID, resolved[0].ID)
	})

	t.Run("list honors limit and offset", func(t *testing.T) {
		store := newTestStorage(t)

		base := time.Now().UTC().Add(-time.Hour)
		for i := 0; i < 5; i++ {
			request := testServiceRequest("user-1")
			request.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			require.NoError(t, store.SaveServiceRequest(ctx, request))
		}

		page, err := store.ListServiceRequests(ctx, service.RequestFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, page, 2)
	})

	t.Run("status lifecycle", func(t *testing.T) {
		store := newTestStorage(t)

		request := testServiceRequest("user-1")
		require.NoError(t, store.SaveServiceRequest(ctx, request))

		require.NoError(t, store.UpdateRequestStatus(ctx, request.ID, model.StatusInProgress))
		require.NoError(t, store.UpdateRequestStatus(ctx, request.ID, model.StatusResolved))

		got, err := store.GetServiceRequest(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusResolved, got.Status)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		store := newTestStorage(t)

		request := testServiceRequest("user-1")
		require.NoError(t, store.SaveServiceRequest(ctx, request))

		err := store.UpdateRequestStatus(ctx, request.ID, "abandoned")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidRequest))
	})

	t.Run("status update of unknown request is not found", func(t *testing.T) {
		store := newTestStorage(t)

		err := store.UpdateRequestStatus(ctx, "missing", model.StatusResolved)
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrNotFound))
	})

	t.Run("request without title rejected", func(t *testing.T) {
		store := newTestStorage(t)

		request := testServiceRequest("user-1")
		request.Title = ""
		err := store.SaveServiceRequest(ctx, request)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidRequest))
	})
}
