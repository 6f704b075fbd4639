package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janasetu/janasetu/internal/engine"
	"github.com/janasetu/janasetu/internal/model"
	"github.com/janasetu/janasetu/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *engine.Engine, *storage.SQLiteStorage) {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))

	logger := slog.Default()
	eng := engine.New(nil, store, logger)
	t.Cleanup(eng.Close)

	return New(eng, store, logger), eng, store
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestHealth(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestClassifyMessage(t *testing.T) {
	t.Run("classifies a blood request", func(t *testing.T) {
		srv, eng, store := newTestServer(t)

		rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat/messages",
			`{"user_id": "user-1", "message": "I need O+ blood urgently"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Category         string  `json:"category"`
			Priority         string  `json:"priority"`
			Reply            string  `json:"reply"`
			Language         string  `json:"language"`
			CreatedRequestID *string `json:"createdRequestId"`
			UsingFallback    bool    `json:"usingFallback"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "blood_request", resp.Category)
		assert.Equal(t, "urgent", resp.Priority)
		assert.Equal(t, "en", resp.Language)
		assert.True(t, resp.UsingFallback)
		assert.Contains(t, resp.Reply, "O+")
		require.NotNil(t, resp.CreatedRequestID)

		eng.Close()

		request, err := store.GetServiceRequest(context.Background(), *resp.CreatedRequestID)
		require.NoError(t, err)
		assert.Equal(t, model.CategoryBloodRequest, request.Type)
	})

	t.Run("general inquiry creates no request", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat/messages",
			`{"user_id": "user-1", "message": "hello"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			CreatedRequestID *string `json:"createdRequestId"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Nil(t, resp.CreatedRequestID)
	})

	t.Run("missing user id rejected", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat/messages",
			`{"message": "hello"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing message rejected", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat/messages",
			`{"user_id": "user-1"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("oversized message rejected", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		body := fmt.Sprintf(`{"user_id": "user-1", "message": %q}`, strings.Repeat("a", engine.MaxMessageLength+1))
		rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat/messages", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("multibyte message length counted in characters", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		body := fmt.Sprintf(`{"user_id": "user-1", "message": %q}`, strings.Repeat("म", 700))
		rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat/messages", body)
		assert.Equal(t, http.StatusOK, rec.Code)

		body = fmt.Sprintf(`{"user_id": "user-1", "message": %q}`, strings.Repeat("म", engine.MaxMessageLength+1))
		rec = doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat/messages", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown language rejected", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat/messages",
			`{"user_id": "user-1", "message": "hello", "language": "fr"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("voice input is rate limited per user", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		for i := 0; i < 10; i++ {
			rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat/messages",
				`{"user_id": "user-1", "message": "hello", "input_method": "voice"}`)
			require.Equal(t, http.StatusOK, rec.Code, "voice message %d", i+1)
		}

		rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat/messages",
			`{"user_id": "user-1", "message": "hello", "input_method": "voice"}`)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)

		// Text input and other users are unaffected.
		rec = doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat/messages",
			`{"user_id": "user-1", "message": "hello"}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat/messages",
			`{"user_id": "user-2", "message": "hello", "input_method": "voice"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestChatHistory(t *testing.T) {
	srv, eng, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat/messages",
		`{"user_id": "user-1", "message": "street light not working"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	eng.Close()

	t.Run("returns stored messages", func(t *testing.T) {
		rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/chat/messages?user_id=user-1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "street light not working")
	})

	t.Run("requires user id", func(t *testing.T) {
		rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/chat/messages", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects bad limit", func(t *testing.T) {
		rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/chat/messages?user_id=user-1&limit=zero", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRequestEndpoints(t *testing.T) {
	srv, eng, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat/messages",
		`{"user_id": "user-1", "message": "I need AB- blood urgently"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created struct {
		CreatedRequestID *string `json:"createdRequestId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotNil(t, created.CreatedRequestID)
	eng.Close()

	requestID := *created.CreatedRequestID

	t.Run("list requests", func(t *testing.T) {
		rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/requests?type=blood_request", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), requestID)
	})

	t.Run("list rejects unknown type", func(t *testing.T) {
		rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/requests?type=pizza_order", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get request by id", func(t *testing.T) {
		rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/requests/"+requestID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "AB-")
	})

	t.Run("get unknown request is 404", func(t *testing.T) {
		rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/requests/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("status update lifecycle", func(t *testing.T) {
		rec := doJSON(t, srv.Handler(), http.MethodPut, "/api/v1/requests/"+requestID+"/status",
			`{"status": "in_progress"}`)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/requests/"+requestID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "in_progress")
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		rec := doJSON(t, srv.Handler(), http.MethodPut, "/api/v1/requests/"+requestID+"/status",
			`{"status": "abandoned"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("status update of unknown request is 404", func(t *testing.T) {
		rec := doJSON(t, srv.Handler(), http.MethodPut, "/api/v1/requests/nope/status",
			`{"status": "resolved"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
