package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/janasetu/janasetu/internal/common"
	"github.com/janasetu/janasetu/internal/engine"
	"github.com/janasetu/janasetu/internal/model"
	"github.com/janasetu/janasetu/internal/service"
)

// classifyRequest is the inbound payload for the chat endpoint.
type classifyRequest struct {
	Message     string `json:"message"`
	Language    string `json:"language,omitempty"`
	InputMethod string `json:"input_method,omitempty"`
	UserID      string `json:"user_id"`
}

// classifyResponse mirrors the pipeline outcome for the chat UI.
type classifyResponse struct {
	Category         model.Category `json:"category"`
	Priority         model.Priority `json:"priority"`
	Reply            string         `json:"reply"`
	Language         model.Language `json:"language"`
	CreatedRequestID *string        `json:"createdRequestId"`
	UsingFallback    bool           `json:"usingFallback"`
}

// ClassifyMessage handles POST /api/v1/chat/messages.
func (s *Server) ClassifyMessage(c echo.Context) error {
	var req classifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}
	if utf8.RuneCountInString(req.Message) > engine.MaxMessageLength {
		return echo.NewHTTPError(http.StatusBadRequest, "message exceeds 2000 characters")
	}

	inputMethod := model.InputMethod(req.InputMethod)
	if inputMethod == "" {
		inputMethod = model.InputText
	}

	// Sliding-window admission control applies to voice input.
	if inputMethod == model.InputVoice && !s.limiter.Admit(req.UserID) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "voice message limit reached, please wait a minute")
	}

	language := model.Language(req.Language)
	if req.Language == "" {
		language = model.LanguageAuto
	}
	if !language.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "language must be one of en, hi, te")
	}

	msg := model.InboundMessage{
		UserID:      req.UserID,
		Text:        req.Message,
		Language:    language,
		InputMethod: inputMethod,
		ReceivedAt:  time.Now().UTC(),
	}

	outcome, err := s.engine.Process(c.Request().Context(), msg)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		s.logger.Error("pipeline failure", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "classification failed")
	}

	resp := classifyResponse{
		Category:      outcome.Result.Category,
		Priority:      outcome.Result.Priority,
		Reply:         outcome.Result.Reply,
		Language:      outcome.Language,
		UsingFallback: outcome.Result.UsingFallback,
	}
	if outcome.CreatedRequestID != "" {
		resp.CreatedRequestID = &outcome.CreatedRequestID
	}

	return c.JSON(http.StatusOK, resp)
}

// ListChatMessages handles GET /api/v1/chat/messages?user_id=&limit=.
func (s *Server) ListChatMessages(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	records, err := s.store.ListChatRecords(c.Request().Context(), userID, limit)
	if err != nil {
		s.logger.Error("failed to list chat records", "user_id", userID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load chat history")
	}

	return c.JSON(http.StatusOK, map[string]any{"messages": records})
}

// ListRequests handles GET /api/v1/requests with optional type/status/user filters.
func (s *Server) ListRequests(c echo.Context) error {
	filter := service.RequestFilter{
		UserID: c.QueryParam("user_id"),
	}

	if raw := c.QueryParam("type"); raw != "" {
		category, ok := model.ParseCategory(raw)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid type")
		}
		filter.Type = category
	}

	if raw := c.QueryParam("status"); raw != "" {
		filter.Status = model.RequestStatus(raw)
	}

	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		filter.Limit = parsed
	}

	requests, err := s.store.ListServiceRequests(c.Request().Context(), filter)
	if err != nil {
		s.logger.Error("failed to list service requests", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load requests")
	}

	return c.JSON(http.StatusOK, map[string]any{"requests": requests})
}

// GetRequest handles GET /api/v1/requests/:id.
func (s *Server) GetRequest(c echo.Context) error {
	request, err := s.store.GetServiceRequest(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "request not found")
		}
		s.logger.Error("failed to load service request", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load request")
	}

	return c.JSON(http.StatusOK, request)
}

// UpdateRequestStatus handles PUT /api/v1/requests/:id/status.
func (s *Server) UpdateRequestStatus(c echo.Context) error {
	var body struct {
		Status model.RequestStatus `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := s.store.UpdateRequestStatus(c.Request().Context(), c.Param("id"), body.Status)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "request not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
