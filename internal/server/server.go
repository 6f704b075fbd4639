// Package server exposes the classification pipeline over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/janasetu/janasetu/internal/engine"
	"github.com/janasetu/janasetu/internal/ratelimit"
	"github.com/janasetu/janasetu/internal/service"
)

// Server wires the HTTP surface to the pipeline engine and storage.
type Server struct {
	echo    *echo.Echo
	engine  *engine.Engine
	store   service.Storage
	limiter *ratelimit.Limiter
	logger  *slog.Logger
}

// New creates the HTTP server with routes registered.
func New(eng *engine.Engine, store service.Storage, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())

	s := &Server{
		echo:    e,
		engine:  eng,
		store:   store,
		limiter: ratelimit.NewLimiter(time.Minute, 10),
		logger:  logger,
	}
	s.routes()

	return s
}

func (s *Server) routes() {
	s.echo.GET("/healthz", s.Health)

	api := s.echo.Group("/api/v1")
	api.POST("/chat/messages", s.ClassifyMessage)
	api.GET("/chat/messages", s.ListChatMessages)
	api.GET("/requests", s.ListRequests)
	api.GET("/requests/:id", s.GetRequest)
	api.PUT("/requests/:id/status", s.UpdateRequestStatus)
}

// Start runs the HTTP listener until the context is canceled.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(addr)
	}()

	s.logger.Info("http server listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Health reports liveness.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
