// Package health serves the liveness endpoint checked by the container runtime.
package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 10 * time.Second

// Status is the body of GET /health.
type Status struct {
	Status string `json:"status"`
}

// Server is the health HTTP server.
type Server struct {
	echo *echo.Echo
	srv  *http.Server
}

// NewServer creates a health server listening on port.
func NewServer(port int) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, Status{Status: "ok"})
	})

	return &Server{
		echo: e,
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      e,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("started health server", "addr", s.srv.Addr)
		errCh <- s.echo.StartServer(s.srv)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve health endpoint: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("failed to shutdown health server gracefully", "error", err)
		return s.srv.Close()
	}
	slog.Info("stopped health server")
	return nil
}
