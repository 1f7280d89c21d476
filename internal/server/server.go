package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentilabel/internal/sentiment"
)

const (
	READ_HEADER_TIMEOUT    = 5 * time.Second
	DEFAULT_MAX_BODY_BYTES = 1 << 20
)

// Classifier is the core the handlers delegate to.
type Classifier interface {
	Classify(ctx context.Context, text sentiment.Text) sentiment.Label
}

type Config struct {
	Addr               string
	CORSAllowedOrigins []string
	// MaxBodyBytes caps form and JSON bodies; zero means DEFAULT_MAX_BODY_BYTES
	MaxBodyBytes int64
}

// Server owns the gin engine and the HTTP listener. Everything it holds is
// read-only once New returns, so handlers share it without locking.
type Server struct {
	classifier    Classifier
	renderer      Renderer
	scorerHealthy *atomic.Bool
	maxBodyBytes  int64
	engine        *gin.Engine
	httpServer    *http.Server
}

func New(cfg Config, classifier Classifier, renderer Renderer, scorerHealthy *atomic.Bool) *Server {
	s := &Server{
		classifier:    classifier,
		renderer:      renderer,
		scorerHealthy: scorerHealthy,
		maxBodyBytes:  cfg.MaxBodyBytes,
		engine:        gin.New(),
	}
	if s.maxBodyBytes <= 0 {
		s.maxBodyBytes = DEFAULT_MAX_BODY_BYTES
	}
	s.registerRoutes(cfg.CORSAllowedOrigins)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: READ_HEADER_TIMEOUT,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	slog.Info("[Server] Starting server", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve on %s: %w", s.httpServer.Addr, err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("[Server] Shutting down server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
