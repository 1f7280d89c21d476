package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentilabel/config"
	"github.com/spacesedan/sentilabel/internal/logging"
	"github.com/spacesedan/sentilabel/internal/monitoring"
	"github.com/spacesedan/sentilabel/internal/sentiment"
	"github.com/spacesedan/sentilabel/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("[Main] Fatal error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	config.LoadEnv(config.AppEnv())

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	logging.InitLogger(cfg.SlogLevel())

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var scorer sentiment.Scorer = sentiment.NewVaderScorer()
	if cfg.ScorerPlainText {
		scorer = sentiment.NewPlainTextScorer(scorer)
	}
	classifier := sentiment.NewClassifier(scorer)

	renderer, err := server.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("renderer error: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scorerHealthy := &atomic.Bool{}
	scorerHealthy.Store(monitoring.CheckScorer(scorer))
	go monitoring.MonitorScorerHealth(ctx, scorer, cfg.HealthcheckInterval, scorerHealthy)

	srv := server.New(server.Config{
		Addr:               cfg.Addr(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MaxBodyBytes:       cfg.MaxBodyBytes,
	}, classifier, renderer, scorerHealthy)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	slog.Info("[Main] Sentiment service ready",
		slog.String("addr", cfg.Addr()),
		slog.String("env", cfg.AppEnv),
		slog.Bool("plain_text_scoring", cfg.ScorerPlainText))

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
