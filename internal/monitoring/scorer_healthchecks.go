package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/spacesedan/sentilabel/internal/metrics"
	"github.com/spacesedan/sentilabel/internal/sentiment"
)

const HEALTHCHECK_TEXT = "The service is running and the results look good."

// CheckScorer runs the health check sentence through scorer once.
func CheckScorer(scorer sentiment.Scorer) bool {
	if _, err := sentiment.SafePolarity(scorer, HEALTHCHECK_TEXT); err != nil {
		slog.Warn("[HealthCheck] Scorer health check failed", slog.String("error", err.Error()))
		return false
	}
	return true
}

// MonitorScorerHealth checks scorer immediately and then on every tick until
// ctx is done, storing the result in healthy.
func MonitorScorerHealth(ctx context.Context, scorer sentiment.Scorer, interval time.Duration, healthy *atomic.Bool) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check := func() {
		isHealthy := CheckScorer(scorer)
		if healthy.Swap(isHealthy) != isHealthy {
			slog.Info("[HealthCheck] Scorer health changed", slog.Bool("healthy", isHealthy))
		}
		if isHealthy {
			metrics.ScorerHealthy.Set(1)
		} else {
			metrics.ScorerHealthy.Set(0)
			slog.Warn("[HealthCheck] Scorer is unhealthy")
		}
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}
