package sentiment

import (
	"context"
	"log/slog"
	"time"

	"github.com/spacesedan/sentilabel/internal/metrics"
)

// Classifier maps text to a Label. It never returns an error: non-string
// input becomes InvalidInput and any scorer fault becomes ErrorAnalyzing.
type Classifier struct {
	scorer Scorer
}

func NewClassifier(scorer Scorer) *Classifier {
	for _, label := range Labels() {
		metrics.ClassificationsTotal.WithLabelValues(label.String())
	}
	return &Classifier{scorer: scorer}
}

// Classify scores text once. There are no retries: scoring is deterministic
// and a repeat call would fail the same way.
func (c *Classifier) Classify(ctx context.Context, text Text) Label {
	label := c.classify(ctx, text)
	metrics.ClassificationsTotal.WithLabelValues(label.String()).Inc()
	return label
}

func (c *Classifier) classify(ctx context.Context, text Text) Label {
	s, ok := text.AsString()
	if !ok {
		return InvalidInput
	}

	start := time.Now()
	polarity, err := SafePolarity(c.scorer, s)
	metrics.ScorerDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ScorerFailuresTotal.Inc()
		slog.ErrorContext(ctx, "[Classifier] Error during sentiment analysis",
			slog.String("error", err.Error()))
		return ErrorAnalyzing
	}

	slog.DebugContext(ctx, "[Classifier] Scored text",
		slog.Float64("polarity", polarity))
	return LabelForPolarity(polarity)
}
