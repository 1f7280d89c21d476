package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Classification Metrics
var (
	// ClassificationsTotal counts classifier results by label
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_classifications_total",
			Help: "Total classifications by resulting label",
		},
		[]string{"label"},
	)

	// ScorerFailuresTotal counts scorer faults contained by the classifier
	ScorerFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_scorer_failures_total",
			Help: "Total polarity scorer failures converted to Error Analyzing",
		},
	)

	// ScorerDuration tracks polarity scorer latency in seconds
	ScorerDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentiment_scorer_duration_seconds",
			Help:    "Polarity scorer duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		},
	)

	// ScorerHealthy is 1 while the scorer health check passes, 0 otherwise
	ScorerHealthy = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sentiment_scorer_healthy",
			Help: "Scorer health check status (1=healthy, 0=unhealthy)",
		},
	)
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)
