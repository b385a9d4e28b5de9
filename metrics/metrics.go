package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_requests_total",
			Help: "Total number of chat requests by plan tier and reply source",
		},
		[]string{"plan", "source"},
	)

	ModelCallFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_call_failures_total",
			Help: "Total number of failed model calls by error class",
		},
		[]string{"class"},
	)

	ChatRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "chat_request_duration_seconds",
			Help: "Duration of chat request handling in seconds",
		},
		[]string{"plan"},
	)
)

// Reply sources recorded on ChatRequestsTotal.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
	SourceError    = "error_message"
)
