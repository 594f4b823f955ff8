// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "home4paws_api_requests_total",
			Help: "Total number of API requests issued by the client",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "home4paws_api_request_duration_seconds",
			Help: "Duration of API requests in seconds",
		},
		[]string{"method", "endpoint"},
	)

	APIRequestFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "home4paws_api_request_failures_total",
			Help: "Total number of API requests that failed before a response",
		},
		[]string{"method", "endpoint"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "home4paws_cache_hits_total",
			Help: "Snapshot cache hits by resource",
		},
		[]string{"resource"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "home4paws_cache_misses_total",
			Help: "Snapshot cache misses by resource",
		},
		[]string{"resource"},
	)
)
