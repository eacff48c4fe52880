// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contest_tracker_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration records request latency by method, route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "contest_tracker_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	// BookmarkTogglesTotal counts bookmark toggles by resulting state.
	BookmarkTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contest_tracker_bookmark_toggles_total",
		Help: "Total number of bookmark toggles",
	}, []string{"result"})

	// SolutionSavesTotal counts successful solution upserts.
	SolutionSavesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contest_tracker_solution_saves_total",
		Help: "Total number of saved solutions",
	})

	// RateLimitRejectionsTotal counts requests rejected by the rate limiter per route.
	RateLimitRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contest_tracker_rate_limit_rejections_total",
		Help: "Total number of requests rejected by rate limiting",
	}, []string{"route"})

	// RedisErrorsTotal counts Redis failures by operation.
	RedisErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contest_tracker_redis_errors_total",
		Help: "Total number of Redis errors by operation",
	}, []string{"operation"})
)

// RecordBookmarkToggle increments the toggle counter for the new state.
func RecordBookmarkToggle(bookmarked bool) {
	result := "removed"
	if bookmarked {
		result = "added"
	}
	BookmarkTogglesTotal.WithLabelValues(result).Inc()
}
