package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Hits tracks cache hits by layer (redis).
	Hits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gh_cache_hits_total",
			Help: "Total number of GitHub response cache hits",
		},
		[]string{"layer"},
	)

	// Misses tracks cache misses.
	Misses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gh_cache_misses_total",
			Help: "Total number of GitHub response cache misses",
		},
	)

	// NotModified tracks 304 Not Modified responses served from cache.
	NotModified = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gh_304_responses_total",
			Help: "Total number of 304 Not Modified responses",
		},
	)

	// ConditionalSent tracks conditional requests sent with If-None-Match.
	ConditionalSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gh_conditional_requests_total",
			Help: "Total number of conditional requests sent",
		},
	)

	// Errors tracks cache operation errors.
	Errors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gh_cache_errors_total",
			Help: "Total number of cache operation errors",
		},
		[]string{"operation"}, // "get", "set", "delete"
	)
)
