// Package metrics exposes the Prometheus metrics collected across the
// tool. Metrics are defined in their owning packages (github, cache,
// ratelimit) via promauto against the default registry; this package
// serves them and documents what exists.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Registry is the registry all tool metrics land in.
var Registry = prometheus.DefaultRegisterer

// Handler returns the /metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve exposes /metrics on addr in a background goroutine. A census
// run is finite, so the listener just lives for the process lifetime;
// errors are logged, not fatal.
func Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Warn().Err(err).Str("addr", addr).Msg("Metrics listener stopped")
		}
	}()
}

// Metrics Reference
//
// Request metrics (pkg/github):
//   - gh_requests_total{endpoint, status} (Counter): requests by endpoint and HTTP status
//   - gh_request_duration_seconds{endpoint} (Histogram): request duration
//   - gh_errors_total{class} (Counter): errors by class (client, server, rate_limit, network)
//
// Rate limit metrics (pkg/ratelimit):
//   - gh_rate_limit_remaining (Gauge): remaining core quota last seen on a response
//   - gh_rate_limit_low_total (Counter): responses observed with a low quota
//
// Cache metrics (pkg/cache):
//   - gh_cache_hits_total{layer} (Counter): cache hits
//   - gh_cache_misses_total (Counter): cache misses
//   - gh_304_responses_total (Counter): 304 Not Modified responses
//   - gh_conditional_requests_total (Counter): conditional requests sent
//   - gh_cache_errors_total{operation} (Counter): cache operation errors
