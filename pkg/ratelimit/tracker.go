package ratelimit

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// Prometheus metrics for quota tracking.
var (
	ghRateRemaining = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gh_rate_limit_remaining",
		Help: "Requests remaining in the current GitHub rate limit window",
	})

	ghRateLowTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gh_rate_limit_low_total",
		Help: "Total number of responses observed with a low remaining quota",
	})
)

// Tracker keeps the latest quota snapshot seen on any response. The state
// lives in memory: a census run is a single process, so there is no shared
// store to coordinate through.
type Tracker struct {
	mu     sync.Mutex
	state  State
	logger zerolog.Logger
}

// NewTracker creates a quota tracker.
func NewTracker(logger zerolog.Logger) *Tracker {
	return &Tracker{logger: logger}
}

// State returns the last observed quota snapshot. The zero State (no
// headers seen yet) has ObservedAt.IsZero() == true.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// UpdateFromHeaders parses the quota headers off a response and records
// the snapshot. Responses without the headers are ignored.
func (t *Tracker) UpdateFromHeaders(headers http.Header) {
	remainStr := headers.Get("X-RateLimit-Remaining")
	if remainStr == "" {
		return
	}
	remain, err := strconv.Atoi(remainStr)
	if err != nil {
		t.logger.Debug().Str("value", remainStr).Msg("Unparseable X-RateLimit-Remaining header")
		return
	}

	state := State{
		Remaining:  remain,
		ObservedAt: time.Now(),
	}
	if limitStr := headers.Get("X-RateLimit-Limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			state.Limit = limit
		}
	}
	if resetStr := headers.Get("X-RateLimit-Reset"); resetStr != "" {
		if epoch, err := strconv.ParseInt(resetStr, 10, 64); err == nil {
			state.ResetAt = time.Unix(epoch, 0)
		}
	}

	t.mu.Lock()
	t.state = state
	t.mu.Unlock()

	ghRateRemaining.Set(float64(remain))

	if state.IsCritical() {
		ghRateLowTotal.Inc()
		t.logger.Warn().
			Int("rate_remaining", remain).
			Time("reset_at", state.ResetAt).
			Msg("GitHub quota nearly exhausted")
	} else if state.IsLow() {
		ghRateLowTotal.Inc()
		t.logger.Debug().
			Int("rate_remaining", remain).
			Time("reset_at", state.ResetAt).
			Msg("GitHub quota running low")
	}
}
