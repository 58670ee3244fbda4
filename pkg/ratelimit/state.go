// Package ratelimit observes the GitHub API quota headers
// (X-RateLimit-Remaining and X-RateLimit-Reset) so a run can report how
// much budget it has left. Observation only: request pacing stays the
// fixed inter-page delay and is never derived from these headers.
package ratelimit

import (
	"time"
)

// Thresholds for quota health reporting.
const (
	// RemainingCritical marks the quota as critical below this value.
	// A search run this close to the limit will start seeing 403s.
	RemainingCritical = 10

	// RemainingWarning marks the quota as low below this value.
	RemainingWarning = 100
)

// State is a snapshot of the GitHub rate limit quota as last reported
// by response headers.
type State struct {
	// Remaining is the number of requests left in the current window,
	// from the X-RateLimit-Remaining header.
	Remaining int `json:"remaining"`

	// Limit is the total window size, from the X-RateLimit-Limit header.
	Limit int `json:"limit"`

	// ResetAt is when the window resets, from the X-RateLimit-Reset
	// header (Unix epoch seconds).
	ResetAt time.Time `json:"reset_at"`

	// ObservedAt is when this snapshot was taken from a response.
	ObservedAt time.Time `json:"observed_at"`
}

// IsCritical returns true when the remaining quota is nearly exhausted.
func (s *State) IsCritical() bool {
	return s.Remaining < RemainingCritical
}

// IsLow returns true when the remaining quota is low but not critical.
func (s *State) IsLow() bool {
	return s.Remaining < RemainingWarning && !s.IsCritical()
}

// IsStale returns true if the snapshot is older than maxAge.
func (s *State) IsStale(maxAge time.Duration) bool {
	return time.Since(s.ObservedAt) > maxAge
}

// TimeUntilReset returns the duration until the quota window resets.
// Returns 0 if the reset time has already passed.
func (s *State) TimeUntilReset() time.Duration {
	d := time.Until(s.ResetAt)
	if d < 0 {
		return 0
	}
	return d
}
