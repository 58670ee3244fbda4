package ratelimit

import (
	"testing"
	"time"
)

func TestState_IsCritical(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		want      bool
	}{
		{"zero", 0, true},
		{"just_below", RemainingCritical - 1, true},
		{"at_threshold", RemainingCritical, false},
		{"healthy", 4000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &State{Remaining: tt.remaining}
			if got := s.IsCritical(); got != tt.want {
				t.Errorf("IsCritical() with remaining=%d = %v, want %v", tt.remaining, got, tt.want)
			}
		})
	}
}

func TestState_IsLow(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		want      bool
	}{
		{"critical_is_not_low", 2, false},
		{"low", RemainingWarning - 1, true},
		{"at_warning_threshold", RemainingWarning, false},
		{"healthy", 4999, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &State{Remaining: tt.remaining}
			if got := s.IsLow(); got != tt.want {
				t.Errorf("IsLow() with remaining=%d = %v, want %v", tt.remaining, got, tt.want)
			}
		})
	}
}

func TestState_TimeUntilReset(t *testing.T) {
	future := &State{ResetAt: time.Now().Add(30 * time.Second)}
	if d := future.TimeUntilReset(); d <= 0 || d > 30*time.Second {
		t.Errorf("TimeUntilReset() = %v, want (0, 30s]", d)
	}

	past := &State{ResetAt: time.Now().Add(-time.Minute)}
	if d := past.TimeUntilReset(); d != 0 {
		t.Errorf("TimeUntilReset() for past reset = %v, want 0", d)
	}
}

func TestState_IsStale(t *testing.T) {
	s := &State{ObservedAt: time.Now().Add(-2 * time.Minute)}
	if !s.IsStale(time.Minute) {
		t.Error("state observed 2m ago should be stale at maxAge 1m")
	}
	if s.IsStale(time.Hour) {
		t.Error("state observed 2m ago should not be stale at maxAge 1h")
	}
}
