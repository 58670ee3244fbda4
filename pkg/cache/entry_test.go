package cache

import (
	"testing"
	"time"
)

func TestEntry_IsExpired(t *testing.T) {
	fresh := &Entry{Expires: time.Now().Add(time.Minute)}
	if fresh.IsExpired() {
		t.Error("entry expiring in 1m should not be expired")
	}

	stale := &Entry{Expires: time.Now().Add(-time.Second)}
	if !stale.IsExpired() {
		t.Error("entry expired 1s ago should be expired")
	}
}

func TestEntry_TTL(t *testing.T) {
	e := &Entry{Expires: time.Now().Add(10 * time.Second)}
	ttl := e.TTL()
	if ttl <= 9*time.Second || ttl > 10*time.Second {
		t.Errorf("TTL() = %v, want ~10s", ttl)
	}

	expired := &Entry{Expires: time.Now().Add(-time.Minute)}
	if ttl := expired.TTL(); ttl != 0 {
		t.Errorf("TTL() for expired entry = %v, want 0", ttl)
	}
}
