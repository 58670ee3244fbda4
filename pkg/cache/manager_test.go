package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// setupTestRedis connects to a local Redis, skipping the test when one
// is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15, // Use a separate DB for tests
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for testing: %v", err)
	}

	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush test DB: %v", err)
	}

	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})

	return client
}

func testEntry(ttl time.Duration) *Entry {
	return &Entry{
		Data:       []byte(`{"login":"octocat"}`),
		ETag:       `"abc123"`,
		StatusCode: 200,
		Expires:    time.Now().Add(ttl),
		CachedAt:   time.Now(),
	}
}

func TestManager_SetAndGet(t *testing.T) {
	m := NewManager(setupTestRedis(t))
	ctx := context.Background()
	key := Key{Path: "/users/octocat"}

	if err := m.Set(ctx, key, testEntry(time.Minute)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := m.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got.Data) != `{"login":"octocat"}` {
		t.Errorf("Data = %q", got.Data)
	}
	if got.ETag != `"abc123"` {
		t.Errorf("ETag = %q", got.ETag)
	}
}

func TestManager_GetMiss(t *testing.T) {
	m := NewManager(setupTestRedis(t))

	_, err := m.Get(context.Background(), Key{Path: "/users/nobody"})
	if err != ErrCacheMiss {
		t.Errorf("Get on empty cache = %v, want ErrCacheMiss", err)
	}
}

func TestManager_ExpiredEntryIsAMiss(t *testing.T) {
	m := NewManager(setupTestRedis(t))
	ctx := context.Background()
	key := Key{Path: "/users/octocat"}

	// Entry already expired: Set declines to store it
	if err := m.Set(ctx, key, testEntry(-time.Second)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, err := m.Get(ctx, key); err != ErrCacheMiss {
		t.Errorf("Get = %v, want ErrCacheMiss", err)
	}
}

func TestManager_Delete(t *testing.T) {
	m := NewManager(setupTestRedis(t))
	ctx := context.Background()
	key := Key{Path: "/users/octocat"}

	if err := m.Set(ctx, key, testEntry(time.Minute)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := m.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Get(ctx, key); err != ErrCacheMiss {
		t.Errorf("Get after delete = %v, want ErrCacheMiss", err)
	}
}

func TestManager_UpdateTTL(t *testing.T) {
	m := NewManager(setupTestRedis(t))
	ctx := context.Background()
	key := Key{Path: "/users/octocat"}

	if err := m.Set(ctx, key, testEntry(time.Minute)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	newExpires := time.Now().Add(time.Hour)
	if err := m.UpdateTTL(ctx, key, newExpires); err != nil {
		t.Fatalf("UpdateTTL: %v", err)
	}

	got, err := m.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.TTL() < 50*time.Minute {
		t.Errorf("TTL = %v, want close to 1h after refresh", got.TTL())
	}
}

func TestNewManager_NilRedisPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil redis client")
		}
	}()
	NewManager(nil)
}
