package store

import (
	"context"
	"testing"
	"time"
)

func TestKeyNamespacesByType(t *testing.T) {
	a := Key("nodes", "db-123")
	b := Key("cases", "db-123")
	if a == b {
		t.Error("same parts under different types should produce different keys")
	}
	if a != Key("nodes", "db-123") {
		t.Error("key derivation should be deterministic")
	}
	if Key("nodes", "ab", "c") == Key("nodes", "a", "bc") {
		t.Error("part boundaries should affect the key")
	}
}

func TestCacheSetGet(t *testing.T) {
	s := openTestStore(t)
	cache := s.CacheRepo()
	ctx := context.Background()

	key := Key("nodes", "db-123")
	if err := cache.Set(ctx, key, "nodes", []byte(`{"n":1}`), time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(got) != `{"n":1}` {
		t.Errorf("value = %q, want %q", got, `{"n":1}`)
	}

	_, ok, err = cache.Get(ctx, Key("nodes", "other"))
	if err != nil {
		t.Fatalf("get miss: %v", err)
	}
	if ok {
		t.Error("expected cache miss for unknown key")
	}
}

func TestCacheGetIgnoresExpired(t *testing.T) {
	s := openTestStore(t)
	cache := s.CacheRepo()
	ctx := context.Background()

	key := Key("nodes", "db-123")
	if err := cache.Set(ctx, key, "nodes", []byte("stale"), -time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}

	_, ok, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected miss for expired entry")
	}
}

func TestCacheSetReplaces(t *testing.T) {
	s := openTestStore(t)
	cache := s.CacheRepo()
	ctx := context.Background()

	key := Key("items", "page-1")
	if err := cache.Set(ctx, key, "items", []byte("v1"), time.Hour); err != nil {
		t.Fatalf("set v1: %v", err)
	}
	if err := cache.Set(ctx, key, "items", []byte("v2"), time.Hour); err != nil {
		t.Fatalf("set v2: %v", err)
	}

	got, ok, err := cache.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(got) != "v2" {
		t.Errorf("value = %q, want %q", got, "v2")
	}

	stats, err := cache.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 1 {
		t.Errorf("total = %d, want 1 (set should replace, not duplicate)", stats.Total)
	}
}

func TestCacheDelete(t *testing.T) {
	s := openTestStore(t)
	cache := s.CacheRepo()
	ctx := context.Background()

	key := Key("nodes", "db-123")
	if err := cache.Set(ctx, key, "nodes", []byte("x"), time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := cache.Delete(ctx, key); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, ok, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected miss after delete")
	}

	// Deleting a missing key is not an error.
	if err := cache.Delete(ctx, key); err != nil {
		t.Errorf("delete missing key: %v", err)
	}
}

func TestCacheClearExpired(t *testing.T) {
	s := openTestStore(t)
	cache := s.CacheRepo()
	ctx := context.Background()

	if err := cache.Set(ctx, Key("nodes", "a"), "nodes", []byte("a"), -time.Second); err != nil {
		t.Fatalf("set expired: %v", err)
	}
	if err := cache.Set(ctx, Key("nodes", "b"), "nodes", []byte("b"), time.Hour); err != nil {
		t.Fatalf("set live: %v", err)
	}

	n, err := cache.ClearExpired(ctx)
	if err != nil {
		t.Fatalf("clear expired: %v", err)
	}
	if n != 1 {
		t.Errorf("cleared %d entries, want 1", n)
	}

	_, ok, _ := cache.Get(ctx, Key("nodes", "b"))
	if !ok {
		t.Error("live entry should survive ClearExpired")
	}
}

func TestCacheClearType(t *testing.T) {
	s := openTestStore(t)
	cache := s.CacheRepo()
	ctx := context.Background()

	if err := cache.Set(ctx, Key("nodes", "a"), "nodes", []byte("a"), time.Hour); err != nil {
		t.Fatalf("set nodes: %v", err)
	}
	if err := cache.Set(ctx, Key("cases", "a"), "cases", []byte("a"), time.Hour); err != nil {
		t.Fatalf("set cases: %v", err)
	}

	n, err := cache.ClearType(ctx, "nodes")
	if err != nil {
		t.Fatalf("clear type: %v", err)
	}
	if n != 1 {
		t.Errorf("cleared %d entries, want 1", n)
	}

	_, ok, _ := cache.Get(ctx, Key("cases", "a"))
	if !ok {
		t.Error("other type should survive ClearType")
	}
}

func TestCacheStats(t *testing.T) {
	s := openTestStore(t)
	cache := s.CacheRepo()
	ctx := context.Background()

	if err := cache.Set(ctx, Key("nodes", "a"), "nodes", []byte("a"), time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := cache.Set(ctx, Key("nodes", "b"), "nodes", []byte("b"), -time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := cache.Set(ctx, Key("items", "c"), "items", []byte("c"), time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}

	stats, err := cache.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("total = %d, want 3", stats.Total)
	}
	if stats.Expired != 1 {
		t.Errorf("expired = %d, want 1", stats.Expired)
	}
	if stats.ByType["nodes"] != 2 || stats.ByType["items"] != 1 {
		t.Errorf("by type = %v, want nodes:2 items:1", stats.ByType)
	}
}

func TestCacheCleanupRemovesOldEntries(t *testing.T) {
	s := openTestStore(t)
	cache := s.CacheRepo()
	ctx := context.Background()

	// A long TTL does not protect an entry past the age cutoff.
	key := Key("nodes", "ancient")
	if err := cache.Set(ctx, key, "nodes", []byte("x"), 30*24*time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := cache.Set(ctx, Key("nodes", "fresh"), "nodes", []byte("y"), time.Hour); err != nil {
		t.Fatalf("set fresh: %v", err)
	}

	// created_at is immutable through ent, so backdate it directly.
	old := time.Now().Add(-8 * 24 * time.Hour)
	_, err := s.DB().ExecContext(ctx,
		"UPDATE cache_entries SET created_at = ? WHERE key = ?", old, key)
	if err != nil {
		t.Fatalf("backdate entry: %v", err)
	}

	n, err := cache.Cleanup(ctx, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if n != 1 {
		t.Errorf("cleaned %d entries, want 1", n)
	}

	_, ok, _ := cache.Get(ctx, Key("nodes", "fresh"))
	if !ok {
		t.Error("fresh entry should survive cleanup")
	}
}
