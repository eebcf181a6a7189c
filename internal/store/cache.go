package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/hmaeda/campdoc/ent"
	"github.com/hmaeda/campdoc/ent/cacheentry"
)

// Key derives the cache key for a request fingerprint. The cache type
// namespaces the key so identical parameters in different loaders never
// collide. Parts are joined with a separator that cannot appear in
// Notion identifiers.
func Key(cacheType string, parts ...string) string {
	h := sha256.Sum256([]byte(cacheType + "\x1f" + strings.Join(parts, "\x1f")))
	return hex.EncodeToString(h[:])
}

// cacheRepo implements CacheRepo using the ent client.
type cacheRepo struct {
	client *ent.Client
}

func (r *cacheRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	e, err := r.client.CacheEntry.Query().
		Where(
			cacheentry.KeyEQ(key),
			cacheentry.ExpiresAtGT(time.Now()),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("query cache entry: %w", err)
	}
	return e.Value, true, nil
}

func (r *cacheRepo) Set(ctx context.Context, key, cacheType string, value []byte, ttl time.Duration) error {
	expires := time.Now().Add(ttl)

	// Update-then-create instead of upsert: the key column is unique,
	// and a single process owns the database.
	n, err := r.client.CacheEntry.Update().
		Where(cacheentry.KeyEQ(key)).
		SetValue(value).
		SetExpiresAt(expires).
		SetCacheType(cacheType).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update cache entry: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.CacheEntry.Create().
		SetKey(key).
		SetValue(value).
		SetExpiresAt(expires).
		SetCacheType(cacheType).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create cache entry: %w", err)
	}
	return nil
}

func (r *cacheRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.CacheEntry.Delete().
		Where(cacheentry.KeyEQ(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}

func (r *cacheRepo) ClearExpired(ctx context.Context) (int, error) {
	n, err := r.client.CacheEntry.Delete().
		Where(cacheentry.ExpiresAtLTE(time.Now())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear expired cache entries: %w", err)
	}
	return n, nil
}

func (r *cacheRepo) ClearType(ctx context.Context, cacheType string) (int, error) {
	n, err := r.client.CacheEntry.Delete().
		Where(cacheentry.CacheTypeEQ(cacheType)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear %s cache entries: %w", cacheType, err)
	}
	return n, nil
}

func (r *cacheRepo) Stats(ctx context.Context) (CacheStats, error) {
	stats := CacheStats{ByType: make(map[string]int)}

	total, err := r.client.CacheEntry.Query().Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count cache entries: %w", err)
	}
	stats.Total = total

	expired, err := r.client.CacheEntry.Query().
		Where(cacheentry.ExpiresAtLTE(time.Now())).
		Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count expired cache entries: %w", err)
	}
	stats.Expired = expired

	var rows []struct {
		CacheType string `json:"cache_type"`
		Count     int    `json:"count"`
	}
	err = r.client.CacheEntry.Query().
		GroupBy(cacheentry.FieldCacheType).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return stats, fmt.Errorf("group cache entries by type: %w", err)
	}
	for _, row := range rows {
		stats.ByType[row.CacheType] = row.Count
	}

	return stats, nil
}

func (r *cacheRepo) Cleanup(ctx context.Context, maxAge time.Duration) (int, error) {
	now := time.Now()
	n, err := r.client.CacheEntry.Delete().
		Where(
			cacheentry.Or(
				cacheentry.ExpiresAtLTE(now),
				cacheentry.CreatedAtLT(now.Add(-maxAge)),
			),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("cleanup cache entries: %w", err)
	}
	return n, nil
}
