package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// RoutingEventData captures one diagnostic traversal.
type RoutingEventData struct {
	SessionID string
	Input     string
	Outcome   string
	Resolved  bool
	Path      []string
	Hops      int
}

// RoutingEventRecord is a stored routing event with its global ordering.
type RoutingEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	RoutingEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEventRecord is a stored LLM request event with its global ordering.
type LLMRequestEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendRouting records a diagnostic traversal event.
	AppendRouting(ctx context.Context, data RoutingEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentRouting returns routing events matching opts, newest first.
	RecentRouting(ctx context.Context, opts QueryOpts) ([]RoutingEventRecord, error)

	// RecentLLMRequests returns LLM request events matching opts, newest first.
	RecentLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)
}

// CacheStats summarizes the state of the cache table.
type CacheStats struct {
	Total   int
	Expired int
	ByType  map[string]int
}

// CacheRepo provides TTL-based storage for content-store payloads.
// Keys are produced by Key so that callers never store raw request
// parameters in the table.
type CacheRepo interface {
	// Get returns the cached value for key if present and not expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key with the given TTL, replacing any
	// previous entry.
	Set(ctx context.Context, key, cacheType string, value []byte, ttl time.Duration) error

	// Delete removes the entry for key if present.
	Delete(ctx context.Context, key string) error

	// ClearExpired deletes all expired entries and reports how many.
	ClearExpired(ctx context.Context) (int, error)

	// ClearType deletes all entries of the given cache type.
	ClearType(ctx context.Context, cacheType string) (int, error)

	// Stats summarizes the cache table.
	Stats(ctx context.Context) (CacheStats, error)

	// Cleanup deletes expired entries plus anything created before
	// maxAge ago, regardless of TTL.
	Cleanup(ctx context.Context, maxAge time.Duration) (int, error)
}
