package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hmaeda/campdoc/internal/store"
)

// Cache namespaces for the three content databases.
const (
	cacheTypeNodes = "nodes"
	cacheTypeCases = "cases"
	cacheTypeItems = "items"

	// defaultTTL keeps ingested content for half an hour before the
	// next read goes back to the API.
	defaultTTL = 30 * time.Minute
)

// Source serves ingested content, reading through the store's cache.
// A cache miss (or expired entry) hits the Notion API and repopulates.
type Source struct {
	client *Client
	cfg    Config
	cache  store.CacheRepo
	ttl    time.Duration
}

// NewSource creates a Source over the given client and cache.
func NewSource(client *Client, cfg Config, cache store.CacheRepo) *Source {
	return &Source{client: client, cfg: cfg, cache: cache, ttl: defaultTTL}
}

// Nodes returns the diagnostic node records, cached.
func (s *Source) Nodes(ctx context.Context) ([]NodeRecord, error) {
	if s.cfg.NodeDB == "" {
		return nil, fmt.Errorf("node database ID is not configured (set CAMPDOC_NODE_DB)")
	}
	var recs []NodeRecord
	err := s.cached(ctx, cacheTypeNodes, s.cfg.NodeDB, &recs, func() (any, error) {
		return s.client.LoadNodes(ctx, s.cfg.NodeDB)
	})
	return recs, err
}

// Cases returns the repair cases, cached. An unconfigured case database
// yields an empty slice.
func (s *Source) Cases(ctx context.Context) ([]RepairCase, error) {
	if s.cfg.CaseDB == "" {
		return nil, nil
	}
	var cases []RepairCase
	err := s.cached(ctx, cacheTypeCases, s.cfg.CaseDB, &cases, func() (any, error) {
		return s.client.LoadCases(ctx, s.cfg.CaseDB)
	})
	return cases, err
}

// Items returns the parts and tools, cached. An unconfigured item
// database yields an empty slice.
func (s *Source) Items(ctx context.Context) ([]Item, error) {
	if s.cfg.ItemDB == "" {
		return nil, nil
	}
	var items []Item
	err := s.cached(ctx, cacheTypeItems, s.cfg.ItemDB, &items, func() (any, error) {
		return s.client.LoadItems(ctx, s.cfg.ItemDB)
	})
	return items, err
}

// Refresh reloads every configured database from the API and rewrites
// the cache, ignoring existing entries.
func (s *Source) Refresh(ctx context.Context) error {
	if s.cfg.NodeDB != "" {
		recs, err := s.client.LoadNodes(ctx, s.cfg.NodeDB)
		if err != nil {
			return err
		}
		if err := s.put(ctx, cacheTypeNodes, s.cfg.NodeDB, recs); err != nil {
			return err
		}
	}
	if s.cfg.CaseDB != "" {
		cases, err := s.client.LoadCases(ctx, s.cfg.CaseDB)
		if err != nil {
			return err
		}
		if err := s.put(ctx, cacheTypeCases, s.cfg.CaseDB, cases); err != nil {
			return err
		}
	}
	if s.cfg.ItemDB != "" {
		items, err := s.client.LoadItems(ctx, s.cfg.ItemDB)
		if err != nil {
			return err
		}
		if err := s.put(ctx, cacheTypeItems, s.cfg.ItemDB, items); err != nil {
			return err
		}
	}
	return nil
}

// cached reads out from the cache, falling back to load on a miss.
func (s *Source) cached(ctx context.Context, cacheType, dbID string, out any, load func() (any, error)) error {
	key := store.Key(cacheType, dbID)

	if raw, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		if err := json.Unmarshal(raw, out); err == nil {
			return nil
		}
		// A corrupt entry falls through to a fresh load.
	}

	fresh, err := load()
	if err != nil {
		return err
	}
	if err := s.put(ctx, cacheType, dbID, fresh); err != nil {
		return err
	}

	raw, err := json.Marshal(fresh)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", cacheType, err)
	}
	return json.Unmarshal(raw, out)
}

func (s *Source) put(ctx context.Context, cacheType, dbID string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", cacheType, err)
	}
	key := store.Key(cacheType, dbID)
	if err := s.cache.Set(ctx, key, cacheType, raw, s.ttl); err != nil {
		return fmt.Errorf("cache %s: %w", cacheType, err)
	}
	return nil
}
