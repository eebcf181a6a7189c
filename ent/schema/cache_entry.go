package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CacheEntry stores one cached content-store payload. Notion API
// responses are expensive (rate-limited, one HTTP round-trip per
// related page), so loaders write their decoded results here with a
// TTL and read back on the next run.
type CacheEntry struct {
	ent.Schema
}

func (CacheEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("sha256 of the namespaced request fingerprint"),
		field.Bytes("value").
			Comment("JSON-encoded payload"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at"),
		field.String("cache_type").
			Default("default").
			Comment("Namespace label: nodes, cases, items, default"),
	}
}

func (CacheEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expires_at"),
		index.Fields("cache_type"),
	}
}
