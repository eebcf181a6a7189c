// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CacheEntriesColumns holds the columns for the "cache_entries" table.
	CacheEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeBytes},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "cache_type", Type: field.TypeString, Default: "default"},
	}
	// CacheEntriesTable holds the schema information for the "cache_entries" table.
	CacheEntriesTable = &schema.Table{
		Name:       "cache_entries",
		Columns:    CacheEntriesColumns,
		PrimaryKey: []*schema.Column{CacheEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cacheentry_expires_at",
				Unique:  false,
				Columns: []*schema.Column{CacheEntriesColumns[4]},
			},
			{
				Name:    "cacheentry_cache_type",
				Unique:  false,
				Columns: []*schema.Column{CacheEntriesColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// RoutingEventsColumns holds the columns for the "routing_events" table.
	RoutingEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "input", Type: field.TypeString},
		{Name: "outcome", Type: field.TypeString},
		{Name: "resolved", Type: field.TypeBool},
		{Name: "path", Type: field.TypeJSON, Nullable: true},
		{Name: "hops", Type: field.TypeInt, Default: 0},
	}
	// RoutingEventsTable holds the schema information for the "routing_events" table.
	RoutingEventsTable = &schema.Table{
		Name:       "routing_events",
		Columns:    RoutingEventsColumns,
		PrimaryKey: []*schema.Column{RoutingEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "routingevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RoutingEventsColumns[1]},
			},
			{
				Name:    "routingevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RoutingEventsColumns[2]},
			},
			{
				Name:    "routingevent_outcome",
				Unique:  false,
				Columns: []*schema.Column{RoutingEventsColumns[5]},
			},
			{
				Name:    "routingevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{RoutingEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CacheEntriesTable,
		LlmRequestEventsTable,
		RoutingEventsTable,
	}
)

func init() {
}
