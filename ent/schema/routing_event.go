package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoutingEvent records one diagnostic traversal: what the user asked,
// which nodes were visited and how it ended. Routing failures never
// surface to the caller (they fold into a fallback result), so this
// table is the only place the distinction is kept.
type RoutingEvent struct {
	ent.Schema
}

func (RoutingEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RoutingEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Default("").
			Comment("Chat session the traversal belongs to, if any"),
		field.String("input").
			Comment("User symptom text"),
		field.String("outcome").
			Comment("diagnosed, no-start, cycle, dead-end, hop-limit"),
		field.Bool("resolved"),
		field.JSON("path", []string{}).
			Optional().
			Comment("Visited node ids in order"),
		field.Int("hops").
			Default(0),
	}
}

func (RoutingEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("outcome"),
		index.Fields("session_id"),
	}
}
