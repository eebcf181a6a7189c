// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hmaeda/campdoc/ent/cacheentry"
	"github.com/hmaeda/campdoc/ent/llmrequestevent"
	"github.com/hmaeda/campdoc/ent/routingevent"
	"github.com/hmaeda/campdoc/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cacheentryFields := schema.CacheEntry{}.Fields()
	_ = cacheentryFields
	// cacheentryDescKey is the schema descriptor for key field.
	cacheentryDescKey := cacheentryFields[0].Descriptor()
	// cacheentry.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	cacheentry.KeyValidator = cacheentryDescKey.Validators[0].(func(string) error)
	// cacheentryDescCreatedAt is the schema descriptor for created_at field.
	cacheentryDescCreatedAt := cacheentryFields[2].Descriptor()
	// cacheentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	cacheentry.DefaultCreatedAt = cacheentryDescCreatedAt.Default.(func() time.Time)
	// cacheentryDescCacheType is the schema descriptor for cache_type field.
	cacheentryDescCacheType := cacheentryFields[4].Descriptor()
	// cacheentry.DefaultCacheType holds the default value on creation for the cache_type field.
	cacheentry.DefaultCacheType = cacheentryDescCacheType.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	routingeventMixin := schema.RoutingEvent{}.Mixin()
	routingeventMixinFields0 := routingeventMixin[0].Fields()
	_ = routingeventMixinFields0
	routingeventFields := schema.RoutingEvent{}.Fields()
	_ = routingeventFields
	// routingeventDescTimestamp is the schema descriptor for timestamp field.
	routingeventDescTimestamp := routingeventMixinFields0[1].Descriptor()
	// routingevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	routingevent.DefaultTimestamp = routingeventDescTimestamp.Default.(func() time.Time)
	// routingeventDescSessionID is the schema descriptor for session_id field.
	routingeventDescSessionID := routingeventFields[0].Descriptor()
	// routingevent.DefaultSessionID holds the default value on creation for the session_id field.
	routingevent.DefaultSessionID = routingeventDescSessionID.Default.(string)
	// routingeventDescHops is the schema descriptor for hops field.
	routingeventDescHops := routingeventFields[5].Descriptor()
	// routingevent.DefaultHops holds the default value on creation for the hops field.
	routingevent.DefaultHops = routingeventDescHops.Default.(int)
}
