package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"cache_entries", "routing_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryRoutingEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	inputs := []string{"fridge not cooling", "water pump noisy", "heater smells"}
	for i, in := range inputs {
		err := repo.AppendRouting(ctx, RoutingEventData{
			SessionID: "sess-1",
			Input:     in,
			Outcome:   "diagnosed",
			Resolved:  true,
			Path:      []string{"start", "node-a"},
			Hops:      2 + i,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.RecentRouting(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("recent routing: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	// Newest first.
	if events[0].Input != "heater smells" {
		t.Errorf("events[0].Input = %q, want %q", events[0].Input, "heater smells")
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", events[0].Sequence, events[1].Sequence)
	}
	if len(events[0].Path) != 2 || events[0].Path[0] != "start" {
		t.Errorf("path = %v, want [start node-a]", events[0].Path)
	}

	// Limit applies.
	events, err = repo.RecentRouting(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("recent routing with limit: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("got %d events, want 1", len(events))
	}
}

func TestAppendAndQueryLLMRequests(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-20250514",
		Purpose:      "consult",
		InputTokens:  120,
		OutputTokens: 450,
		LatencyMs:    900,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-20250514",
		Purpose:      "consult",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append failure event: %v", err)
	}

	events, err := repo.RecentLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("recent LLM requests: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Success {
		t.Error("expected newest event to be the failure")
	}
	if events[0].ErrorMessage != "rate limited" {
		t.Errorf("error message = %q, want %q", events[0].ErrorMessage, "rate limited")
	}
	if events[1].OutputTokens != 450 {
		t.Errorf("output tokens = %d, want 450", events[1].OutputTokens)
	}
}

func TestSequenceOrdersAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendRouting(ctx, RoutingEventData{
		Input:   "battery drains overnight",
		Outcome: "dead-end",
	})
	if err != nil {
		t.Fatalf("append routing: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai",
		Model:    "gpt-4o-mini",
		Purpose:  "consult",
		Success:  true,
	})
	if err != nil {
		t.Fatalf("append LLM request: %v", err)
	}

	routing, err := repo.RecentRouting(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("recent routing: %v", err)
	}
	llm, err := repo.RecentLLMRequests(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("recent LLM requests: %v", err)
	}

	if !(routing[0].Sequence < llm[0].Sequence) {
		t.Errorf("routing sequence %d should precede LLM sequence %d",
			routing[0].Sequence, llm[0].Sequence)
	}
}
