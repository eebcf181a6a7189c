package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hmaeda/campdoc/internal/store"
)

// fakeEventRepo captures appended LLM request events in memory.
type fakeEventRepo struct {
	llm []store.LLMRequestEventData
}

func (f *fakeEventRepo) AppendRouting(_ context.Context, _ store.RoutingEventData) error {
	return nil
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.llm = append(f.llm, data)
	return nil
}

func (f *fakeEventRepo) RecentRouting(_ context.Context, _ store.QueryOpts) ([]store.RoutingEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) RecentLLMRequests(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"ok":true}`),
			Usage:   Usage{InputTokens: 12, OutputTokens: 34, TotalTokens: 46},
		},
	)
	repo := &fakeEventRepo{}
	p := WithLogging(mock, "anthropic", repo)

	ctx := WithPurpose(context.Background(), "consult")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.llm) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.llm))
	}
	ev := repo.llm[0]
	if ev.Provider != "anthropic" {
		t.Errorf("provider = %q, want %q", ev.Provider, "anthropic")
	}
	if ev.Purpose != "consult" {
		t.Errorf("purpose = %q, want %q", ev.Purpose, "consult")
	}
	if !ev.Success {
		t.Error("expected success=true")
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 34 {
		t.Errorf("tokens = %d/%d, want 12/34", ev.InputTokens, ev.OutputTokens)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	repo := &fakeEventRepo{}
	p := WithLogging(mock, "openai", repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.llm) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.llm))
	}
	ev := repo.llm[0]
	if ev.Success {
		t.Error("expected success=false")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected non-empty error message")
	}
}
