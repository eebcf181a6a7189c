package advisor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hmaeda/campdoc/internal/flow"
	"github.com/hmaeda/campdoc/internal/llm"
	"github.com/hmaeda/campdoc/internal/notion"
)

func testContext() Context {
	return Context{
		Nodes: []notion.NodeRecord{
			{
				Node: flow.Node{
					ID:       "battery-flat",
					Category: "Battery",
					Symptoms: []string{"won't start", "dim lights"},
					Result:   "Leisure battery discharged below 11V.",
					Steps:    "Charge overnight, then load-test.",
				},
				RelatedCases: []notion.RepairCase{
					{Title: "case-7", Solution: "Replaced isolator relay"},
				},
				RelatedItems: []notion.Item{
					{Name: "AGM 100Ah battery", Price: "210"},
				},
			},
		},
		Cases: []notion.RepairCase{
			{Title: "case-12", Category: "Battery", Solution: "New alternator belt", CostEstimate: "80-120"},
		},
		Items: []notion.Item{
			{Name: "Battery isolator", Category: "Electrical", Price: "35", Supplier: "NorthParts"},
		},
	}
}

func TestConsultCallsProviderWithContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Sounds like the leisure battery. Charge it overnight first."),
	})
	a := New(mock, nil, DefaultConfig())

	reply, err := a.Consult(context.Background(), "my battery keeps dying", testContext())
	if err != nil {
		t.Fatalf("consult: %v", err)
	}
	if !strings.Contains(reply, "leisure battery") {
		t.Errorf("reply = %q", reply)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("provider called %d times, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != nil {
		t.Error("consultation should request free text, not structured output")
	}
	userMsg := req.Messages[len(req.Messages)-1].Content
	for _, want := range []string{
		"my battery keeps dying",
		"battery-flat",
		"Replaced isolator relay",
		"AGM 100Ah battery",
		"case-12",
		"Battery isolator",
	} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestConsultCannedResponseSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	a := New(mock, nil, DefaultConfig())

	reply, err := a.Consult(context.Background(), "can I book an appointment for Friday?", Context{})
	if err != nil {
		t.Fatalf("consult: %v", err)
	}
	if !strings.Contains(reply, shopPhone) {
		t.Errorf("booking reply should carry the shop number: %q", reply)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", mock.CallCount())
	}
	if a.Memory().Len() != 2 {
		t.Errorf("memory should record the exchange, len = %d", a.Memory().Len())
	}
}

func TestConsultProviderFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	a := New(mock, nil, DefaultConfig())

	reply, err := a.Consult(context.Background(), "why is the heater rattling?", Context{})
	if err != nil {
		t.Fatalf("consult should degrade, not fail: %v", err)
	}
	if reply != errorFallback {
		t.Errorf("reply = %q, want the fallback", reply)
	}
}

func TestConsultCarriesHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Check the pump strainer.")},
		llm.MockResponse{Content: json.RawMessage("Then replace the strainer seal.")},
	)
	a := New(mock, nil, DefaultConfig())

	ctx := context.Background()
	if _, err := a.Consult(ctx, "the water pump is noisy", Context{}); err != nil {
		t.Fatalf("first consult: %v", err)
	}
	if _, err := a.Consult(ctx, "I cleaned it, still noisy", Context{}); err != nil {
		t.Fatalf("second consult: %v", err)
	}

	second := mock.Calls[1]
	if len(second.Messages) != 3 {
		t.Fatalf("second request carries %d messages, want 3", len(second.Messages))
	}
	if second.Messages[0].Content != "the water pump is noisy" {
		t.Errorf("history[0] = %q", second.Messages[0].Content)
	}
	if second.Messages[1].Role != llm.RoleAssistant {
		t.Errorf("history[1] role = %q", second.Messages[1].Role)
	}
}
