package llm

import "testing"

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("gpt-4o-mini should be priced")
	}
	if c.InputPerMTok != 0.15 || c.OutputPerMTok != 0.6 {
		t.Errorf("gpt-4o-mini = %+v", *c)
	}

	if LookupCost("totally-unknown-model") != nil {
		t.Error("unknown model should return nil")
	}
}

func TestLookupCost_OpenRouterPrefixedIDs(t *testing.T) {
	// The default OpenRouter model reports a provider-prefixed ID; the
	// cost column in `events llm` depends on it being priced.
	if LookupCost(DefaultConfig().OpenRouter.Model) == nil {
		t.Errorf("default OpenRouter model %q should be priced", DefaultConfig().OpenRouter.Model)
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 3, OutputPerMTok: 15}
	got := c.Cost(1_000_000, 100_000)
	if got != 4.5 {
		t.Errorf("cost = %v, want 4.5", got)
	}
}
