package flow

import "testing"

func TestParseRoutingConfig_Valid(t *testing.T) {
	memo := `Routing notes from the workshop team.
{ "routing_config": {
    "next_nodes_map": [
      { "id": "N2", "keywords": ["battery", "charge"], "weight": 2, "fallback": false },
      { "id": "N3", "keywords": ["leak"], "weight": 3, "fallback": true }
    ],
    "threshold": 1,
    "tie_breaker_rule": "specific_over_generic"
} }`

	cfg := ParseRoutingConfig(memo)
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}
	if len(cfg.Candidates) != 2 {
		t.Fatalf("candidates = %d, want 2", len(cfg.Candidates))
	}
	if cfg.Threshold != 1 {
		t.Errorf("threshold = %v, want 1", cfg.Threshold)
	}
	if cfg.TieBreaker != TieSpecificOverGeneric {
		t.Errorf("tie breaker = %q, want %q", cfg.TieBreaker, TieSpecificOverGeneric)
	}

	c := cfg.Candidates[0]
	if c.TargetID != "N2" || c.Weight != 2 || c.Fallback {
		t.Errorf("candidate[0] = %+v, want N2/weight 2/no fallback", c)
	}
	if !cfg.Candidates[1].Fallback {
		t.Error("candidate[1] should be flagged fallback")
	}
}

func TestParseRoutingConfig_DefaultWeight(t *testing.T) {
	cfg := ParseRoutingConfig(`{"routing_config":{"next_nodes_map":[{"id":"N2","keywords":["x"]}]}}`)
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}
	if got := cfg.Candidates[0].Weight; got != 1 {
		t.Errorf("omitted weight = %v, want default 1", got)
	}
}

func TestParseRoutingConfig_SurroundingText(t *testing.T) {
	memo := "prefix text {\"routing_config\":{\"threshold\":2}} trailing note"
	cfg := ParseRoutingConfig(memo)
	if cfg == nil {
		t.Fatal("expected config embedded in free text")
	}
	if cfg.Threshold != 2 {
		t.Errorf("threshold = %v, want 2", cfg.Threshold)
	}
}

func TestParseRoutingConfig_Absent(t *testing.T) {
	cases := []struct {
		name string
		memo string
	}{
		{"empty", ""},
		{"no braces", "just a note from the author"},
		{"malformed JSON", `{ "routing_config": { "threshold": } }`},
		{"no routing_config key", `{ "other": 1 }`},
		{"closing before opening", "} before {"},
		{"wrong value type", `{ "routing_config": "not an object" }`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if cfg := ParseRoutingConfig(tc.memo); cfg != nil {
				t.Errorf("got %+v, want nil", cfg)
			}
		})
	}
}
