package flow

import (
	"encoding/json"
	"strings"
)

// TieSpecificOverGeneric prefers the candidate with more keywords when
// two candidates score the same. Any other tie-breaker value means
// "keep first-seen in declared order".
const TieSpecificOverGeneric = "specific_over_generic"

// Candidate is one possible successor inside a routing config.
type Candidate struct {
	// TargetID names the successor node. It may reference a node that
	// doesn't exist; such candidates are skipped during selection.
	TargetID string

	// Keywords are matched as literal, case-sensitive substrings of the
	// user's text. Score = matches × Weight.
	Keywords []string
	Weight   float64

	// Fallback marks this candidate as the default choice when no
	// candidate clears the threshold.
	Fallback bool
}

// RoutingConfig is the weighted keyword rule set attached to a node for
// deciding its successor.
type RoutingConfig struct {
	Candidates []Candidate
	Threshold  float64
	TieBreaker string
}

// Wire shape of the JSON fragment embedded in the node's memo field:
//
//	{ "routing_config": {
//	    "next_nodes_map": [ { "id": "...", "keywords": [...], "weight": 2, "fallback": true } ],
//	    "threshold": 1,
//	    "tie_breaker_rule": "specific_over_generic"
//	} }
type routingConfigWire struct {
	RoutingConfig *struct {
		NextNodesMap []struct {
			ID       string   `json:"id"`
			Keywords []string `json:"keywords"`
			Weight   *float64 `json:"weight"`
			Fallback bool     `json:"fallback"`
		} `json:"next_nodes_map"`
		Threshold      float64 `json:"threshold"`
		TieBreakerRule string  `json:"tie_breaker_rule"`
	} `json:"routing_config"`
}

// ParseRoutingConfig extracts a routing config from a free-text memo
// field. It scans for a JSON object delimited by the first "{" and the
// last "}", decodes it, and returns the "routing_config" value. On any
// decode failure, or when no routing_config key is present, it returns
// nil. Authoring errors in a human-edited field must degrade to "no
// configuration", never to an error.
func ParseRoutingConfig(text string) *RoutingConfig {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil
	}

	var wire routingConfigWire
	if err := json.Unmarshal([]byte(text[start:end+1]), &wire); err != nil {
		return nil
	}
	if wire.RoutingConfig == nil {
		return nil
	}

	cfg := &RoutingConfig{
		Threshold:  wire.RoutingConfig.Threshold,
		TieBreaker: wire.RoutingConfig.TieBreakerRule,
	}
	for _, c := range wire.RoutingConfig.NextNodesMap {
		weight := 1.0 // authors may omit weight
		if c.Weight != nil {
			weight = *c.Weight
		}
		cfg.Candidates = append(cfg.Candidates, Candidate{
			TargetID: c.ID,
			Keywords: c.Keywords,
			Weight:   weight,
			Fallback: c.Fallback,
		})
	}
	return cfg
}
