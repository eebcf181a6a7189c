package flow

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// terminal builds a terminal node with only a result payload.
func terminal(id, result string) Node {
	return Node{ID: id, Terminal: true, Result: result}
}

// eventLog records every trace event for assertions.
type eventLog struct {
	events []Event
}

func (l *eventLog) Observe(e Event) { l.events = append(l.events, e) }

func (l *eventLog) outcome() Outcome {
	for _, e := range l.events {
		if e.Kind == EventFinished {
			return e.Outcome
		}
	}
	return ""
}

func TestDiagnose_StartSelection(t *testing.T) {
	nodes := []Node{
		{ID: "A"},
		{ID: "B", Start: true, FallbackNext: []string{"T"}},
		{ID: "C", Start: true},
		terminal("T", "done"),
	}

	res := NewEngine(nil).Diagnose("anything", nodes)
	if !res.Resolved {
		t.Fatalf("resolved = false, want true (text: %q)", res.Text)
	}
	if len(res.Path) == 0 || res.Path[0] != "B" {
		t.Errorf("path = %v, want traversal starting at B", res.Path)
	}
}

func TestDiagnose_StartWithEmptyID(t *testing.T) {
	// Empty-ID nodes are kept but never indexed; a start flag on one
	// must degrade to fallback, not panic or emit its payload.
	log := &eventLog{}
	res := NewEngine(log).Diagnose("battery issue", []Node{
		{ID: "", Start: true, Terminal: true, Result: "should never surface"},
	})

	if res.Resolved {
		t.Error("resolved = true, want false")
	}
	if !strings.Contains(res.Text, "battery issue") {
		t.Errorf("text %q should echo the input verbatim", res.Text)
	}
	if log.outcome() != OutcomeDeadEnd {
		t.Errorf("outcome = %q, want %q", log.outcome(), OutcomeDeadEnd)
	}
}

func TestDiagnose_StartNotShadowedByDuplicate(t *testing.T) {
	// Last-wins indexing applies to edge resolution only. The start is
	// the first start-flagged record itself, even when a later record
	// reuses its ID.
	nodes := []Node{
		{ID: "X", Start: true, Terminal: true, Result: "Seized water pump."},
		{ID: "X"},
	}

	res := NewEngine(nil).Diagnose("anything", nodes)
	if !res.Resolved {
		t.Fatalf("resolved = false, want true (text: %q)", res.Text)
	}
	if !strings.Contains(res.Text, "Seized water pump.") {
		t.Errorf("text = %q, want the start record's own diagnosis", res.Text)
	}
	if !reflect.DeepEqual(res.Path, []string{"X"}) {
		t.Errorf("path = %v, want [X]", res.Path)
	}
}

func TestDiagnose_NoStartNode(t *testing.T) {
	log := &eventLog{}
	res := NewEngine(log).Diagnose("water pump is dead", []Node{{ID: "A"}, {ID: "B"}})

	if res.Resolved {
		t.Error("resolved = true, want false")
	}
	if !strings.Contains(res.Text, "water pump is dead") {
		t.Errorf("text %q should echo the input verbatim", res.Text)
	}
	if !strings.HasPrefix(res.Text, "Fallback diagnosis:\n") {
		t.Errorf("text %q should carry the fallback prefix", res.Text)
	}
	if log.outcome() != OutcomeNoStart {
		t.Errorf("outcome = %q, want %q", log.outcome(), OutcomeNoStart)
	}
}

func TestDiagnose_KeywordScoring(t *testing.T) {
	nodes := []Node{
		{
			ID: "S", Start: true,
			Routing: &RoutingConfig{
				Threshold: 1,
				Candidates: []Candidate{
					{TargetID: "X", Keywords: []string{"battery"}, Weight: 2},
					{TargetID: "Y", Keywords: []string{"leak"}, Weight: 3},
				},
			},
		},
		terminal("X", "battery fault"),
		terminal("Y", "water leak"),
	}

	res := NewEngine(nil).Diagnose("battery issue", nodes)
	if !res.Resolved {
		t.Fatalf("resolved = false, want true")
	}
	// score(X) = 1 hit × 2 = 2, score(Y) = 0 × 3 = 0 → X.
	if got := res.Path[len(res.Path)-1]; got != "X" {
		t.Errorf("chose %s, want X", got)
	}
}

func TestDiagnose_KeywordMatchIsCaseSensitive(t *testing.T) {
	nodes := []Node{
		{
			ID: "S", Start: true,
			Routing: &RoutingConfig{
				Threshold: 1,
				Candidates: []Candidate{
					{TargetID: "X", Keywords: []string{"Battery"}, Weight: 1},
				},
			},
		},
		terminal("X", "battery fault"),
	}

	res := NewEngine(nil).Diagnose("battery issue", nodes)
	if res.Resolved {
		t.Error("\"Battery\" must not match \"battery\" — matching is literal and case-sensitive")
	}
}

func TestDiagnose_TieBreakSpecificOverGeneric(t *testing.T) {
	nodes := []Node{
		{
			ID: "S", Start: true,
			Routing: &RoutingConfig{
				Threshold:  1,
				TieBreaker: TieSpecificOverGeneric,
				Candidates: []Candidate{
					{TargetID: "G", Keywords: []string{"fan"}, Weight: 2},
					{TargetID: "P", Keywords: []string{"fan", "vent", "roof"}, Weight: 2},
				},
			},
		},
		terminal("G", "generic"),
		terminal("P", "specific"),
	}

	// Both score 2; P has more keywords and wins the tie.
	res := NewEngine(nil).Diagnose("the fan is loud", nodes)
	if got := res.Path[len(res.Path)-1]; got != "P" {
		t.Errorf("chose %s, want P (more keywords wins ties)", got)
	}
}

func TestDiagnose_TieBreakStableOrder(t *testing.T) {
	cfg := &RoutingConfig{
		Threshold:  1,
		TieBreaker: TieSpecificOverGeneric,
		Candidates: []Candidate{
			{TargetID: "A1", Keywords: []string{"fan"}, Weight: 2},
			{TargetID: "A2", Keywords: []string{"vent"}, Weight: 2},
		},
	}
	nodes := []Node{
		{ID: "S", Start: true, Routing: cfg},
		terminal("A1", "first"),
		terminal("A2", "second"),
	}

	// Equal score, equal keyword count → earliest declared candidate.
	res := NewEngine(nil).Diagnose("fan and vent both mentioned", nodes)
	if got := res.Path[len(res.Path)-1]; got != "A1" {
		t.Errorf("chose %s, want A1 (first-seen on full tie)", got)
	}
}

func TestDiagnose_NoTieBreakRuleKeepsFirstSeen(t *testing.T) {
	nodes := []Node{
		{
			ID: "S", Start: true,
			Routing: &RoutingConfig{
				Threshold:  1,
				TieBreaker: "unknown_rule",
				Candidates: []Candidate{
					{TargetID: "A1", Keywords: []string{"fan"}, Weight: 2},
					{TargetID: "A2", Keywords: []string{"fan", "vent", "roof"}, Weight: 2},
				},
			},
		},
		terminal("A1", "first"),
		terminal("A2", "second"),
	}

	// A2 scores the same with more keywords, but the rule is not
	// recognized, so first-seen wins.
	res := NewEngine(nil).Diagnose("fan noise", nodes)
	if got := res.Path[len(res.Path)-1]; got != "A1" {
		t.Errorf("chose %s, want A1", got)
	}
}

func TestDiagnose_FallbackCandidate(t *testing.T) {
	nodes := []Node{
		{
			ID: "S", Start: true,
			Routing: &RoutingConfig{
				Threshold: 5,
				Candidates: []Candidate{
					{TargetID: "X", Keywords: []string{"battery"}, Weight: 1},
					{TargetID: "F", Keywords: []string{}, Weight: 1, Fallback: true},
				},
			},
		},
		terminal("X", "battery"),
		terminal("F", "default branch"),
	}

	// score(X) = 1 < threshold 5 → fallback-flagged candidate wins.
	res := NewEngine(nil).Diagnose("battery issue", nodes)
	if !res.Resolved {
		t.Fatal("resolved = false, want true via fallback candidate")
	}
	if got := res.Path[len(res.Path)-1]; got != "F" {
		t.Errorf("chose %s, want F", got)
	}
}

func TestDiagnose_UnresolvableCandidateSkipped(t *testing.T) {
	nodes := []Node{
		{
			ID: "S", Start: true,
			Routing: &RoutingConfig{
				Threshold: 1,
				Candidates: []Candidate{
					{TargetID: "GHOST", Keywords: []string{"battery"}, Weight: 10},
					{TargetID: "X", Keywords: []string{"battery"}, Weight: 1},
				},
			},
		},
		terminal("X", "battery"),
	}

	// GHOST would score highest but doesn't resolve; X is chosen.
	res := NewEngine(nil).Diagnose("battery issue", nodes)
	if !res.Resolved {
		t.Fatal("resolved = false, want true")
	}
	if got := res.Path[len(res.Path)-1]; got != "X" {
		t.Errorf("chose %s, want X", got)
	}
}

func TestDiagnose_LegacyFallbackList(t *testing.T) {
	nodes := []Node{
		{ID: "S", Start: true, FallbackNext: []string{"N2", "N3"}},
		terminal("N3", "reached via legacy list"),
	}

	// N2 doesn't exist; the first resolvable id is N3.
	res := NewEngine(nil).Diagnose("anything", nodes)
	if !res.Resolved {
		t.Fatal("resolved = false, want true")
	}
	if got := res.Path[len(res.Path)-1]; got != "N3" {
		t.Errorf("chose %s, want N3", got)
	}
}

func TestDiagnose_TerminalAssembly(t *testing.T) {
	nodes := []Node{{
		ID: "T", Start: true, Terminal: true,
		Result: "R", Steps: "S", Cautions: "",
	}}

	res := NewEngine(nil).Diagnose("x", nodes)
	want := "Diagnosis:\nR\n\nRepair steps:\nS"
	if res.Text != want {
		t.Errorf("text = %q, want %q", res.Text, want)
	}
	if strings.Contains(res.Text, "Cautions") {
		t.Error("empty cautions section must be omitted entirely")
	}
}

func TestDiagnose_TerminalWithEmptyPayload(t *testing.T) {
	res := NewEngine(nil).Diagnose("x", []Node{{ID: "T", Start: true, Terminal: true}})
	if res.Text != "Diagnosis complete." {
		t.Errorf("text = %q, want placeholder for empty payload", res.Text)
	}
	if !res.Resolved {
		t.Error("terminal with empty payload still resolves")
	}
}

func TestDiagnose_CycleDetected(t *testing.T) {
	nodes := []Node{
		{ID: "A", Start: true, FallbackNext: []string{"B"}},
		{ID: "B", FallbackNext: []string{"A"}},
	}

	log := &eventLog{}
	res := NewEngine(log).Diagnose("loop", nodes)
	if res.Resolved {
		t.Error("cyclic graph must fall back")
	}
	if log.outcome() != OutcomeCycle {
		t.Errorf("outcome = %q, want %q", log.outcome(), OutcomeCycle)
	}
	if !reflect.DeepEqual(res.Path, []string{"A", "B"}) {
		t.Errorf("path = %v, want [A B]", res.Path)
	}
}

func TestDiagnose_DeadEnd(t *testing.T) {
	log := &eventLog{}
	res := NewEngine(log).Diagnose("x", []Node{{ID: "A", Start: true}})
	if res.Resolved {
		t.Error("dead end must fall back")
	}
	if log.outcome() != OutcomeDeadEnd {
		t.Errorf("outcome = %q, want %q", log.outcome(), OutcomeDeadEnd)
	}
}

func TestDiagnose_HopLimit(t *testing.T) {
	// A chain longer than the hop limit, no cycles, no terminal.
	var nodes []Node
	for i := 0; i < hopLimit+5; i++ {
		nodes = append(nodes, Node{
			ID:           fmt.Sprintf("N%d", i),
			Start:        i == 0,
			FallbackNext: []string{fmt.Sprintf("N%d", i+1)},
		})
	}

	log := &eventLog{}
	res := NewEngine(log).Diagnose("x", nodes)
	if res.Resolved {
		t.Error("over-long chain must fall back")
	}
	if log.outcome() != OutcomeHopLimit {
		t.Errorf("outcome = %q, want %q", log.outcome(), OutcomeHopLimit)
	}
	if len(res.Path) != hopLimit {
		t.Errorf("path length = %d, want %d", len(res.Path), hopLimit)
	}
}

func TestDiagnose_Deterministic(t *testing.T) {
	nodes := []Node{
		{
			ID: "S", Start: true,
			Routing: &RoutingConfig{
				Threshold: 1,
				Candidates: []Candidate{
					{TargetID: "X", Keywords: []string{"battery", "charge"}, Weight: 2},
					{TargetID: "Y", Keywords: []string{"leak"}, Weight: 3},
				},
			},
		},
		terminal("X", "battery"),
		terminal("Y", "leak"),
	}

	snap := NewSnapshot(nodes)
	eng := NewEngine(nil)
	first := eng.DiagnoseWith("battery won't charge", snap)
	second := eng.DiagnoseWith("battery won't charge", snap)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ:\n%+v\n%+v", first, second)
	}
}

func TestSnapshotHolder_AtomicSwap(t *testing.T) {
	var h Holder
	if h.Load() != nil {
		t.Fatal("empty holder should return nil")
	}

	h.Store(NewSnapshot([]Node{{ID: "old", Start: true, Terminal: true, Result: "old"}}))
	before := h.Load()

	h.Store(NewSnapshot([]Node{{ID: "new", Start: true, Terminal: true, Result: "new"}}))

	// The old snapshot is unchanged; callers holding it keep a
	// consistent view.
	res := NewEngine(nil).DiagnoseWith("x", before)
	if !strings.Contains(res.Text, "old") {
		t.Errorf("stale snapshot mutated: %q", res.Text)
	}

	res = NewEngine(nil).DiagnoseWith("x", h.Load())
	if !strings.Contains(res.Text, "new") {
		t.Errorf("holder did not publish the new snapshot: %q", res.Text)
	}
}

func TestDiagnose_ConfigPriorityOverLegacyList(t *testing.T) {
	nodes := []Node{
		{
			ID: "S", Start: true,
			FallbackNext: []string{"L"},
			Routing: &RoutingConfig{
				Threshold: 1,
				Candidates: []Candidate{
					{TargetID: "C", Keywords: []string{"battery"}, Weight: 1},
				},
			},
		},
		terminal("C", "via config"),
		terminal("L", "via legacy list"),
	}

	res := NewEngine(nil).Diagnose("battery", nodes)
	if got := res.Path[len(res.Path)-1]; got != "C" {
		t.Errorf("chose %s, want C (routing config has priority)", got)
	}

	// When the config selects nothing, the legacy list takes over.
	res = NewEngine(nil).Diagnose("unrelated text", nodes)
	if got := res.Path[len(res.Path)-1]; got != "L" {
		t.Errorf("chose %s, want L (legacy list after config misses)", got)
	}
}
