package flow

import "strings"

// hopLimit bounds the number of node-to-node transitions in a single
// traversal. The graph is authored externally and may be cyclic or
// malformed; the bound makes termination an invariant rather than a
// property of well-behaved data.
const hopLimit = 20

// Labels prefixed to the terminal payload sections.
const (
	labelDiagnosis = "Diagnosis:\n"
	labelSteps     = "Repair steps:\n"
	labelCautions  = "Cautions:\n"
)

// fallbackPrefix heads the result text when traversal cannot reach a
// terminal node. The user's input is echoed after it so the calling
// layer can hand the text to a human or an LLM as-is.
const fallbackPrefix = "Fallback diagnosis:\n"

// Result is the outcome of one diagnose call. Callers branch on
// Resolved only; the reason a traversal fell back is reported through
// the Observer, not here.
type Result struct {
	Text     string
	Resolved bool
	Path     []string
}

// Engine walks the diagnostic graph. It is a pure function over an
// immutable registry: no I/O, no blocking, safe for concurrent use.
type Engine struct {
	obs Observer
}

// NewEngine creates an engine. A nil observer discards trace events.
func NewEngine(obs Observer) *Engine {
	if obs == nil {
		obs = nopObserver{}
	}
	return &Engine{obs: obs}
}

// Diagnose builds a registry from nodes and resolves userText against
// it. Convenience for one-shot callers; long-lived callers should build
// a Snapshot once and use DiagnoseWith.
func (e *Engine) Diagnose(userText string, nodes []Node) Result {
	return e.run(userText, BuildRegistry(nodes))
}

// DiagnoseWith resolves userText against a previously built snapshot.
func (e *Engine) DiagnoseWith(userText string, snap *Snapshot) Result {
	return e.run(userText, snap.Registry())
}

func (e *Engine) run(userText string, reg *Registry) Result {
	starts := reg.StartNodes()
	if len(starts) == 0 {
		e.obs.Observe(Event{Kind: EventFinished, Outcome: OutcomeNoStart})
		return fallbackResult(userText, nil)
	}

	// First start-flagged node in input order. Traversal begins at the
	// record itself, not its index entry: a later duplicate ID must not
	// redirect the start, and an empty-ID start is never indexed at all.
	// Category-directed start selection is a possible extension; the
	// authored graphs carry a single entry point today.
	start := starts[0]
	current := &start
	e.obs.Observe(Event{Kind: EventStartSelected, NodeID: current.ID})

	seen := make(map[string]bool, hopLimit)
	path := make([]string, 0, hopLimit)
	outcome := OutcomeHopLimit

	for hop := 0; hop < hopLimit; hop++ {
		if current.ID == "" {
			outcome = OutcomeDeadEnd
			break
		}
		if seen[current.ID] {
			outcome = OutcomeCycle
			break
		}
		seen[current.ID] = true
		path = append(path, current.ID)

		if current.Terminal {
			e.obs.Observe(Event{Kind: EventFinished, Outcome: OutcomeDiagnosed, Path: path})
			return Result{Text: assembleDiagnosis(current), Resolved: true, Path: path}
		}

		next := e.nextNode(userText, current, reg)
		if next == nil {
			outcome = OutcomeDeadEnd
			break
		}

		e.obs.Observe(Event{Kind: EventTransition, NodeID: current.ID, TargetID: next.ID})
		current = next
	}

	e.obs.Observe(Event{Kind: EventFinished, Outcome: outcome, Path: path})
	return fallbackResult(userText, path)
}

// nextNode picks the successor of current. The routing config takes
// priority; the legacy fallback list is consulted when the config is
// absent or selects nothing. Returns nil when no successor resolves.
func (e *Engine) nextNode(userText string, current *Node, reg *Registry) *Node {
	if rc := current.Routing; rc != nil && len(rc.Candidates) > 0 {
		if n := e.chooseCandidate(userText, current.ID, rc, reg); n != nil {
			return n
		}
	}

	for _, id := range current.FallbackNext {
		if n, ok := reg.Lookup(id); ok {
			return n
		}
	}

	return nil
}

// chooseCandidate scores each resolvable candidate by keyword hits ×
// weight, discards scores below the threshold, and keeps the highest.
// Ties go to the candidate with more keywords under
// specific_over_generic, otherwise to the earliest in declared order.
// When nothing clears the threshold, the first resolvable candidate
// flagged as fallback is used.
func (e *Engine) chooseCandidate(userText, nodeID string, rc *RoutingConfig, reg *Registry) *Node {
	best := -1
	bestScore := -1.0
	bestKeywords := 0

	for i, c := range rc.Candidates {
		if c.TargetID == "" {
			continue
		}
		if _, ok := reg.Lookup(c.TargetID); !ok {
			continue
		}

		hits := 0
		for _, kw := range c.Keywords {
			if strings.Contains(userText, kw) {
				hits++
			}
		}
		score := float64(hits) * c.Weight

		e.obs.Observe(Event{
			Kind:         EventCandidateScored,
			NodeID:       nodeID,
			TargetID:     c.TargetID,
			Hits:         hits,
			Score:        score,
			KeywordCount: len(c.Keywords),
		})

		if score < rc.Threshold {
			continue
		}
		if score > bestScore ||
			(score == bestScore &&
				rc.TieBreaker == TieSpecificOverGeneric &&
				len(c.Keywords) > bestKeywords) {
			best = i
			bestScore = score
			bestKeywords = len(c.Keywords)
		}
	}

	if best >= 0 {
		n, _ := reg.Lookup(rc.Candidates[best].TargetID)
		return n
	}

	for _, c := range rc.Candidates {
		if !c.Fallback {
			continue
		}
		if n, ok := reg.Lookup(c.TargetID); ok {
			return n
		}
	}

	return nil
}

// assembleDiagnosis concatenates the non-empty terminal payload fields
// in fixed order, each under its label, joined by blank lines.
func assembleDiagnosis(n *Node) string {
	var parts []string
	if n.Result != "" {
		parts = append(parts, labelDiagnosis+n.Result)
	}
	if n.Steps != "" {
		parts = append(parts, labelSteps+n.Steps)
	}
	if n.Cautions != "" {
		parts = append(parts, labelCautions+n.Cautions)
	}
	if len(parts) == 0 {
		return "Diagnosis complete."
	}
	return strings.Join(parts, "\n\n")
}

func fallbackResult(userText string, path []string) Result {
	return Result{
		Text:     fallbackPrefix + userText,
		Resolved: false,
		Path:     path,
	}
}
