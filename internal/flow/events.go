package flow

// Outcome labels how a traversal ended. Every outcome except
// OutcomeDiagnosed folds into the same Fallback result shape; the
// distinction exists only for observability.
type Outcome string

const (
	OutcomeDiagnosed Outcome = "diagnosed"
	OutcomeNoStart   Outcome = "no-start"
	OutcomeCycle     Outcome = "cycle"
	OutcomeDeadEnd   Outcome = "dead-end"
	OutcomeHopLimit  Outcome = "hop-limit"
)

// EventKind identifies a trace event emitted during traversal.
type EventKind string

const (
	EventStartSelected   EventKind = "start-selected"
	EventCandidateScored EventKind = "candidate-scored"
	EventTransition      EventKind = "transition"
	EventFinished        EventKind = "finished"
)

// Event is a single trace event. Which fields are set depends on Kind:
// start-selected sets NodeID; candidate-scored sets NodeID, TargetID,
// Hits, Score and KeywordCount; transition sets NodeID and TargetID;
// finished sets Outcome and Path.
type Event struct {
	Kind         EventKind
	NodeID       string
	TargetID     string
	Hits         int
	Score        float64
	KeywordCount int
	Outcome      Outcome
	Path         []string
}

// Observer receives trace events from the engine. Observers must not
// block; they exist purely for diagnostics and never influence routing.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }

// nopObserver discards all events.
type nopObserver struct{}

func (nopObserver) Observe(Event) {}
