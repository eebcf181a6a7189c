package flow

// Node is one step in the diagnostic graph: either a question/routing
// point or a terminal carrying a diagnosis payload. Nodes are authored
// in the content store and arrive here as plain data; the engine does
// not care where they came from.
type Node struct {
	// ID is the externally assigned node identifier. Unique within a
	// loaded graph is the desired invariant, but the source data does
	// not guarantee it; BuildRegistry applies a last-wins policy and
	// records collisions.
	ID string

	// Category and Symptoms are descriptive only. Collaborators use
	// them for browsing and context building; the engine ignores them.
	Category string
	Symptoms []string

	// Start marks an entry point into the graph. Terminal marks a node
	// that ends traversal with a diagnosis.
	Start    bool
	Terminal bool

	// FallbackNext lists successor node IDs in priority order, used
	// when no routing decision is made. IDs may reference nodes that
	// don't exist; unresolvable entries are skipped.
	FallbackNext []string

	// Routing is the optional weighted keyword rule set for choosing a
	// successor. Nil means "no configuration".
	Routing *RoutingConfig

	// Question is shown when the node asks the user something.
	Question string

	// Terminal payload. Empty fields are omitted from the assembled
	// diagnosis text.
	Result   string
	Steps    string
	Cautions string
}
