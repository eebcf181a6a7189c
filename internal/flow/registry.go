package flow

import "slices"

// Registry indexes a loaded graph by node ID. Edges in the graph are
// string-keyed (TargetID, FallbackNext) and resolved through Lookup at
// traversal time, so the registry is trivially snapshot-able and free
// of reference cycles. A Registry is never mutated after construction
// and is safe for concurrent readers.
type Registry struct {
	all        []Node
	byID       map[string]*Node
	starts     []Node
	collisions []string
}

// BuildRegistry constructs a Registry from a flat node list. When two
// nodes share an ID, the last record in input order wins and the
// collision is recorded for diagnostics. Nodes with an empty ID are
// kept in input order but never indexed.
func BuildRegistry(nodes []Node) *Registry {
	r := &Registry{
		all:  slices.Clone(nodes),
		byID: make(map[string]*Node, len(nodes)),
	}

	for i := range r.all {
		n := &r.all[i]
		if n.ID == "" {
			continue
		}
		if _, dup := r.byID[n.ID]; dup {
			r.collisions = append(r.collisions, n.ID)
		}
		r.byID[n.ID] = n
	}

	for i := range r.all {
		if r.all[i].Start {
			r.starts = append(r.starts, r.all[i])
		}
	}

	return r
}

// Lookup returns the node indexed under id.
func (r *Registry) Lookup(id string) (*Node, bool) {
	n, ok := r.byID[id]
	return n, ok
}

// StartNodes returns all start-flagged nodes in input order.
func (r *Registry) StartNodes() []Node {
	return slices.Clone(r.starts)
}

// Nodes returns every loaded node in input order.
func (r *Registry) Nodes() []Node {
	return slices.Clone(r.all)
}

// Len reports the number of loaded nodes, duplicates included.
func (r *Registry) Len() int {
	return len(r.all)
}

// Collisions returns the IDs that appeared more than once in the input,
// one entry per extra occurrence.
func (r *Registry) Collisions() []string {
	return slices.Clone(r.collisions)
}
