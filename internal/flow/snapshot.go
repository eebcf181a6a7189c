package flow

import "sync/atomic"

// Snapshot is an immutable view of a loaded graph: the source nodes and
// the registry built from them. Snapshots are built once per refresh of
// the content store and never mutated, so any number of concurrent
// Diagnose calls can share one.
type Snapshot struct {
	nodes []Node
	reg   *Registry
}

// NewSnapshot builds a snapshot from ingested node records.
func NewSnapshot(nodes []Node) *Snapshot {
	reg := BuildRegistry(nodes)
	return &Snapshot{nodes: reg.Nodes(), reg: reg}
}

// Registry returns the prebuilt node index.
func (s *Snapshot) Registry() *Registry { return s.reg }

// Nodes returns the snapshot's source records in input order.
func (s *Snapshot) Nodes() []Node { return s.reg.Nodes() }

// Holder publishes snapshots atomically. Rebuilding from fresh source
// data swaps the pointer; in-flight Diagnose calls keep the view they
// started with.
type Holder struct {
	p atomic.Pointer[Snapshot]
}

// Load returns the current snapshot, or nil if none has been published.
func (h *Holder) Load() *Snapshot { return h.p.Load() }

// Store publishes a new snapshot.
func (h *Holder) Store(s *Snapshot) { h.p.Store(s) }
