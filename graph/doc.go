// Package graph defines the immutable intermediate representation (IR) the
// Resource Utilization Calculator evaluates: Node, Edge, WeightAttr and the
// owning Graph, plus thread-safe primitives for building and querying them.
//
// A Graph is assembled once (AddNode / AddEdge, optionally through Builder),
// then borrowed read-only for the lifetime of an RUC session: nothing in
// this package mutates a Graph after construction finishes except the
// lazily-computed, memoized topological order.
//
// Concurrency model: vertex storage and edge/adjacency storage are guarded
// by separate sync.RWMutex locks (muNodes, muEdges), mirroring the teacher
// library's split-lock discipline so readers never block on each other.
//
// Identifiers:
//
//	NodeID         - stable, caller-assigned node identifier.
//	WeightAttrID   - a weight attribute name; use PositionalAttrID for the
//	                 "integer positional index" form spec.md allows.
//
// See doc comments on Node, WeightAttr, Edge and Graph for the invariants
// each type carries.
package graph
