package graph

import "errors"

// Sentinel errors for graph construction and traversal.
//
// Order in which they are checked when several conditions are violated at
// once: AddNode reports ErrEmptyNodeID -> ErrInvalidReuseGroup ->
// ErrEmptyAttrID / ErrInvalidCandidateSet -> ErrDuplicateNodeID; AddEdge
// reports ErrUnknownNode -> ErrDuplicateSinkPort; ErrCycle is reported by
// TopoOrder.
var (
	// ErrEmptyNodeID indicates a Node was added with an empty ID.
	ErrEmptyNodeID = errors.New("graph: node id is empty")

	// ErrEmptyAttrID indicates a WeightAttr was added with an empty ID.
	ErrEmptyAttrID = errors.New("graph: weight attribute id is empty")

	// ErrDuplicateNodeID indicates AddNode was called twice for the same id.
	ErrDuplicateNodeID = errors.New("graph: duplicate node id")

	// ErrUnknownNode indicates an edge or lookup referenced a node id that
	// was never added to the graph.
	ErrUnknownNode = errors.New("graph: unknown node")

	// ErrDuplicateSinkPort indicates two edges were added with the same
	// (sink node, sink port) pair, violating the per-port uniqueness
	// invariant in spec.md's Edge entity.
	ErrDuplicateSinkPort = errors.New("graph: duplicate (sink, port) pair")

	// ErrInvalidReuseGroup indicates a Node has Reuse=true but an empty
	// ReuseGroup, violating "reuse ⇒ reuse_group ≠ ∅".
	ErrInvalidReuseGroup = errors.New("graph: reuse flagged without a reuse group")

	// ErrInvalidCandidateSet indicates a configurable weight attribute was
	// declared with fewer than two candidates, or an enabled attribute with
	// zero candidates.
	ErrInvalidCandidateSet = errors.New("graph: invalid candidate set")

	// ErrCycle indicates the graph is not a DAG; topological ordering failed.
	ErrCycle = errors.New("graph: graph is not acyclic")

	// ErrInvariantDesync indicates an internal bookkeeping mismatch between
	// the node table and the computed topological order. This should never
	// happen via the public API; it guards against programmer error.
	ErrInvariantDesync = errors.New("graph: internal invariant desync")
)
