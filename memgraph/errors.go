package memgraph

import "errors"

// ErrNotAcyclic indicates the source graph failed topological ordering;
// the memory graph invariant ("acyclic, one producer per tensor") cannot
// hold over a cyclic input.
var ErrNotAcyclic = errors.New("memgraph: source graph is not acyclic")
