// Package memgraph derives, from a computation graph, the bipartite
// liveness structure the max-cut engine sweeps over: one operator step
// per node (in topological order) and one tensor per node's output,
// annotated with the step that produced it and the steps that consume
// it.
//
// The spec's two synthetic sentinels (dummy_node, dummy_tensor) anchor
// graph entry and exit so every tensor has at least one producer-edge
// and one consumer-edge; this package folds that anchoring into the
// Producer/Consumers bookkeeping directly rather than materializing
// extra vertices, since every real tensor already has exactly one
// producer (the node that emits it) and the sentinel only ever supplies
// a synthetic *consumer* for a graph-output tensor. Neither sentinel
// resolves to a graph.NodeID, so neither can appear as a Cut element.
package memgraph
