// Package maxcut sweeps a memgraph.MemGraph's operator steps in
// topological order and, at each step, emits the set of tensors
// simultaneously live — a Cut. Cuts are memoized on first access per
// Engine and reused for every subsequent query, mirroring the RUC's
// single write-once cut cache (spec.md §5).
package maxcut
