// Package ruc implements the Resource Utilization Calculator: given a
// quantized computation graph (package graph) and a proposed per-node
// bit-width assignment, it computes weight memory, peak activation
// memory, total memory, and bit-operations (BOPS), plus per-node and
// per-cut detail breakdowns.
//
// A Calculator borrows its Graph read-only for its lifetime and
// memoizes the graph's cut enumeration on first access; it is otherwise
// stateless across Compute calls (see Calculator's doc comment for the
// full concurrency contract).
package ruc
