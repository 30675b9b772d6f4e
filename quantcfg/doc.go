// Package quantcfg resolves the effective bit-width of a node's activation
// or weight attribute given a global BitwidthMode plus an optional
// per-node custom override. It has no dependency on graph traversal or
// aggregation — callers (package target, package ruc) feed it one Node at
// a time.
package quantcfg
