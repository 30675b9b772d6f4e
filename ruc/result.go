package ruc

import "github.com/qbitgraph/ruc/graph"

// NodeDetail is one node's contribution to a per-node metric (weight
// bytes or BOPS), kept as an ordered slice rather than a map so callers
// can rely on topological order (spec.md P8) when iterating.
type NodeDetail struct {
	Node  graph.NodeID
	Value uint64
}

// CutDetail is one cut's activation-byte total, kept in ascending-step
// order.
type CutDetail struct {
	Step  int
	Value uint64
}

// ResourceUtilization is the result of one Compute call. Only the fields
// corresponding to the request's Targets are non-nil (spec.md P6,
// "target isolation").
type ResourceUtilization struct {
	WeightsBytes    *uint64
	ActivationBytes *uint64
	TotalBytes      *uint64
	BOPS            *uint64

	WeightDetails     []NodeDetail
	ActivationDetails []CutDetail
	BOPSDetails       []NodeDetail
}

// RestrictedTargets returns the subset of RUTarget values actually
// populated on ru.
func (ru *ResourceUtilization) RestrictedTargets() []RUTarget {
	var out []RUTarget
	if ru.WeightsBytes != nil {
		out = append(out, Weights)
	}
	if ru.ActivationBytes != nil {
		out = append(out, Activation)
	}
	if ru.TotalBytes != nil {
		out = append(out, Total)
	}
	if ru.BOPS != nil {
		out = append(out, BOPS)
	}
	return out
}
