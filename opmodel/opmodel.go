package opmodel

import "github.com/qbitgraph/ruc/graph"

// Implementation is the framework-implementation collaborator boundary
// (spec.md §6): it knows how many multiply-accumulates a node performs
// and which weight attribute(s) an op kind treats as its kernel.
type Implementation interface {
	// MACCount returns node's multiply-accumulate count. Zero is valid
	// (e.g. for a reshape or activation op) and contributes zero BOPS.
	MACCount(node *graph.Node) uint64

	// KernelAttrNames returns the weight-attribute names op treats as its
	// kernel. BOPS computation rejects any op reporting more than one.
	KernelAttrNames(op graph.OpKind) []string
}

// OpSpec is one op kind's entry in a Registry.
type OpSpec struct {
	// MACCount computes the MAC count for a node of this op kind.
	MACCount func(node *graph.Node) uint64

	// KernelAttrs lists this op kind's kernel attribute name(s); length
	// must be ≤ 1 for BOPS eligibility.
	KernelAttrs []string
}

// Registry is a table-driven Implementation: one OpSpec per graph.OpKind,
// filled in by RegisterOp. An op kind with no registered entry reports
// zero MACs and no kernel attributes.
type Registry struct {
	specs map[graph.OpKind]OpSpec
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[graph.OpKind]OpSpec)}
}

// RegisterOp adds or replaces op's spec.
func (r *Registry) RegisterOp(op graph.OpKind, spec OpSpec) {
	r.specs[op] = spec
}

// MACCount implements Implementation.
func (r *Registry) MACCount(node *graph.Node) uint64 {
	spec, ok := r.specs[node.OpKind]
	if !ok || spec.MACCount == nil {
		return 0
	}
	return spec.MACCount(node)
}

// KernelAttrNames implements Implementation.
func (r *Registry) KernelAttrNames(op graph.OpKind) []string {
	spec, ok := r.specs[op]
	if !ok {
		return nil
	}
	return spec.KernelAttrs
}
