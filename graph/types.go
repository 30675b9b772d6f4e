package graph

import (
	"sort"
	"strconv"
	"sync"
)

// FloatBits is the bit-width of an unquantized (float) tensor.
const FloatBits = 32

// BitsPerByte is the divisor used to turn a bit count into a byte count.
const BitsPerByte = 8

// NodeID stably identifies a Node within a Graph.
type NodeID string

// WeightAttrID names a weight attribute on a Node. spec.md allows the
// attribute name to be a string or an integer positional index; use
// PositionalAttrID to construct the latter form.
type WeightAttrID string

// PositionalAttrID builds the WeightAttrID for the i-th positional weight
// attribute of a node (e.g. a framework with no named kernel/bias fields,
// only an ordered parameter list).
func PositionalAttrID(i int) WeightAttrID {
	return WeightAttrID("#" + strconv.Itoa(i))
}

// OpKind tags a Node with the operator it represents (e.g. "conv2d",
// "relu"). It is a plain string enumeration resolved by the
// framework-implementation collaborator (package opmodel) rather than by
// runtime type inspection — see spec.md §9's "no reflection" design note.
type OpKind string

// BitwidthCandidate is one admissible quantization bit-width, paired with
// whether quantization is enabled for it. A disabled candidate is treated
// as FloatBits everywhere in the resolver (package quantcfg).
type BitwidthCandidate struct {
	NBits   int
	Enabled bool
}

// WeightAttr is one quantizable parameter tensor attached to a Node (a
// convolution kernel, a bias, a positional embedding, ...).
type WeightAttr struct {
	// ID names this attribute within its owning Node.
	ID WeightAttrID

	// ElementCount is the number of scalar elements in this tensor.
	ElementCount uint64

	// QuantizationEnabled reports whether this attribute is ever quantized.
	QuantizationEnabled bool

	// Configurable reports whether more than one candidate bit-width is
	// available for this attribute (the target of mixed-precision search).
	Configurable bool

	// Candidates lists the admissible (n_bits, enabled) pairs for this
	// attribute. Invariant: Configurable ⇒ len(Candidates) > 1.
	Candidates []BitwidthCandidate
}

// Node is one operation in the computation graph.
type Node struct {
	// ID stably identifies this node within its Graph.
	ID NodeID

	// OpKind tags the operator this node represents.
	OpKind OpKind

	// OutputElementCount is the element count of this node's output tensor.
	OutputElementCount uint64

	// ActivationCandidates lists the admissible activation bit-widths for
	// this node's output tensor.
	ActivationCandidates []BitwidthCandidate

	// ActivationQuantizationEnabled reports whether activation quantization
	// is ever applied to this node's output.
	ActivationQuantizationEnabled bool

	// ActivationConfigurable reports whether more than one activation
	// candidate is available (mixed-precision search target).
	ActivationConfigurable bool

	// KernelAttr names the WeightAttr that represents this node's
	// convolution/dense kernel, or "" if this node carries no kernel
	// weight. At most one per node (glossary: "Kernel attribute").
	KernelAttr WeightAttrID

	// Reuse reports whether this node shares weight parameters with other
	// nodes in the same ReuseGroup. Invariant: Reuse ⇒ ReuseGroup != "".
	Reuse bool

	// ReuseGroup identifies the set of nodes sharing weights with this one.
	ReuseGroup string

	weightAttrs map[WeightAttrID]*WeightAttr
	weightOrder []WeightAttrID // insertion order, for deterministic iteration
}

// WeightAttrs returns this node's weight attributes in the order they were
// attached (stable and deterministic, but not graph topological order).
func (n *Node) WeightAttrs() []*WeightAttr {
	out := make([]*WeightAttr, 0, len(n.weightOrder))
	for _, id := range n.weightOrder {
		out = append(out, n.weightAttrs[id])
	}
	return out
}

// WeightAttr looks up one weight attribute by id.
func (n *Node) WeightAttr(id WeightAttrID) (*WeightAttr, bool) {
	a, ok := n.weightAttrs[id]
	return a, ok
}

// HasKernelWeightToQuantize reports whether this node carries a kernel
// weight attribute with quantization enabled. This is distinct from
// whether weight bytes are counted for the node: weight-byte aggregation
// considers every attribute regardless of kernel-ness, while BOPS
// considers only the kernel attribute — spec.md §9 explicitly preserves
// this distinction ("do not unify").
func (n *Node) HasKernelWeightToQuantize() bool {
	if n.KernelAttr == "" {
		return false
	}
	attr, ok := n.weightAttrs[n.KernelAttr]
	return ok && attr.QuantizationEnabled
}

// IsActivationQuantizationEnabled reports the node-level activation flag.
func (n *Node) IsActivationQuantizationEnabled() bool { return n.ActivationQuantizationEnabled }

// HasConfigurableActivation reports whether this node's activation is a
// mixed-precision search target.
func (n *Node) HasConfigurableActivation() bool { return n.ActivationConfigurable }

// IsWeightsQuantizationEnabled reports whether the named attribute is ever
// quantized. A missing attribute reports false.
func (n *Node) IsWeightsQuantizationEnabled(attr WeightAttrID) bool {
	a, ok := n.weightAttrs[attr]
	return ok && a.QuantizationEnabled
}

// IsConfigurableWeight reports whether the named attribute has more than
// one candidate bit-width. A missing attribute reports false.
func (n *Node) IsConfigurableWeight(attr WeightAttrID) bool {
	a, ok := n.weightAttrs[attr]
	return ok && a.Configurable
}

// UniqueActivationCandidates returns the distinct n_bits values among this
// node's enabled activation candidates, in ascending order.
func (n *Node) UniqueActivationCandidates() []int {
	return uniqueEnabledBits(n.ActivationCandidates)
}

// UniqueWeightsCandidates returns the distinct n_bits values among the
// enabled candidates of the named weight attribute, in ascending order.
// A missing attribute returns an empty slice.
func (n *Node) UniqueWeightsCandidates(attr WeightAttrID) []int {
	a, ok := n.weightAttrs[attr]
	if !ok {
		return nil
	}
	return uniqueEnabledBits(a.Candidates)
}

func uniqueEnabledBits(cands []BitwidthCandidate) []int {
	seen := make(map[int]struct{}, len(cands))
	out := make([]int, 0, len(cands))
	for _, c := range cands {
		if !c.Enabled {
			continue
		}
		if _, ok := seen[c.NBits]; ok {
			continue
		}
		seen[c.NBits] = struct{}{}
		out = append(out, c.NBits)
	}
	sort.Ints(out)
	return out
}

// Edge connects one node's output port to another node's input port.
type Edge struct {
	From     NodeID
	FromPort int
	To       NodeID
	ToPort   int
}

// Graph is the immutable-after-build computation graph the RUC evaluates.
//
// Mutation (AddNode/AddEdge) is guarded by muNodes/muEdges, mirroring the
// split-lock discipline of the teacher library's core.Graph so read-only
// traversal never contends with itself. Once built, a Graph is intended to
// be borrowed read-only for the lifetime of an RUC session (spec.md §5).
type Graph struct {
	muNodes sync.RWMutex
	muEdges sync.RWMutex

	nodes     map[NodeID]*Node
	nodeOrder []NodeID                 // insertion order
	incoming  map[NodeID]map[int]*Edge // node -> sink port -> edge
	outgoing  map[NodeID][]*Edge       // node -> edges leaving it

	topoOnce  sync.Once
	topoOrder []NodeID
	topoErr   error
}

// NewGraph returns an empty Graph ready for AddNode/AddEdge.
func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[NodeID]*Node),
		incoming: make(map[NodeID]map[int]*Edge),
		outgoing: make(map[NodeID][]*Edge),
	}
}
