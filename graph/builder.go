package graph

import "fmt"

// NodeOption customizes a Node before it is attached to a Graph, mirroring
// the teacher library's BuilderOption: a small closure applied in order
// over an otherwise zero-value struct.
type NodeOption func(n *Node)

// WithOpKind sets the node's operator tag.
func WithOpKind(op OpKind) NodeOption {
	return func(n *Node) { n.OpKind = op }
}

// WithOutputElements sets the node's output tensor element count.
func WithOutputElements(count uint64) NodeOption {
	return func(n *Node) { n.OutputElementCount = count }
}

// WithActivation declares this node's activation candidates and whether
// activation quantization is ever enabled for it. Configurable is derived
// as len(candidates) > 1.
func WithActivation(enabled bool, candidates ...BitwidthCandidate) NodeOption {
	return func(n *Node) {
		n.ActivationQuantizationEnabled = enabled
		n.ActivationCandidates = append([]BitwidthCandidate(nil), candidates...)
		n.ActivationConfigurable = len(candidates) > 1
	}
}

// WithWeightAttr attaches a weight attribute to the node. Configurable is
// derived as len(candidates) > 1.
func WithWeightAttr(id WeightAttrID, elementCount uint64, enabled bool, candidates ...BitwidthCandidate) NodeOption {
	return func(n *Node) {
		if n.weightAttrs == nil {
			n.weightAttrs = make(map[WeightAttrID]*WeightAttr)
		}
		if _, exists := n.weightAttrs[id]; !exists {
			n.weightOrder = append(n.weightOrder, id)
		}
		n.weightAttrs[id] = &WeightAttr{
			ID:                  id,
			ElementCount:        elementCount,
			QuantizationEnabled: enabled,
			Configurable:        len(candidates) > 1,
			Candidates:          append([]BitwidthCandidate(nil), candidates...),
		}
	}
}

// WithKernelAttr marks id as this node's kernel (convolution/dense) weight
// attribute. The attribute must already have been attached via
// WithWeightAttr in the same NewNode call (options apply in order).
func WithKernelAttr(id WeightAttrID) NodeOption {
	return func(n *Node) { n.KernelAttr = id }
}

// WithReuse marks this node as sharing parameters with the named group.
func WithReuse(group string) NodeOption {
	return func(n *Node) {
		n.Reuse = true
		n.ReuseGroup = group
	}
}

// NewNode constructs a Node with the given id, applying opts in order. It
// does not attach the node to any Graph; pass the result to Graph.AddNode.
func NewNode(id NodeID, opts ...NodeOption) *Node {
	n := &Node{ID: id}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// EdgeSpec is one edge to add via Builder, read top-to-bottom like a wiring
// list.
type EdgeSpec struct {
	From     NodeID
	FromPort int
	To       NodeID
	ToPort   int
}

// Builder assembles a Graph from a deterministic sequence of nodes and
// edges, mirroring the teacher library's BuildGraph(gopts, bopts, cons...)
// orchestrator: one call, errors wrapped once at the boundary, nodes added
// before edges so forward references never fail spuriously.
func Builder(nodes []*Node, edges []EdgeSpec) (*Graph, error) {
	g := NewGraph()
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("Builder: %w", err)
		}
	}
	for i, e := range edges {
		if err := g.AddEdge(e.From, e.FromPort, e.To, e.ToPort); err != nil {
			return nil, fmt.Errorf("Builder: edge %d: %w", i, err)
		}
	}
	return g, nil
}
