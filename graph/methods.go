package graph

import (
	"fmt"
	"sort"
)

// AddNode inserts a new node into the graph. Returns ErrEmptyNodeID if id is
// empty, ErrDuplicateNodeID if id is already present, or ErrInvalidReuseGroup
// / ErrInvalidCandidateSet if the node violates spec.md's Node/WeightAttr
// invariants.
//
// Complexity: O(len(attrs)) for candidate-set validation.
func (g *Graph) AddNode(n *Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if n.Reuse && n.ReuseGroup == "" {
		return ErrInvalidReuseGroup
	}
	for _, attr := range n.weightAttrs {
		if attr.ID == "" {
			return ErrEmptyAttrID
		}
		if attr.Configurable && len(attr.Candidates) < 2 {
			return fmt.Errorf("%w: attr %q configurable with < 2 candidates", ErrInvalidCandidateSet, attr.ID)
		}
		if attr.QuantizationEnabled && len(attr.Candidates) == 0 {
			return fmt.Errorf("%w: attr %q enabled with no candidates", ErrInvalidCandidateSet, attr.ID)
		}
	}

	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	g.nodes[n.ID] = n
	g.nodeOrder = append(g.nodeOrder, n.ID)

	g.muEdges.Lock()
	g.incoming[n.ID] = make(map[int]*Edge)
	g.muEdges.Unlock()

	return nil
}

// HasNode reports whether a node with the given id exists.
func (g *Graph) HasNode(id NodeID) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// Node looks up a node by id.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	n, ok := g.nodes[id]
	return n, ok
}

// NodeIDs returns every node id in insertion order.
func (g *Graph) NodeIDs() []NodeID {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	out := make([]NodeID, len(g.nodeOrder))
	copy(out, g.nodeOrder)
	return out
}

// AddEdge connects fromID's output port fromPort to toID's input port
// toPort. Returns ErrUnknownNode if either endpoint is absent, or
// ErrDuplicateSinkPort if (toID, toPort) is already occupied.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(fromID NodeID, fromPort int, toID NodeID, toPort int) error {
	if !g.HasNode(fromID) {
		return fmt.Errorf("%w: %q", ErrUnknownNode, fromID)
	}
	if !g.HasNode(toID) {
		return fmt.Errorf("%w: %q", ErrUnknownNode, toID)
	}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	if _, taken := g.incoming[toID][toPort]; taken {
		return fmt.Errorf("%w: node %q port %d", ErrDuplicateSinkPort, toID, toPort)
	}

	e := &Edge{From: fromID, FromPort: fromPort, To: toID, ToPort: toPort}
	g.incoming[toID][toPort] = e
	g.outgoing[fromID] = append(g.outgoing[fromID], e)

	return nil
}

// IncomingEdges returns id's incoming edges sorted ascending by sink-port
// index, per spec.md §6's "incoming-edge accessor sortable by sink-port
// index".
func (g *Graph) IncomingEdges(id NodeID) []*Edge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	byPort := g.incoming[id]
	ports := make([]int, 0, len(byPort))
	for p := range byPort {
		ports = append(ports, p)
	}
	sort.Ints(ports)

	out := make([]*Edge, 0, len(ports))
	for _, p := range ports {
		out = append(out, byPort[p])
	}
	return out
}

// OutgoingEdges returns the edges leaving id, in insertion order.
func (g *Graph) OutgoingEdges(id NodeID) []*Edge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	src := g.outgoing[id]
	out := make([]*Edge, len(src))
	copy(out, src)
	return out
}

// Edges returns every edge in the graph, grouped by source node in
// insertion order of AddNode, then by AddEdge call order within each node.
func (g *Graph) Edges() []*Edge {
	g.muNodes.RLock()
	order := make([]NodeID, len(g.nodeOrder))
	copy(order, g.nodeOrder)
	g.muNodes.RUnlock()

	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	var out []*Edge
	for _, id := range order {
		out = append(out, g.outgoing[id]...)
	}
	return out
}

// TopoOrder returns a topological ordering of the graph's nodes, computed
// once and memoized for the lifetime of the Graph. Nodes are scheduled in
// whole rounds (every node made ready by the previously scheduled round,
// i.e. a longest-path-from-source level), rather than one at a time off a
// single globally-sorted ready queue. Within a round, nodes are ordered by
// descending OutputElementCount, ties broken by ascending NodeID, so the
// order is still deterministic: P7 (idempotence) and P8 (topological
// detail order) both rely on it being stable across calls.
//
// This level-by-level scheduling is deliberate, not incidental: spec.md
// §4.4 requires that, among the topological orders consistent with the
// graph's partial order, the one chosen maximize peak live bytes (a safe
// upper bound for resource budgeting). Draining one whole branch before
// starting a sibling branch — what a single ready-queue sorted purely by
// NodeID tends to do — undercounts overlap at joins (e.g. a residual-add
// or concat fed by two parallel branches). Scheduling every node of a
// round together keeps sibling branches' tensors alive side by side for
// as long as the graph's dependencies allow, which is the direction that
// maximizes cut overlap; within a round, scheduling the larger tensor
// first gives it a lower producer step so it stays live across more of
// the round and whatever consumes it later, a request-independent
// structural proxy for bytes (the resolved bit-width behind the eventual
// byte count is only known per-request, at Compute time, well after this
// order is memoized). This is a heuristic approximation of the
// requirement, not an exhaustive search over all valid orders (which is
// factorial in the worst case): it maximizes overlap between nodes that
// become ready at the same time, but does not search across rounds.
//
// Returns ErrCycle if the graph is not a DAG.
func (g *Graph) TopoOrder() ([]NodeID, error) {
	g.topoOnce.Do(func() {
		g.topoOrder, g.topoErr = g.computeTopoOrder()
	})
	if g.topoErr != nil {
		return nil, g.topoErr
	}
	out := make([]NodeID, len(g.topoOrder))
	copy(out, g.topoOrder)
	return out, nil
}

func (g *Graph) computeTopoOrder() ([]NodeID, error) {
	ids := g.NodeIDs()

	indeg := make(map[NodeID]int, len(ids))
	for _, id := range ids {
		indeg[id] = len(g.incoming[id])
	}

	round := make([]NodeID, 0, len(ids))
	for _, id := range ids {
		if indeg[id] == 0 {
			round = append(round, id)
		}
	}

	out := make([]NodeID, 0, len(ids))
	for len(round) > 0 {
		sort.Slice(round, func(i, j int) bool {
			wi, wj := g.nodes[round[i]].OutputElementCount, g.nodes[round[j]].OutputElementCount
			if wi != wj {
				return wi > wj
			}
			return round[i] < round[j]
		})
		out = append(out, round...)

		var next []NodeID
		for _, id := range round {
			for _, e := range g.outgoing[id] {
				indeg[e.To]--
				if indeg[e.To] == 0 {
					next = append(next, e.To)
				}
			}
		}
		round = next
	}

	if len(out) != len(ids) {
		return nil, ErrCycle
	}
	return out, nil
}
