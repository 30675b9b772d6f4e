package graph

import "fmt"

// Validate checks the structural invariants spec.md's §3 data model
// demands beyond what AddNode/AddEdge already enforce at insertion time:
// that the graph is acyclic and that every node reachable from TopoOrder
// actually exists in the node table. Call it once after assembling a
// Graph and before constructing an ruc.Calculator over it.
//
// Complexity: O(V + E), dominated by TopoOrder.
func Validate(g *Graph) error {
	order, err := g.TopoOrder()
	if err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	if len(order) != len(g.NodeIDs()) {
		return fmt.Errorf("Validate: %w: topo order covers %d of %d nodes", ErrInvariantDesync, len(order), len(g.NodeIDs()))
	}
	for _, id := range order {
		n, ok := g.Node(id)
		if !ok {
			return fmt.Errorf("Validate: %w: %q in topo order but not in node table", ErrInvariantDesync, id)
		}
		if n.Reuse && n.ReuseGroup == "" {
			return fmt.Errorf("Validate: %w", ErrInvalidReuseGroup)
		}
	}
	return nil
}
