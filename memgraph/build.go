package memgraph

import (
	"fmt"
	"sort"

	"github.com/qbitgraph/ruc/graph"
)

// TensorID identifies a tensor vertex in the memory graph. Every tensor
// is one node's output, so TensorID and graph.NodeID share a domain.
type TensorID = graph.NodeID

// MemGraph is the derived liveness structure over a Graph: one operator
// step per node, in topological order, and one tensor per node output.
type MemGraph struct {
	// Steps is the operator-step order: Steps[i] is the node executed at
	// step i.
	Steps []graph.NodeID

	// StepIndex maps a node id to its position in Steps.
	StepIndex map[graph.NodeID]int

	// Producer maps a tensor to the step that produced it.
	Producer map[TensorID]int

	// Consumers maps a tensor to the ascending-sorted steps that consume
	// it. A tensor with no real consumer gets a single synthetic entry
	// equal to the last step index, so graph-output tensors stay live
	// through the end of execution instead of dying immediately.
	Consumers map[TensorID][]int
}

// MaxConsumerStep returns the latest step at which tensor is live, or -1
// if tensor is unknown.
func (mg *MemGraph) MaxConsumerStep(tensor TensorID) int {
	steps := mg.Consumers[tensor]
	if len(steps) == 0 {
		return -1
	}
	return steps[len(steps)-1]
}

// Build derives a MemGraph from g. Returns ErrNotAcyclic if g is not a
// DAG.
//
// Complexity: O(V + E).
func Build(g *graph.Graph) (*MemGraph, error) {
	order, err := g.TopoOrder()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAcyclic, err)
	}

	stepIndex := make(map[graph.NodeID]int, len(order))
	for i, id := range order {
		stepIndex[id] = i
	}

	mg := &MemGraph{
		Steps:     order,
		StepIndex: stepIndex,
		Producer:  make(map[TensorID]int, len(order)),
		Consumers: make(map[TensorID][]int, len(order)),
	}

	for i, id := range order {
		mg.Producer[TensorID(id)] = i
	}

	for _, id := range order {
		for _, e := range g.OutgoingEdges(id) {
			toStep := stepIndex[e.To]
			mg.Consumers[TensorID(id)] = append(mg.Consumers[TensorID(id)], toStep)
		}
	}

	last := len(order) - 1
	for _, id := range order {
		tid := TensorID(id)
		if len(mg.Consumers[tid]) == 0 && last >= 0 {
			mg.Consumers[tid] = []int{last}
			continue
		}
		sort.Ints(mg.Consumers[tid])
	}

	return mg, nil
}
