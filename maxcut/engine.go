package maxcut

import (
	"fmt"
	"sort"
	"sync"

	"github.com/qbitgraph/ruc/memgraph"
)

// Cut is the set of tensors live at one operator step of execution
// order.
type Cut struct {
	// Step is the operator-step index this cut was taken at.
	Step int

	// Elements lists the live tensors, sorted ascending by tensor id for
	// deterministic iteration (spec.md §9's open question on cut
	// ordering: ascending producer-step index, then lexicographic
	// tensor-id).
	Elements []memgraph.TensorID
}

// Bytes sums f(tensor) over every element of the cut; callers typically
// pass a per-tensor byte-size function derived from quantcfg resolution.
// Exposed as a small diagnostic/testing accessor beyond what spec.md
// requires directly.
func (c Cut) Bytes(f func(memgraph.TensorID) uint64) uint64 {
	var total uint64
	for _, t := range c.Elements {
		total += f(t)
	}
	return total
}

// Engine computes and memoizes the cuts of one MemGraph.
type Engine struct {
	mg *memgraph.MemGraph

	once sync.Once
	cuts []Cut
	err  error
}

// New returns an Engine over mg. Cuts are not computed until the first
// call to Cuts.
func New(mg *memgraph.MemGraph) *Engine {
	return &Engine{mg: mg}
}

// Cuts returns every non-empty cut of the underlying memory graph, in
// ascending step order. The first call computes and caches the result;
// subsequent calls return the cached slice without recomputation.
//
// Returns ErrCutComputationFailed if the graph is non-empty but the
// sweep produced no cuts at all (an internal-invariant failure).
//
// Complexity: O(V^2) in the worst case (a live-set scan per step); V is
// the number of operator steps, which in the RUC's offline-oracle usage
// is small enough that a sparser representation is not worth the
// complexity (spec.md §5: correctness and determinism dominate latency).
func (e *Engine) Cuts() ([]Cut, error) {
	e.once.Do(func() {
		e.cuts, e.err = e.compute()
	})
	return e.cuts, e.err
}

func (e *Engine) compute() ([]Cut, error) {
	mg := e.mg
	numSteps := len(mg.Steps)

	var cuts []Cut
	for k := 0; k < numSteps; k++ {
		var live []memgraph.TensorID
		for _, nodeID := range mg.Steps {
			tensor := memgraph.TensorID(nodeID)
			producer, ok := mg.Producer[tensor]
			if !ok {
				continue
			}
			if producer > k {
				continue
			}
			if mg.MaxConsumerStep(tensor) < k {
				continue
			}
			live = append(live, tensor)
		}
		if len(live) == 0 {
			continue
		}
		sort.Slice(live, func(i, j int) bool { return live[i] < live[j] })
		cuts = append(cuts, Cut{Step: k, Elements: live})
	}

	if len(cuts) == 0 && numSteps > 0 {
		return nil, fmt.Errorf("%w: %d steps", ErrCutComputationFailed, numSteps)
	}
	return cuts, nil
}
