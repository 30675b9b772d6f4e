package ruc

import (
	"errors"
	"fmt"
	"sync"

	"github.com/qbitgraph/ruc/graph"
	"github.com/qbitgraph/ruc/maxcut"
	"github.com/qbitgraph/ruc/memgraph"
	"github.com/qbitgraph/ruc/opmodel"
	"github.com/qbitgraph/ruc/quantcfg"
	"github.com/qbitgraph/ruc/target"
)

// Calculator is the Resource Utilization Calculator over one Graph. It
// borrows g read-only for its lifetime (spec.md §5): Compute never
// mutates g, and g must not be mutated by any other caller while a
// Calculator is in use.
//
// The memory graph and its cut enumeration are computed at most once,
// on first use, and reused for every subsequent Compute call — the
// "write-once-on-first-read" cut cache spec.md §5 describes. A
// Calculator has no other internal state and every other computation is
// pure given (Graph, Request); it performs no suspension points or
// background work, matching the single-threaded synchronous design
// spec.md §5 mandates. Concurrent Compute calls that race the first
// cache population are safe (guarded by sync.Once) but callers wanting
// to dispatch concurrent queries should pre-warm the cache with one
// Compute call before fanning out, per spec.md §5.
type Calculator struct {
	g    *graph.Graph
	impl opmodel.Implementation

	mgOnce sync.Once
	mg     *memgraph.MemGraph
	mgErr  error

	engineOnce sync.Once
	engine     *maxcut.Engine
}

// New returns a Calculator over g, using impl to resolve per-op MAC
// counts and kernel attribute names for BOPS.
func New(g *graph.Graph, impl opmodel.Implementation) *Calculator {
	return &Calculator{g: g, impl: impl}
}

// Compute evaluates req against the Calculator's graph and returns the
// requested metrics. See Request and the package doc for the full
// contract.
func (c *Calculator) Compute(req Request) (*ResourceUtilization, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	result := &ResourceUtilization{}

	var weightsBytes, activationBytes uint64

	if containsTarget(req.Targets, Weights) || containsTarget(req.Targets, Total) {
		bytes, details, err := c.computeWeights(req)
		if err != nil {
			return nil, err
		}
		weightsBytes = bytes
		if containsTarget(req.Targets, Weights) {
			result.WeightsBytes = &bytes
			result.WeightDetails = details
		}
	}

	if containsTarget(req.Targets, Activation) || containsTarget(req.Targets, Total) {
		bytes, details, err := c.computeActivation(req)
		if err != nil {
			return nil, err
		}
		activationBytes = bytes
		if containsTarget(req.Targets, Activation) {
			result.ActivationBytes = &bytes
			result.ActivationDetails = details
		}
	}

	if containsTarget(req.Targets, Total) {
		total := weightsBytes + activationBytes
		result.TotalBytes = &total
	}

	if containsTarget(req.Targets, BOPS) {
		bops, details, err := c.computeBOPS(req)
		if err != nil {
			return nil, err
		}
		result.BOPS = &bops
		result.BOPSDetails = details
	}

	return result, nil
}

func (c *Calculator) memGraph() (*memgraph.MemGraph, error) {
	c.mgOnce.Do(func() {
		c.mg, c.mgErr = memgraph.Build(c.g)
	})
	return c.mg, c.mgErr
}

func (c *Calculator) cutEngine() (*maxcut.Engine, error) {
	mg, err := c.memGraph()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}
	c.engineOnce.Do(func() {
		c.engine = maxcut.New(mg)
	})
	return c.engine, nil
}

func (c *Calculator) computeWeights(req Request) (uint64, []NodeDetail, error) {
	order, err := c.g.TopoOrder()
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}

	sel := target.SelectWeights(c.g, order, req.Criterion, false)

	var total uint64
	var details []NodeDetail
	for _, s := range sel {
		n, ok := c.g.Node(s.Node)
		if !ok {
			return 0, nil, fmt.Errorf("%w: selected node %q missing", ErrInvariantViolation, s.Node)
		}

		var nodeBits uint64
		for _, attr := range s.Attrs {
			a, ok := n.WeightAttr(attr)
			if !ok {
				return 0, nil, fmt.Errorf("%w: selected attr %q missing on node %q", ErrInvariantViolation, attr, s.Node)
			}
			nbits, err := quantcfg.EffectiveWeightNBits(n, attr, req.Mode, req.WeightCfg)
			if err != nil {
				return 0, nil, classifyQuantErr(err)
			}
			nodeBits += a.ElementCount * uint64(nbits)
		}

		nodeBytes := nodeBits / graph.BitsPerByte
		details = append(details, NodeDetail{Node: s.Node, Value: nodeBytes})
		total += nodeBytes
	}

	return total, details, nil
}

func (c *Calculator) computeActivation(req Request) (uint64, []CutDetail, error) {
	eng, err := c.cutEngine()
	if err != nil {
		return 0, nil, err
	}
	cuts, err := eng.Cuts()
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrCutComputationFailed, err)
	}

	order, err := c.g.TopoOrder()
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}

	targetNodes := target.SelectActivationNodes(c.g, order, req.Criterion, true)
	inScope := make(map[graph.NodeID]struct{}, len(targetNodes))
	for _, id := range targetNodes {
		inScope[id] = struct{}{}
	}

	var peak uint64
	details := make([]CutDetail, 0, len(cuts))
	for _, cut := range cuts {
		var cutBytes uint64
		for _, tensor := range cut.Elements {
			if _, ok := inScope[tensor]; !ok {
				continue
			}
			n, ok := c.g.Node(tensor)
			if !ok {
				continue
			}
			nbits, err := quantcfg.EffectiveActivationNBits(n, req.Mode, req.ActivationCfg)
			if err != nil {
				return 0, nil, classifyQuantErr(err)
			}
			cutBytes += n.OutputElementCount * uint64(nbits) / graph.BitsPerByte
		}
		details = append(details, CutDetail{Step: cut.Step, Value: cutBytes})
		if cutBytes > peak {
			peak = cutBytes
		}
	}

	return peak, details, nil
}

func (c *Calculator) computeBOPS(req Request) (uint64, []NodeDetail, error) {
	order, err := c.g.TopoOrder()
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}

	var total uint64
	var details []NodeDetail
	for _, id := range order {
		n, ok := c.g.Node(id)
		if !ok {
			return 0, nil, fmt.Errorf("%w: node %q missing", ErrInvariantViolation, id)
		}
		if !n.HasKernelWeightToQuantize() {
			continue
		}

		kernelAttrs := c.impl.KernelAttrNames(n.OpKind)
		if len(kernelAttrs) > 1 {
			return 0, nil, fmt.Errorf("%w: op %q reports %d kernel attributes, BOPS requires ≤ 1", ErrNotSupported, n.OpKind, len(kernelAttrs))
		}

		incoming := c.g.IncomingEdges(id)
		if len(incoming) != 1 {
			return 0, nil, fmt.Errorf("%w: node %q reached by %d incoming edges, BOPS requires exactly 1", ErrInvariantViolation, id, len(incoming))
		}

		macs := c.impl.MACCount(n)
		if macs == 0 {
			details = append(details, NodeDetail{Node: id, Value: 0})
			continue
		}

		srcNode, ok := c.g.Node(incoming[0].From)
		if !ok {
			return 0, nil, fmt.Errorf("%w: edge source %q missing", ErrInvariantViolation, incoming[0].From)
		}

		actBits, err := quantcfg.EffectiveActivationNBits(srcNode, req.Mode, req.ActivationCfg)
		if err != nil {
			return 0, nil, classifyQuantErr(err)
		}
		kernelBits, err := quantcfg.EffectiveWeightNBits(n, n.KernelAttr, req.Mode, req.WeightCfg)
		if err != nil {
			return 0, nil, classifyQuantErr(err)
		}

		nodeBOPS := macs * uint64(actBits) * uint64(kernelBits)
		details = append(details, NodeDetail{Node: id, Value: nodeBOPS})
		total += nodeBOPS
	}

	return total, details, nil
}

func classifyQuantErr(err error) error {
	switch {
	case errors.Is(err, quantcfg.ErrUnknownAttribute):
		return fmt.Errorf("%w: %v", ErrUnknownAttribute, err)
	case errors.Is(err, quantcfg.ErrAmbiguousDefault):
		return fmt.Errorf("%w: %v", ErrAmbiguousDefault, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}
}
