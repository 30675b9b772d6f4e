package quantcfg

import (
	"fmt"

	"github.com/qbitgraph/ruc/graph"
)

// EffectiveActivationNBits resolves node's output-tensor bit-width under
// mode, honoring a per-node custom override from custom when present.
//
// Resolution order: (1) custom override, requiring mode == QCustom; (2)
// Float mode or activation quantization disabled → graph.FloatBits; (3)
// Q8Bit → 8; (4) QMaxBit/QMinBit → max/min over enabled candidates; (5)
// QCustom/QDefaultSP with no override → the node's single unique enabled
// candidate, or ErrAmbiguousDefault if there isn't exactly one.
func EffectiveActivationNBits(node *graph.Node, mode BitwidthMode, custom CustomConfig) (int, error) {
	if override, ok := lookupActivationOverride(node.ID, custom); ok {
		if mode != QCustom {
			return 0, fmt.Errorf("%w: node %q", ErrUnexpectedCustomCfg, node.ID)
		}
		if !override.Enabled {
			return graph.FloatBits, nil
		}
		return override.NBits, nil
	}

	if mode == Float || !node.IsActivationQuantizationEnabled() {
		return graph.FloatBits, nil
	}

	switch mode {
	case Q8Bit:
		return 8, nil
	case QMaxBit, QMinBit:
		cands := node.UniqueActivationCandidates()
		if len(cands) == 0 {
			return 0, fmt.Errorf("%w: node %q has no enabled activation candidates", ErrAmbiguousDefault, node.ID)
		}
		if mode == QMaxBit {
			return cands[len(cands)-1], nil
		}
		return cands[0], nil
	case QCustom, QDefaultSP:
		cands := node.UniqueActivationCandidates()
		if len(cands) != 1 {
			return 0, fmt.Errorf("%w: node %q activation has %d unique candidates, need exactly 1", ErrAmbiguousDefault, node.ID, len(cands))
		}
		return cands[0], nil
	default:
		return 0, fmt.Errorf("quantcfg: unrecognized mode %d", mode)
	}
}

// EffectiveWeightNBits resolves the named weight attribute's bit-width on
// node, under the same resolution order as EffectiveActivationNBits but
// restricted to that attribute's own candidates.
func EffectiveWeightNBits(node *graph.Node, attr graph.WeightAttrID, mode BitwidthMode, custom CustomConfig) (int, error) {
	a, ok := node.WeightAttr(attr)
	if !ok {
		return 0, fmt.Errorf("%w: node %q attr %q", ErrUnknownAttribute, node.ID, attr)
	}

	if override, ok := lookupWeightOverride(node.ID, attr, custom); ok {
		if mode != QCustom {
			return 0, fmt.Errorf("%w: node %q attr %q", ErrUnexpectedCustomCfg, node.ID, attr)
		}
		if !override.Enabled {
			return graph.FloatBits, nil
		}
		return override.NBits, nil
	}

	if mode == Float || !a.QuantizationEnabled {
		return graph.FloatBits, nil
	}

	switch mode {
	case Q8Bit:
		return 8, nil
	case QMaxBit, QMinBit:
		cands := node.UniqueWeightsCandidates(attr)
		if len(cands) == 0 {
			return 0, fmt.Errorf("%w: node %q attr %q has no enabled candidates", ErrAmbiguousDefault, node.ID, attr)
		}
		if mode == QMaxBit {
			return cands[len(cands)-1], nil
		}
		return cands[0], nil
	case QCustom, QDefaultSP:
		cands := node.UniqueWeightsCandidates(attr)
		if len(cands) != 1 {
			return 0, fmt.Errorf("%w: node %q attr %q has %d unique candidates, need exactly 1", ErrAmbiguousDefault, node.ID, attr, len(cands))
		}
		return cands[0], nil
	default:
		return 0, fmt.Errorf("quantcfg: unrecognized mode %d", mode)
	}
}

func lookupActivationOverride(id graph.NodeID, custom CustomConfig) (ActivationOverride, bool) {
	if custom == nil {
		return ActivationOverride{}, false
	}
	cfg, ok := custom[id]
	if !ok || cfg.Activation == nil {
		return ActivationOverride{}, false
	}
	return *cfg.Activation, true
}

func lookupWeightOverride(id graph.NodeID, attr graph.WeightAttrID, custom CustomConfig) (WeightOverride, bool) {
	if custom == nil {
		return WeightOverride{}, false
	}
	cfg, ok := custom[id]
	if !ok || cfg.Weights == nil {
		return WeightOverride{}, false
	}
	w, ok := cfg.Weights[attr]
	return w, ok
}

// ValidateAgainstGraph checks that every node/attribute referenced by
// custom actually exists in g, surfacing ErrUnknownAttribute up front
// instead of only when that particular attribute happens to be resolved.
func ValidateAgainstGraph(g *graph.Graph, custom CustomConfig) error {
	for id, cfg := range custom {
		n, ok := g.Node(id)
		if !ok {
			return fmt.Errorf("%w: node %q", ErrUnknownAttribute, id)
		}
		for attr := range cfg.Weights {
			if _, ok := n.WeightAttr(attr); !ok {
				return fmt.Errorf("%w: node %q attr %q", ErrUnknownAttribute, id, attr)
			}
		}
	}
	return nil
}
