package quantcfg

import "github.com/qbitgraph/ruc/graph"

// ActivationOverride is one node's custom activation resolution.
type ActivationOverride struct {
	Enabled bool
	NBits   int
}

// WeightOverride is one node's custom resolution for a single weight
// attribute.
type WeightOverride struct {
	Enabled bool
	NBits   int
}

// NodeCustomConfig is the custom override for one node, used only when
// the call's BitwidthMode is QCustom.
type NodeCustomConfig struct {
	Activation *ActivationOverride
	Weights    map[graph.WeightAttrID]WeightOverride
}

// CustomConfig maps node ids to their custom overrides for one compute()
// call. A nil or absent entry means "no override for this node": the
// resolver falls through to the mode-driven rules.
type CustomConfig map[graph.NodeID]NodeCustomConfig
