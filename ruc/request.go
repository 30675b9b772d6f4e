package ruc

import (
	"fmt"

	"github.com/qbitgraph/ruc/quantcfg"
	"github.com/qbitgraph/ruc/target"
)

// Request is the full argument set to one Compute call.
type Request struct {
	// Criterion selects which weight attributes / activation nodes are
	// in scope.
	Criterion target.Criterion

	// Mode selects the bit-width resolution policy.
	Mode quantcfg.BitwidthMode

	// ActivationCfg is the per-node custom activation override. Only
	// meaningful when Mode == quantcfg.QCustom.
	ActivationCfg quantcfg.CustomConfig

	// WeightCfg is the per-node custom weight override. Only meaningful
	// when Mode == quantcfg.QCustom.
	WeightCfg quantcfg.CustomConfig

	// Targets lists the metrics this call must populate. Must be
	// non-empty.
	Targets []RUTarget

	// AllowUnusedCfg, when true, permits ActivationCfg/WeightCfg to be
	// supplied even when the corresponding targets were not requested
	// (the config is then silently ignored rather than erroring).
	AllowUnusedCfg bool
}

func validateRequest(req Request) error {
	if len(req.Targets) == 0 {
		return fmt.Errorf("%w: targets must be non-empty", ErrInvalidRequest)
	}

	activationProvided := len(req.ActivationCfg) > 0
	weightProvided := len(req.WeightCfg) > 0

	if (activationProvided || weightProvided) && req.Mode != quantcfg.QCustom {
		return fmt.Errorf("%w: custom config requires mode QCustom", ErrInvalidRequest)
	}

	if weightProvided && !req.AllowUnusedCfg &&
		!(containsTarget(req.Targets, Weights) || containsTarget(req.Targets, Total) || containsTarget(req.Targets, BOPS)) {
		return fmt.Errorf("%w: weight config unused by requested targets", ErrInvalidRequest)
	}

	if activationProvided && !req.AllowUnusedCfg &&
		!(containsTarget(req.Targets, Activation) || containsTarget(req.Targets, Total) || containsTarget(req.Targets, BOPS)) {
		return fmt.Errorf("%w: activation config unused by requested targets", ErrInvalidRequest)
	}

	if containsTarget(req.Targets, Total) &&
		!(containsTarget(req.Targets, Weights) && containsTarget(req.Targets, Activation)) {
		return fmt.Errorf("%w: Total requires Weights and Activation also in targets", ErrInvalidRequest)
	}

	if containsTarget(req.Targets, BOPS) && req.Criterion != target.AnyQuantized {
		return fmt.Errorf("%w: BOPS requires criterion AnyQuantized", ErrNotSupported)
	}

	return nil
}
