package ruc

import "errors"

var (
	// ErrInvalidRequest indicates caller-visible misuse: a custom config
	// supplied with a non-QCustom mode, an unused config without
	// AllowUnusedCfg, or an empty explicit target list.
	ErrInvalidRequest = errors.New("ruc: invalid request")

	// ErrUnknownAttribute indicates a custom config names a weight
	// attribute absent on the node.
	ErrUnknownAttribute = errors.New("ruc: unknown attribute in custom config")

	// ErrAmbiguousDefault indicates a default/custom mode could not
	// resolve a node's bit-width because it has more than one unique
	// candidate and no custom entry.
	ErrAmbiguousDefault = errors.New("ruc: ambiguous default bit-width")

	// ErrNotSupported indicates a feature combination explicitly
	// rejected by the spec: BOPS with a criterion other than
	// AnyQuantized, or an op reporting more than one kernel attribute.
	ErrNotSupported = errors.New("ruc: not supported")

	// ErrCutComputationFailed indicates the memory-graph algorithm
	// yielded no cuts for a non-empty graph. Internal/fatal.
	ErrCutComputationFailed = errors.New("ruc: cut computation failed")

	// ErrInvariantViolation indicates an internal inconsistency (topo-sort
	// mismatch, a BOPS-eligible node reached by other than exactly one
	// incoming edge, etc). Internal/fatal.
	ErrInvariantViolation = errors.New("ruc: invariant violation")
)
