package quantcfg

import "errors"

var (
	// ErrUnexpectedCustomCfg indicates a custom config was supplied for a
	// node while mode is not QCustom.
	ErrUnexpectedCustomCfg = errors.New("quantcfg: custom config supplied with non-custom mode")

	// ErrUnknownAttribute indicates a custom weight config named an
	// attribute the node does not carry.
	ErrUnknownAttribute = errors.New("quantcfg: unknown weight attribute in custom config")

	// ErrAmbiguousDefault indicates QCustom/QDefaultSP was requested with
	// no custom config and the node does not carry exactly one unique
	// enabled candidate to fall back on.
	ErrAmbiguousDefault = errors.New("quantcfg: ambiguous default bit-width")
)
