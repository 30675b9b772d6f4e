package quantcfg

// BitwidthMode selects how effective bit-widths are resolved across an
// entire compute() call.
type BitwidthMode int

const (
	// Float treats every quantizable attribute as full-precision (32 bit),
	// regardless of per-node quantization flags or candidates.
	Float BitwidthMode = iota

	// Q8Bit resolves every enabled attribute to 8 bits.
	Q8Bit

	// QMaxBit resolves each enabled attribute to the widest candidate it
	// carries.
	QMaxBit

	// QMinBit resolves each enabled attribute to the narrowest candidate
	// it carries.
	QMinBit

	// QCustom resolves from the caller-supplied per-node custom config,
	// falling back to the node's single unique candidate when no config
	// entry is present for that node/attribute.
	QCustom

	// QDefaultSP ("default single-precision-candidate") behaves like
	// QCustom but never accepts a custom config: every node must carry
	// exactly one unique enabled candidate.
	QDefaultSP
)

// String renders the mode's canonical name.
func (m BitwidthMode) String() string {
	switch m {
	case Float:
		return "Float"
	case Q8Bit:
		return "Q8Bit"
	case QMaxBit:
		return "QMaxBit"
	case QMinBit:
		return "QMinBit"
	case QCustom:
		return "QCustom"
	case QDefaultSP:
		return "QDefaultSP"
	default:
		return "BitwidthMode(unknown)"
	}
}
