package opmodel

// ConvMACs computes the multiply-accumulate count of a convolution-style
// node: one MAC per kernel weight, per output element.
func ConvMACs(outputElements, kernelElementsPerOutputChannel uint64) uint64 {
	return outputElements * kernelElementsPerOutputChannel
}
