package opmodel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qbitgraph/ruc/graph"
	"github.com/qbitgraph/ruc/opmodel"
)

func TestRegistry_UnregisteredOpReportsZero(t *testing.T) {
	r := opmodel.NewRegistry()
	n := graph.NewNode("n", graph.WithOpKind("mystery"))
	require.Equal(t, uint64(0), r.MACCount(n))
	require.Empty(t, r.KernelAttrNames("mystery"))
}

func TestRegistry_RegisteredConv(t *testing.T) {
	r := opmodel.NewRegistry()
	r.RegisterOp("conv2d", opmodel.OpSpec{
		MACCount: func(n *graph.Node) uint64 {
			return opmodel.ConvMACs(n.OutputElementCount, 4*4*3)
		},
		KernelAttrs: []string{"kernel"},
	})

	n := graph.NewNode("conv", graph.WithOpKind("conv2d"), graph.WithOutputElements(32*13*13))
	require.Equal(t, uint64(32*13*13*4*4*3), r.MACCount(n))
	require.Equal(t, []string{"kernel"}, r.KernelAttrNames("conv2d"))
}

func TestConvMACs(t *testing.T) {
	require.Equal(t, uint64(100*48), opmodel.ConvMACs(100, 48))
}
