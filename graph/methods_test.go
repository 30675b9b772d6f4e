package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qbitgraph/ruc/graph"
)

func tinyChain(t *testing.T) *graph.Graph {
	t.Helper()

	input := graph.NewNode("input",
		graph.WithOpKind("input"),
		graph.WithOutputElements(3*16*16),
		graph.WithActivation(true, graph.BitwidthCandidate{NBits: 8, Enabled: true}),
	)
	conv := graph.NewNode("conv",
		graph.WithOpKind("conv2d"),
		graph.WithOutputElements(32*13*13),
		graph.WithActivation(true, graph.BitwidthCandidate{NBits: 8, Enabled: true}),
		graph.WithWeightAttr("kernel", 4*4*3*32, true, graph.BitwidthCandidate{NBits: 8, Enabled: true}),
		graph.WithWeightAttr("bias", 32, true, graph.BitwidthCandidate{NBits: 8, Enabled: true}),
		graph.WithKernelAttr("kernel"),
	)
	relu := graph.NewNode("relu",
		graph.WithOpKind("relu"),
		graph.WithOutputElements(32*13*13),
		graph.WithActivation(true, graph.BitwidthCandidate{NBits: 8, Enabled: true}),
	)

	g, err := graph.Builder(
		[]*graph.Node{input, conv, relu},
		[]graph.EdgeSpec{
			{From: "input", FromPort: 0, To: "conv", ToPort: 0},
			{From: "conv", FromPort: 0, To: "relu", ToPort: 0},
		},
	)
	require.NoError(t, err)
	return g
}

func TestAddNode_EmptyID(t *testing.T) {
	g := graph.NewGraph()
	err := g.AddNode(&graph.Node{})
	require.ErrorIs(t, err, graph.ErrEmptyNodeID)
}

func TestAddNode_Duplicate(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddNode(graph.NewNode("a")))
	require.ErrorIs(t, g.AddNode(graph.NewNode("a")), graph.ErrDuplicateNodeID)
}

func TestAddNode_ReuseWithoutGroup(t *testing.T) {
	g := graph.NewGraph()
	n := graph.NewNode("a")
	n.Reuse = true
	require.ErrorIs(t, g.AddNode(n), graph.ErrInvalidReuseGroup)
}

func TestAddEdge_UnknownNode(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddNode(graph.NewNode("a")))
	err := g.AddEdge("a", 0, "missing", 0)
	require.ErrorIs(t, err, graph.ErrUnknownNode)
}

func TestAddEdge_DuplicateSinkPort(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddNode(graph.NewNode("a")))
	require.NoError(t, g.AddNode(graph.NewNode("b")))
	require.NoError(t, g.AddNode(graph.NewNode("c")))
	require.NoError(t, g.AddEdge("a", 0, "c", 0))
	err := g.AddEdge("b", 0, "c", 0)
	require.ErrorIs(t, err, graph.ErrDuplicateSinkPort)
}

func TestIncomingEdges_SortedByPort(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddNode(graph.NewNode("a")))
	require.NoError(t, g.AddNode(graph.NewNode("b")))
	require.NoError(t, g.AddNode(graph.NewNode("sink")))
	require.NoError(t, g.AddEdge("b", 0, "sink", 2))
	require.NoError(t, g.AddEdge("a", 0, "sink", 1))

	edges := g.IncomingEdges("sink")
	require.Len(t, edges, 2)
	require.Equal(t, 1, edges[0].ToPort)
	require.Equal(t, 2, edges[1].ToPort)
}

func TestTopoOrder_TinyChain(t *testing.T) {
	g := tinyChain(t)
	order, err := g.TopoOrder()
	require.NoError(t, err)
	require.Equal(t, []graph.NodeID{"input", "conv", "relu"}, order)
}

func TestTopoOrder_TieBreakAscending(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddNode(graph.NewNode("z")))
	require.NoError(t, g.AddNode(graph.NewNode("a")))
	require.NoError(t, g.AddNode(graph.NewNode("m")))

	order, err := g.TopoOrder()
	require.NoError(t, err)
	require.Equal(t, []graph.NodeID{"a", "m", "z"}, order)
}

func TestTopoOrder_InterleavesParallelBranches(t *testing.T) {
	g := graph.NewGraph()
	for _, id := range []graph.NodeID{"in", "a1", "a2", "a3", "a4", "z", "join"} {
		require.NoError(t, g.AddNode(graph.NewNode(id)))
	}
	require.NoError(t, g.AddEdge("in", 0, "a1", 0))
	require.NoError(t, g.AddEdge("in", 0, "z", 0))
	require.NoError(t, g.AddEdge("a1", 0, "a2", 0))
	require.NoError(t, g.AddEdge("a2", 0, "a3", 0))
	require.NoError(t, g.AddEdge("a3", 0, "a4", 0))
	require.NoError(t, g.AddEdge("a4", 0, "join", 0))
	require.NoError(t, g.AddEdge("z", 0, "join", 1))

	order, err := g.TopoOrder()
	require.NoError(t, err)
	// "z" is ready in the same round as "a1" (both depend only on "in"). A
	// single ready queue sorted and drained one node at a time would keep
	// popping the a-chain's newly-ready successors ahead of "z" (they sort
	// before it), pushing "z" all the way down to just before "join". The
	// round-based scheduler instead places it right after "in".
	require.Equal(t, []graph.NodeID{"in", "a1", "z", "a2", "a3", "a4", "join"}, order)
}

func TestTopoOrder_DetectsCycle(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddNode(graph.NewNode("a")))
	require.NoError(t, g.AddNode(graph.NewNode("b")))
	require.NoError(t, g.AddEdge("a", 0, "b", 0))
	require.NoError(t, g.AddEdge("b", 0, "a", 1))

	_, err := g.TopoOrder()
	require.True(t, errors.Is(err, graph.ErrCycle))
}

func TestTopoOrder_Memoized(t *testing.T) {
	g := tinyChain(t)
	o1, err := g.TopoOrder()
	require.NoError(t, err)
	o2, err := g.TopoOrder()
	require.NoError(t, err)
	require.Equal(t, o1, o2)
}

func TestNode_KernelAndCandidates(t *testing.T) {
	g := tinyChain(t)
	conv, ok := g.Node("conv")
	require.True(t, ok)
	require.True(t, conv.HasKernelWeightToQuantize())
	require.Equal(t, []int{8}, conv.UniqueWeightsCandidates("kernel"))
	require.Equal(t, []int{8}, conv.UniqueActivationCandidates())
}

func TestValidate_TinyChain(t *testing.T) {
	g := tinyChain(t)
	require.NoError(t, graph.Validate(g))
}
