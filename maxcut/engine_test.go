package maxcut_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qbitgraph/ruc/graph"
	"github.com/qbitgraph/ruc/maxcut"
	"github.com/qbitgraph/ruc/memgraph"
)

func chainMemGraph(t *testing.T) *memgraph.MemGraph {
	t.Helper()
	g, err := graph.Builder(
		[]*graph.Node{graph.NewNode("input"), graph.NewNode("conv"), graph.NewNode("relu")},
		[]graph.EdgeSpec{
			{From: "input", FromPort: 0, To: "conv", ToPort: 0},
			{From: "conv", FromPort: 0, To: "relu", ToPort: 0},
		},
	)
	require.NoError(t, err)
	mg, err := memgraph.Build(g)
	require.NoError(t, err)
	return mg
}

func TestCuts_TinyChain(t *testing.T) {
	mg := chainMemGraph(t)
	eng := maxcut.New(mg)

	cuts, err := eng.Cuts()
	require.NoError(t, err)
	require.Len(t, cuts, 3)

	require.Equal(t, 0, cuts[0].Step)
	require.Equal(t, []memgraph.TensorID{"input"}, cuts[0].Elements)

	require.Equal(t, 1, cuts[1].Step)
	require.Equal(t, []memgraph.TensorID{"conv", "input"}, cuts[1].Elements)

	require.Equal(t, 2, cuts[2].Step)
	require.Equal(t, []memgraph.TensorID{"conv", "relu"}, cuts[2].Elements)
}

func TestCuts_Memoized(t *testing.T) {
	mg := chainMemGraph(t)
	eng := maxcut.New(mg)

	c1, err := eng.Cuts()
	require.NoError(t, err)
	c2, err := eng.Cuts()
	require.NoError(t, err)
	require.Equal(t, c1, c2)
}

func TestCuts_ParallelBranchesOverlapBeforeJoin(t *testing.T) {
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

	mg, err := memgraph.Build(g)
	require.NoError(t, err)
	eng := maxcut.New(mg)
	cuts, err := eng.Cuts()
	require.NoError(t, err)
	require.Len(t, cuts, 7)

	// "z" is scheduled right after "in" (same round as "a1") instead of
	// being drained in only once the whole a1..a4 chain is done, so it is
	// already live well before the chain reaches "join".
	require.Equal(t, 2, cuts[2].Step)
	require.Equal(t, []memgraph.TensorID{"a1", "in", "z"}, cuts[2].Elements)

	peak := 0
	for _, c := range cuts {
		if len(c.Elements) > peak {
			peak = len(c.Elements)
		}
	}
	require.Equal(t, 3, peak)
}

func TestCut_Bytes(t *testing.T) {
	mg := chainMemGraph(t)
	eng := maxcut.New(mg)
	cuts, err := eng.Cuts()
	require.NoError(t, err)

	sizes := map[memgraph.TensorID]uint64{"input": 768, "conv": 5408, "relu": 5408}
	peak := uint64(0)
	for _, c := range cuts {
		b := c.Bytes(func(t memgraph.TensorID) uint64 { return sizes[t] })
		if b > peak {
			peak = b
		}
	}
	require.Equal(t, uint64(5408+5408), peak)
}
