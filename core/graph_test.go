package core_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/maerskine/grix/core"
	"github.com/maerskine/grix/native"
)

func TestNewAndClose(t *testing.T) {
	before := native.LiveHandles()
	g := core.New[string](core.WithDirected[string](true))
	require.True(t, g.Directed())
	require.Equal(t, 0, g.VertexCount())

	require.NoError(t, g.Close())
	require.NoError(t, g.Close()) // second Close is a no-op
	require.True(t, g.Closed())
	require.Equal(t, before, native.LiveHandles())

	require.ErrorIs(t, g.AddVertex("A"), core.ErrGraphClosed)
	_, err := g.Edges()
	require.ErrorIs(t, err, core.ErrGraphClosed)
}

func TestAddVertexKeepsMapAndEngineInLockstep(t *testing.T) {
	g := core.New[string]()
	defer g.Close()

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.ErrorIs(t, g.AddVertex("A"), core.ErrDuplicateVertex)

	n, st := native.VCount(g.Handle())
	require.Equal(t, native.OK, st)
	require.EqualValues(t, g.VertexCount(), n)
	require.Equal(t, []string{"A", "B"}, g.Vertices())
}

func TestRemoveVertexRenumbers(t *testing.T) {
	g, err := core.FromEdges([][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}},
		core.WithDirected[string](true))
	require.NoError(t, err)
	defer g.Close()

	require.NoError(t, g.RemoveVertex("B"))
	require.ErrorIs(t, g.RemoveVertex("B"), core.ErrUnknownVertex)

	// ids compacted on both sides: values keep dense-id order
	require.Equal(t, []string{"A", "C", "D"}, g.Vertices())
	n, _ := native.VCount(g.Handle())
	require.EqualValues(t, 3, n)

	// only C→D survives
	edges, err := g.Edges()
	require.NoError(t, err)
	require.Equal(t, []core.Edge[string]{{From: "C", To: "D"}}, edges)

	// the surviving values still resolve to their vertices
	id, ok := g.Lookup("D")
	require.True(t, ok)
	back, ok := g.Value(id)
	require.True(t, ok)
	require.Equal(t, "D", back)
}

func TestFromEdgesFirstOccurrenceOrder(t *testing.T) {
	g, err := core.FromEdges([][2]string{{"C", "A"}, {"A", "B"}, {"C", "A"}})
	require.NoError(t, err)
	defer g.Close()

	require.Equal(t, []string{"C", "A", "B"}, g.Vertices())

	// the duplicate pair is preserved as a parallel edge
	n, err := g.EdgeCount()
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestAddEdgeInsertsMissingEndpoints(t *testing.T) {
	g := core.New[int]()
	defer g.Close()

	require.NoError(t, g.AddEdge(10, 20))
	require.True(t, g.Has(10))
	require.True(t, g.Has(20))
	require.False(t, g.Has(30))

	edges, err := g.Edges()
	require.NoError(t, err)
	require.Equal(t, []core.Edge[int]{{From: 10, To: 20}}, edges)
}

func TestRemoveEdge(t *testing.T) {
	g, err := core.FromEdges([][2]string{{"A", "B"}, {"A", "B"}})
	require.NoError(t, err)
	defer g.Close()

	require.NoError(t, g.RemoveEdge("A", "B"))
	n, err := g.EdgeCount()
	require.NoError(t, err)
	require.Equal(t, 1, n) // parallels removed one at a time

	require.NoError(t, g.RemoveEdge("B", "A")) // undirected: either orientation
	require.ErrorIs(t, g.RemoveEdge("A", "B"), core.ErrUnknownEdge)
	require.ErrorIs(t, g.RemoveEdge("A", "X"), core.ErrUnknownVertex)
}

func TestNeighborsByMode(t *testing.T) {
	g, err := core.FromEdges([][2]string{{"A", "B"}, {"C", "A"}},
		core.WithDirected[string](true))
	require.NoError(t, err)
	defer g.Close()

	out, err := g.Neighbors("A", core.ModeOut)
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, out)

	in, err := g.Neighbors("A", core.ModeIn)
	require.NoError(t, err)
	require.Equal(t, []string{"C"}, in)

	all, err := g.Neighbors("A", core.ModeAll)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"B", "C"}, all)

	// unmapped vertex degrades to empty, not an error
	none, err := g.Neighbors("X", core.ModeAll)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestNeighborsUndirectedIgnoresMode(t *testing.T) {
	g, err := core.FromEdges([][2]string{{"A", "B"}, {"C", "A"}})
	require.NoError(t, err)
	defer g.Close()

	for _, mode := range []core.Mode{core.ModeOut, core.ModeIn, core.ModeAll} {
		nbrs, err := g.Neighbors("A", mode)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"B", "C"}, nbrs, "mode %d", mode)
	}
}

func TestDegree(t *testing.T) {
	g, err := core.FromEdges([][2]string{{"A", "B"}, {"A", "B"}, {"C", "A"}},
		core.WithDirected[string](true))
	require.NoError(t, err)
	defer g.Close()

	out, err := g.Degree("A", core.ModeOut)
	require.NoError(t, err)
	require.Equal(t, 2, out) // parallel edges both count

	in, err := g.Degree("A", core.ModeIn)
	require.NoError(t, err)
	require.Equal(t, 1, in)

	zero, err := g.Degree("X", core.ModeAll)
	require.NoError(t, err)
	require.Zero(t, zero)
}

func TestWithLoggerTracesCalls(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.DebugLevel)

	g := core.New[string](core.WithLogger[string](log))
	defer g.Close()
	require.NoError(t, g.AddEdge("A", "B")) // must not panic with a logger attached
}

func TestMutationLeavesNoNativeLeak(t *testing.T) {
	before := native.LiveHandles()
	g, err := core.FromEdges([][2]string{{"A", "B"}, {"B", "C"}})
	require.NoError(t, err)

	_, err = g.Edges()
	require.NoError(t, err)
	_, err = g.Neighbors("B", core.ModeAll)
	require.NoError(t, err)
	require.NoError(t, g.RemoveVertex("C"))

	require.NoError(t, g.Close())
	require.Equal(t, before, native.LiveHandles())
}
