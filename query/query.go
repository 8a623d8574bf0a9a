// Package query: the enumerated read-only operations.
package query

import (
	"math"

	"github.com/maerskine/grix/buffer"
	"github.com/maerskine/grix/core"
	"github.com/maerskine/grix/native"
)

// engineMode coerces the traversal mode for undirected graphs, where
// direction restrictions are meaningless.
func engineMode[V comparable](g *core.Graph[V], mode core.Mode) int32 {
	if !g.Directed() {
		return native.ModeAll
	}

	return int32(mode)
}

// AreConnected reports whether at least one edge runs from a to b
// (either orientation on undirected graphs). A value that was never
// inserted yields false, not an error.
func AreConnected[V comparable](g *core.Graph[V], a, b V) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if g.Closed() {
		return false, core.ErrGraphClosed
	}
	from, ok := g.Lookup(a)
	if !ok {
		return false, nil
	}
	to, ok := g.Lookup(b)
	if !ok {
		return false, nil
	}
	conn, st := native.AreConnected(g.Handle(), from, to)
	if st != native.OK {
		return false, st.Err("AreConnected")
	}

	return conn, nil
}

// ShortestPaths computes the unweighted shortest-path distance between
// every pair in the Cartesian product of the two selectors' expansions.
// Keys follow the expansions, each pair used exactly once; if an expansion
// repeats a vertex, later pairs overwrite earlier ones. Unreachable pairs
// decode to Distance{Reachable: false}.
func ShortestPaths[V comparable](
	g *core.Graph[V],
	from, to core.Selector[V],
	mode core.Mode,
) (map[VertexPair[V]]Distance, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Closed() {
		return nil, core.ErrGraphClosed
	}

	fromVals, err := from.Expand(g)
	if err != nil {
		return nil, err
	}
	toVals, err := to.Expand(g)
	if err != nil {
		return nil, err
	}

	fromDesc, releaseFrom, err := from.Lower(g)
	if err != nil {
		return nil, err
	}
	defer releaseFrom()
	toDesc, releaseTo, err := to.Lower(g)
	if err != nil {
		return nil, err
	}
	defer releaseTo()

	out, err := buffer.NewMatrix(0, 0)
	if err != nil {
		return nil, err
	}
	defer out.Destroy()
	st := native.ShortestPathsInto(g.Handle(), out.Handle(), fromDesc, toDesc, engineMode(g, mode))
	if st != native.OK {
		return nil, st.Err("ShortestPathsInto")
	}
	cells, err := out.Values()
	if err != nil {
		return nil, err
	}

	dist := make(map[VertexPair[V]]Distance, len(fromVals)*len(toVals))
	for i, fv := range fromVals {
		for j, tv := range toVals {
			cell := cells[i][j]
			key := VertexPair[V]{From: fv, To: tv}
			if math.IsInf(cell, 1) {
				dist[key] = Distance{}
				continue
			}
			dist[key] = Distance{Hops: int(math.Round(cell)), Reachable: true}
		}
	}

	return dist, nil
}

// ShortestPath reconstructs one unweighted shortest path from `from` to
// `to`: the vertex sequence and the edge sequence along it. Unmapped
// endpoints fail with ErrInvalidVertex; an unreachable `to` yields empty
// sequences and no error.
func ShortestPath[V comparable](
	g *core.Graph[V],
	from, to V,
	mode core.Mode,
) ([]V, []core.Edge[V], error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if g.Closed() {
		return nil, nil, core.ErrGraphClosed
	}
	src, ok := g.Lookup(from)
	if !ok {
		return nil, nil, ErrInvalidVertex
	}
	dst, ok := g.Lookup(to)
	if !ok {
		return nil, nil, ErrInvalidVertex
	}

	vpath, err := buffer.NewVector(0)
	if err != nil {
		return nil, nil, err
	}
	defer vpath.Destroy()
	epath, err := buffer.NewVector(0)
	if err != nil {
		return nil, nil, err
	}
	defer epath.Destroy()

	st := native.ShortestPathInto(g.Handle(), vpath.Handle(), epath.Handle(), src, dst, engineMode(g, mode))
	if st != native.OK {
		return nil, nil, st.Err("ShortestPathInto")
	}

	vids, err := vpath.Ints()
	if err != nil {
		return nil, nil, err
	}
	vertices, err := g.ValuesOf(vids)
	if err != nil {
		return nil, nil, err
	}

	eids, err := epath.Ints()
	if err != nil {
		return nil, nil, err
	}
	edges := make([]core.Edge[V], 0, len(eids)/2)
	for i := 0; i+1 < len(eids); i += 2 {
		pair, err := g.ValuesOf(eids[i : i+2])
		if err != nil {
			return nil, nil, err
		}
		edges = append(edges, core.Edge[V]{From: pair[0], To: pair[1]})
	}

	return vertices, edges, nil
}

// PathsFrom reconstructs one shortest vertex path from `from` to each
// vertex in the target selector's expansion, in expansion order.
// Unreachable targets yield empty paths. An unmapped `from` fails with
// ErrInvalidVertex.
func PathsFrom[V comparable](
	g *core.Graph[V],
	from V,
	to core.Selector[V],
	mode core.Mode,
) ([][]V, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Closed() {
		return nil, core.ErrGraphClosed
	}
	src, ok := g.Lookup(from)
	if !ok {
		return nil, ErrInvalidVertex
	}
	toDesc, releaseTo, err := to.Lower(g)
	if err != nil {
		return nil, err
	}
	defer releaseTo()

	out, err := buffer.NewPtrVector(0)
	if err != nil {
		return nil, err
	}
	defer out.Destroy()
	st := native.ShortestPathsListInto(g.Handle(), out.Handle(), src, toDesc, engineMode(g, mode))
	if st != native.OK {
		return nil, st.Err("ShortestPathsListInto")
	}
	rows, err := out.IntRows()
	if err != nil {
		return nil, err
	}

	paths := make([][]V, len(rows))
	for i, row := range rows {
		paths[i], err = g.ValuesOf(row)
		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}

// Subcomponent returns every vertex reachable from v under mode, v itself
// included, in the engine's visit order. A value that was never inserted
// yields an empty set, not an error.
func Subcomponent[V comparable](g *core.Graph[V], v V, mode core.Mode) ([]V, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Closed() {
		return nil, core.ErrGraphClosed
	}
	id, ok := g.Lookup(v)
	if !ok {
		return nil, nil
	}
	out, err := buffer.NewVector(0)
	if err != nil {
		return nil, err
	}
	defer out.Destroy()
	if st := native.SubcomponentInto(g.Handle(), out.Handle(), id, engineMode(g, mode)); st != native.OK {
		return nil, st.Err("SubcomponentInto")
	}
	ids, err := out.Ints()
	if err != nil {
		return nil, err
	}

	return g.ValuesOf(ids)
}

// IsConnected reports the graph-global connectivity for the requested kind.
// Vertex values play no role here; the engine's answer is returned as-is.
func IsConnected[V comparable](g *core.Graph[V], kind core.Connectedness) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if g.Closed() {
		return false, core.ErrGraphClosed
	}
	conn, st := native.IsConnected(g.Handle(), int32(kind))

	return conn, st.Err("IsConnected")
}
