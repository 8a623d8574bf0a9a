// Package core: Graph mutations and projections.
//
// Every mutation touches the native object and the identity map under the
// same lock acquisition, so a caller can never observe one without the
// other. Projections decode engine output through the identity map.
package core

import (
	"github.com/sirupsen/logrus"

	"github.com/maerskine/grix/buffer"
	"github.com/maerskine/grix/native"
)

// AddVertex maps v to the next dense id and grows the native object by one
// vertex. Returns ErrDuplicateVertex if v is already present.
func (g *Graph[V]) AddVertex(v V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(v)
}

func (g *Graph[V]) addVertexLocked(v V) error {
	if g.closed {
		return ErrGraphClosed
	}
	if _, err := g.ids.insert(v); err != nil {
		return err
	}
	if st := native.AddVertices(g.handle, 1); st != native.OK {
		// keep the map in lockstep with the native object
		_, _ = g.ids.remove(v)
		return st.Err("AddVertices")
	}
	g.trace("AddVertices", logrus.Fields{"value": v})

	return nil
}

// RemoveVertex deletes v, its incident edges, and its mapping. The engine
// shifts every higher id down by one; the identity map compacts the same
// way in the same operation. Returns ErrUnknownVertex if v is absent.
func (g *Graph[V]) RemoveVertex(v V) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return ErrGraphClosed
	}
	id, ok := g.ids.lookup(v)
	if !ok {
		return ErrUnknownVertex
	}
	if st := native.DelVertex(g.handle, id); st != native.OK {
		return st.Err("DelVertex")
	}
	_, _ = g.ids.remove(v)
	g.trace("DelVertex", logrus.Fields{"value": v, "id": id})

	return nil
}

// AddEdge wires an edge from u to v, first inserting either endpoint that
// is not yet mapped. Parallel edges and self-loops are preserved.
func (g *Graph[V]) AddEdge(u, v V) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return ErrGraphClosed
	}
	for _, val := range []V{u, v} {
		if _, ok := g.ids.lookup(val); ok {
			continue
		}
		if err := g.addVertexLocked(val); err != nil {
			return err
		}
	}
	from, _ := g.ids.lookup(u)
	to, _ := g.ids.lookup(v)
	if st := native.AddEdge(g.handle, from, to); st != native.OK {
		return st.Err("AddEdge")
	}
	g.trace("AddEdge", logrus.Fields{"from": from, "to": to})

	return nil
}

// RemoveEdge deletes one edge from u to v (either orientation on undirected
// graphs). Returns ErrUnknownVertex when an endpoint is unmapped and
// ErrUnknownEdge when no such edge exists.
func (g *Graph[V]) RemoveEdge(u, v V) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return ErrGraphClosed
	}
	from, ok := g.ids.lookup(u)
	if !ok {
		return ErrUnknownVertex
	}
	to, ok := g.ids.lookup(v)
	if !ok {
		return ErrUnknownVertex
	}
	st := native.DelEdge(g.handle, from, to)
	if st == native.StatusNoSuchEdge {
		return ErrUnknownEdge
	}
	if st != native.OK {
		return st.Err("DelEdge")
	}
	g.trace("DelEdge", logrus.Fields{"from": from, "to": to})

	return nil
}

// Has reports whether v is a mapped vertex. Pure lookup, no native call.
func (g *Graph[V]) Has(v V) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return false
	}
	_, ok := g.ids.lookup(v)

	return ok
}

// Lookup resolves a value to its dense engine id. Pure lookup.
func (g *Graph[V]) Lookup(v V) (int64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, false
	}

	return g.ids.lookup(v)
}

// Value resolves a dense engine id back to its owning value. Pure lookup.
func (g *Graph[V]) Value(id int64) (V, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		var zero V
		return zero, false
	}

	return g.ids.resolve(id)
}

// ValuesOf decodes a sequence of engine ids into their values, in order.
// Returns ErrUnknownVertex if any id is outside the live range.
func (g *Graph[V]) ValuesOf(ids []int64) ([]V, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil, ErrGraphClosed
	}
	out := make([]V, len(ids))
	for i, id := range ids {
		v, ok := g.ids.resolve(id)
		if !ok {
			return nil, ErrUnknownVertex
		}
		out[i] = v
	}

	return out, nil
}

// Vertices returns every vertex value in the engine's dense id order.
func (g *Graph[V]) Vertices() []V {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil
	}

	return g.ids.all()
}

// VertexCount reports the number of live vertices.
func (g *Graph[V]) VertexCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0
	}

	return g.ids.count()
}

// EdgeCount reports the number of edges, counting parallels.
func (g *Graph[V]) EdgeCount() (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, ErrGraphClosed
	}
	n, st := native.ECount(g.handle)

	return int(n), st.Err("ECount")
}

// Edges returns every edge as a value pair, in insertion order.
func (g *Graph[V]) Edges() ([]Edge[V], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil, ErrGraphClosed
	}
	vec, err := buffer.NewVector(0)
	if err != nil {
		return nil, err
	}
	defer vec.Destroy()
	if st := native.EdgeListInto(g.handle, vec.Handle()); st != native.OK {
		return nil, st.Err("EdgeListInto")
	}
	ids, err := vec.Ints()
	if err != nil {
		return nil, err
	}
	edges := make([]Edge[V], 0, len(ids)/2)
	for i := 0; i+1 < len(ids); i += 2 {
		from, ok := g.ids.resolve(ids[i])
		if !ok {
			return nil, ErrUnknownVertex
		}
		to, ok := g.ids.resolve(ids[i+1])
		if !ok {
			return nil, ErrUnknownVertex
		}
		edges = append(edges, Edge[V]{From: from, To: to})
	}

	return edges, nil
}

// Neighbors returns the vertices adjacent to v under mode, in the engine's
// listing order; parallel edges repeat their endpoint. An unmapped v yields
// an empty result, not an error.
func (g *Graph[V]) Neighbors(v V, mode Mode) ([]V, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil, ErrGraphClosed
	}
	id, ok := g.ids.lookup(v)
	if !ok {
		return nil, nil
	}
	vec, err := buffer.NewVector(0)
	if err != nil {
		return nil, err
	}
	defer vec.Destroy()
	if st := native.NeighborsInto(g.handle, vec.Handle(), id, g.effectiveMode(mode)); st != native.OK {
		return nil, st.Err("NeighborsInto")
	}
	ids, err := vec.Ints()
	if err != nil {
		return nil, err
	}
	out := make([]V, len(ids))
	for i, nid := range ids {
		val, ok := g.ids.resolve(nid)
		if !ok {
			return nil, ErrUnknownVertex
		}
		out[i] = val
	}

	return out, nil
}

// Degree reports the number of edge endpoints incident to v under mode.
// An unmapped v yields zero, not an error.
func (g *Graph[V]) Degree(v V, mode Mode) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, ErrGraphClosed
	}
	id, ok := g.ids.lookup(v)
	if !ok {
		return 0, nil
	}
	d, st := native.DegreeOf(g.handle, id, g.effectiveMode(mode))

	return int(d), st.Err("DegreeOf")
}
