// Package core: vertex selectors and their lowering into the engine's
// descriptor encoding.
package core

import (
	"github.com/maerskine/grix/buffer"
	"github.com/maerskine/grix/native"
)

type selectorKind int

const (
	selAll selectorKind = iota
	selNone
	selOne
	selList
	selAdj
)

// Selector is a pure description of "which vertices" of a graph a query
// applies to. Construction never touches the engine; lowering happens when
// a query runs. Selectors are value types, built fresh per query.
type Selector[V comparable] struct {
	kind selectorKind
	one  V
	list []V
	mode Mode
}

// AllVertices selects every vertex of the graph it is lowered against.
func AllVertices[V comparable]() Selector[V] {
	return Selector[V]{kind: selAll}
}

// NoVertices selects nothing.
func NoVertices[V comparable]() Selector[V] {
	return Selector[V]{kind: selNone}
}

// OneVertex selects the single vertex holding value v. If v is unmapped at
// lowering time, the selector degrades to empty rather than failing.
func OneVertex[V comparable](v V) Selector[V] {
	return Selector[V]{kind: selOne, one: v}
}

// VertexList selects an explicit ordered sequence of vertices. Order and
// duplicates are preserved on expansion; unmapped values are skipped.
func VertexList[V comparable](vs ...V) Selector[V] {
	list := make([]V, len(vs))
	copy(list, vs)

	return Selector[V]{kind: selList, list: list}
}

// AdjacentVertices selects the neighbors of v under the given traversal
// mode. If v is unmapped at lowering time, the selector degrades to empty.
func AdjacentVertices[V comparable](v V, mode Mode) Selector[V] {
	return Selector[V]{kind: selAdj, one: v, mode: mode}
}

// Lower translates the selector into the engine's descriptor encoding
// against g. The returned release function frees any native memory the
// lowering allocated and must be called on every path once the engine call
// using the descriptor has returned.
func (s Selector[V]) Lower(g *Graph[V]) (native.Selector, func(), error) {
	noop := func() {}
	if g.Closed() {
		return native.Selector{}, noop, ErrGraphClosed
	}
	switch s.kind {
	case selAll:
		return native.Selector{Kind: native.SelAll}, noop, nil

	case selNone:
		return native.Selector{Kind: native.SelNone}, noop, nil

	case selOne:
		id, ok := g.Lookup(s.one)
		if !ok {
			return native.Selector{Kind: native.SelNone}, noop, nil
		}
		return native.Selector{Kind: native.SelOne, VID: id}, noop, nil

	case selList:
		ids := make([]int64, 0, len(s.list))
		for _, v := range s.list {
			if id, ok := g.Lookup(v); ok {
				ids = append(ids, id)
			}
		}
		vec, err := buffer.VectorFromInts(ids)
		if err != nil {
			return native.Selector{}, noop, err
		}
		return native.Selector{Kind: native.SelList, IDs: vec.Handle()}, vec.Destroy, nil

	case selAdj:
		id, ok := g.Lookup(s.one)
		if !ok {
			return native.Selector{Kind: native.SelNone}, noop, nil
		}
		return native.Selector{Kind: native.SelAdj, VID: id, Mode: g.effectiveMode(s.mode)}, noop, nil

	default:
		return native.Selector{Kind: native.SelNone}, noop, nil
	}
}

// Size lowers the selector against g and reports its cardinality. For
// AllVertices this equals the graph's current vertex count.
func (s Selector[V]) Size(g *Graph[V]) (int, error) {
	desc, release, err := s.Lower(g)
	if err != nil {
		return 0, err
	}
	defer release()
	n, st := native.SelectorSize(g.Handle(), desc)
	if st != native.OK {
		return 0, st.Err("SelectorSize")
	}

	return int(n), nil
}

// Expand lowers the selector against g, asks the engine for the concrete id
// sequence it denotes, and decodes each id through the identity map. The
// order is the engine's listing order, except for VertexList, which echoes
// its own order.
func (s Selector[V]) Expand(g *Graph[V]) ([]V, error) {
	desc, release, err := s.Lower(g)
	if err != nil {
		return nil, err
	}
	defer release()

	out, err := buffer.NewVector(0)
	if err != nil {
		return nil, err
	}
	defer out.Destroy()
	if st := native.SelectorListInto(g.Handle(), out.Handle(), desc); st != native.OK {
		return nil, st.Err("SelectorListInto")
	}
	ids, err := out.Ints()
	if err != nil {
		return nil, err
	}

	return g.ValuesOf(ids)
}
