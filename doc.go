// Package grix is a typed graph layer over a native-style graph engine:
// build graphs from any comparable vertex values, query structure, and get
// results back as your own values — while storage and algorithms run behind
// a buffer-passing, status-code call contract.
//
// The work happens in four subpackages:
//
//	native/ — the engine boundary: handles, buffers, selectors, status codes
//	buffer/ — scoped vector / matrix / pointer-vector bindings
//	core/   — Graph[V], the value↔id identity map, vertex selectors
//	query/  — connectivity, shortest paths, subcomponents
//
// Quick example:
//
//	g, err := core.FromEdges([][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}},
//	    core.WithDirected[string](true))
//	if err != nil { ... }
//	defer g.Close()
//
//	strong, _ := query.IsConnected(g, core.StronglyConnected) // true
//	path, edges, _ := query.ShortestPath(g, "A", "C", core.ModeOut)
//	// path  == []string{"A", "B", "C"}
//	// edges == []core.Edge[string]{{"A", "B"}, {"B", "C"}}
//
// The guarantees worth knowing: vertex ids stay dense and bijective with
// your values across every insert and delete; every native buffer and graph
// handle is released exactly once on every path; and a non-zero engine
// status is surfaced as an error before any output buffer is decoded.
package grix
