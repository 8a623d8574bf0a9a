// Package query: result types and sentinel errors.
package query

import "errors"

// Sentinel errors for query operations.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("query: graph is nil")

	// ErrInvalidVertex is returned when a path endpoint is not mapped.
	ErrInvalidVertex = errors.New("query: vertex not in graph")
)

// VertexPair keys a shortest-path distance by its (from, to) endpoints.
type VertexPair[V comparable] struct {
	From V
	To   V
}

// Distance is one cell of a shortest-path distance matrix. Reachable is
// false when the engine reported the unreachable sentinel; Hops is
// meaningful only when Reachable is true.
type Distance struct {
	Hops      int
	Reachable bool
}
