// Package core: Graph, Edge, Mode, Connectedness, sentinel errors,
// options, and constructors.
package core

import (
	"errors"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/maerskine/grix/native"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateVertex indicates insertion of an already-mapped value.
	ErrDuplicateVertex = errors.New("core: vertex already present")

	// ErrUnknownVertex indicates an operation that requires a mapped value.
	ErrUnknownVertex = errors.New("core: vertex not found")

	// ErrUnknownEdge indicates deletion of an edge that does not exist.
	ErrUnknownEdge = errors.New("core: edge not found")

	// ErrGraphClosed indicates use of a Graph after Close.
	ErrGraphClosed = errors.New("core: graph is closed")
)

// Mode restricts adjacency-based traversal on directed graphs.
// Ordinals mirror the engine's fixed numbering.
type Mode int32

// Traversal modes. Undirected graphs treat every mode as ModeAll.
const (
	ModeOut Mode = Mode(native.ModeOut)
	ModeIn  Mode = Mode(native.ModeIn)
	ModeAll Mode = Mode(native.ModeAll)
)

// Connectedness selects the global connectivity kind on directed graphs.
type Connectedness int32

// Connectedness kinds. Undirected graphs treat both alike.
const (
	WeaklyConnected   Connectedness = Connectedness(native.ConnWeak)
	StronglyConnected Connectedness = Connectedness(native.ConnStrong)
)

// Edge is a pair of vertex values; From/To order matters on directed graphs.
// Edges carry no identity of their own: they are derived pairs.
type Edge[V comparable] struct {
	From V
	To   V
}

// Graph is a typed handle over one native graph object.
//
// The identity map and the native object always agree: the native vertex
// count equals the number of mapped values, and the map's dense ids are
// exactly the engine's vertex positions.
type Graph[V comparable] struct {
	mu sync.Mutex

	handle   native.GraphHandle
	ids      *idMap[V]
	directed bool
	closed   bool
	log      *logrus.Logger
}

// Option configures a Graph before creation.
type Option[V comparable] func(*Graph[V])

// WithDirected fixes the graph's directedness (default undirected).
func WithDirected[V comparable](directed bool) Option[V] {
	return func(g *Graph[V]) { g.directed = directed }
}

// WithLogger attaches a trace logger for engine calls. Nil disables logging.
func WithLogger[V comparable](log *logrus.Logger) Option[V] {
	return func(g *Graph[V]) { g.log = log }
}

// New creates an empty Graph. The first construction in a process performs
// the engine's one-time initialization.
func New[V comparable](opts ...Option[V]) *Graph[V] {
	native.Init()
	g := &Graph[V]{ids: newIDMap[V]()}
	for _, opt := range opts {
		opt(g)
	}
	h, _ := native.NewGraph(g.directed)
	g.handle = h
	g.trace("NewGraph", logrus.Fields{"directed": g.directed})

	// Backstop for callers that drop the handle without Close.
	runtime.SetFinalizer(g, func(fg *Graph[V]) { _ = fg.Close() })

	return g
}

// FromEdges creates a Graph from an edge list. Every distinct vertex value
// is inserted in first-occurrence order before any edge is wired; duplicate
// pairs are preserved as parallel edges.
func FromEdges[V comparable](pairs [][2]V, opts ...Option[V]) (*Graph[V], error) {
	g := New[V](opts...)
	for _, p := range pairs {
		for _, v := range p {
			if _, ok := g.ids.lookup(v); ok {
				continue
			}
			if err := g.AddVertex(v); err != nil {
				g.Close()
				return nil, err
			}
		}
	}
	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1]); err != nil {
			g.Close()
			return nil, err
		}
	}

	return g, nil
}

// Directed reports the construction-time directedness.
func (g *Graph[V]) Directed() bool { return g.directed }

// Handle exposes the native graph handle for engine-call sites in this
// module. The handle stays owned by the Graph; callers must not destroy it.
func (g *Graph[V]) Handle() native.GraphHandle { return g.handle }

// Closed reports whether Close has already released the native object.
func (g *Graph[V]) Closed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.closed
}

// Close releases the native graph object. The first call frees it; every
// later call is a no-op returning nil.
func (g *Graph[V]) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil
	}
	g.closed = true
	runtime.SetFinalizer(g, nil)
	g.trace("DestroyGraph", nil)

	return native.DestroyGraph(g.handle).Err("DestroyGraph")
}

// effectiveMode coerces the mode on undirected graphs, where direction
// restrictions are meaningless.
func (g *Graph[V]) effectiveMode(mode Mode) int32 {
	if !g.directed {
		return native.ModeAll
	}

	return int32(mode)
}

// trace logs one engine call when a logger is attached.
func (g *Graph[V]) trace(op string, fields logrus.Fields) {
	if g.log == nil {
		return
	}
	g.log.WithField("handle", int64(g.handle)).WithFields(fields).Debug("engine call: " + op)
}
