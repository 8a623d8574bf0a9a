// Package native: graph-object lifecycle and mutation calls.
//
// The engine addresses vertices purely by dense position. DelVertex removes
// one position and shifts every id above it down by one, so the binding
// layer must renumber its own value mapping in the same logical operation.
package native

// NewGraph allocates an empty engine graph with fixed directedness.
func NewGraph(directed bool) (GraphHandle, Status) {
	Init()
	h := GraphHandle(newHandle())
	regMu.Lock()
	graphs[h] = &graphObj{directed: directed}
	regMu.Unlock()

	return h, OK
}

// DestroyGraph releases the graph object. The handle is invalid afterwards.
func DestroyGraph(h GraphHandle) Status {
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := graphs[h]; !ok {
		return StatusBadHandle
	}
	delete(graphs, h)

	return OK
}

// IsDirected reports the graph's construction-time directedness.
func IsDirected(h GraphHandle) (bool, Status) {
	g, st := lookupGraph(h)
	if st != OK {
		return false, st
	}

	return g.directed, OK
}

// VCount reports the number of vertices.
func VCount(h GraphHandle) (int64, Status) {
	g, st := lookupGraph(h)
	if st != OK {
		return 0, st
	}

	return g.vcount, OK
}

// ECount reports the number of edges, counting parallels.
func ECount(h GraphHandle) (int64, Status) {
	g, st := lookupGraph(h)
	if st != OK {
		return 0, st
	}

	return int64(len(g.edges)), OK
}

// AddVertices appends n fresh vertices; their ids are the next n positions.
func AddVertices(h GraphHandle, n int64) Status {
	g, st := lookupGraph(h)
	if st != OK {
		return st
	}
	if n < 0 {
		return StatusBadVertex
	}
	g.vcount += n

	return OK
}

// DelVertex removes vertex id, drops every incident edge, and shifts all
// ids greater than id down by one to keep ids dense.
func DelVertex(h GraphHandle, id int64) Status {
	g, st := lookupGraph(h)
	if st != OK {
		return st
	}
	if id < 0 || id >= g.vcount {
		return StatusBadVertex
	}
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e[0] == id || e[1] == id {
			continue
		}
		if e[0] > id {
			e[0]--
		}
		if e[1] > id {
			e[1]--
		}
		kept = append(kept, e)
	}
	g.edges = kept
	g.vcount--

	return OK
}

// AddEdge appends the edge from→to. Parallel edges and loops are permitted.
func AddEdge(h GraphHandle, from, to int64) Status {
	g, st := lookupGraph(h)
	if st != OK {
		return st
	}
	if from < 0 || from >= g.vcount || to < 0 || to >= g.vcount {
		return StatusBadVertex
	}
	g.edges = append(g.edges, [2]int64{from, to})

	return OK
}

// DelEdge removes one edge from→to (either orientation on undirected
// graphs). Returns StatusNoSuchEdge when no such edge exists.
func DelEdge(h GraphHandle, from, to int64) Status {
	g, st := lookupGraph(h)
	if st != OK {
		return st
	}
	if from < 0 || from >= g.vcount || to < 0 || to >= g.vcount {
		return StatusBadVertex
	}
	for i, e := range g.edges {
		if matchEdge(g, e, from, to) {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			return OK
		}
	}

	return StatusNoSuchEdge
}

// AreConnected reports whether at least one edge from→to exists
// (either orientation on undirected graphs).
func AreConnected(h GraphHandle, from, to int64) (bool, Status) {
	g, st := lookupGraph(h)
	if st != OK {
		return false, st
	}
	if from < 0 || from >= g.vcount || to < 0 || to >= g.vcount {
		return false, StatusBadVertex
	}
	for _, e := range g.edges {
		if matchEdge(g, e, from, to) {
			return true, OK
		}
	}

	return false, OK
}

// EdgeListInto resizes out to 2*ECount and fills it with flat (from,to)
// id pairs in insertion order.
func EdgeListInto(h GraphHandle, out VectorHandle) Status {
	g, st := lookupGraph(h)
	if st != OK {
		return st
	}
	v, st := lookupVector(out)
	if st != OK {
		return st
	}
	flat := make([]float64, 0, 2*len(g.edges))
	for _, e := range g.edges {
		flat = append(flat, float64(e[0]), float64(e[1]))
	}
	v.data = flat

	return OK
}

// NeighborsInto resizes out and fills it with the ids adjacent to id under
// mode, in edge-insertion order. Parallel edges produce repeated ids.
func NeighborsInto(h GraphHandle, out VectorHandle, id int64, mode int32) Status {
	g, st := lookupGraph(h)
	if st != OK {
		return st
	}
	v, st := lookupVector(out)
	if st != OK {
		return st
	}
	if id < 0 || id >= g.vcount {
		return StatusBadVertex
	}
	if mode != ModeOut && mode != ModeIn && mode != ModeAll {
		return StatusBadMode
	}
	var ids []float64
	for _, nbr := range neighborIDs(g, id, mode) {
		ids = append(ids, float64(nbr))
	}
	v.data = ids

	return OK
}

// DegreeOf reports the number of edge endpoints incident to id under mode.
func DegreeOf(h GraphHandle, id int64, mode int32) (int64, Status) {
	g, st := lookupGraph(h)
	if st != OK {
		return 0, st
	}
	if id < 0 || id >= g.vcount {
		return 0, StatusBadVertex
	}
	if mode != ModeOut && mode != ModeIn && mode != ModeAll {
		return 0, StatusBadMode
	}

	return int64(len(neighborIDs(g, id, mode))), OK
}

// matchEdge reports whether edge e connects from→to under the graph's
// directedness.
func matchEdge(g *graphObj, e [2]int64, from, to int64) bool {
	if e[0] == from && e[1] == to {
		return true
	}

	return !g.directed && e[0] == to && e[1] == from
}

// neighborIDs lists the ids adjacent to id under mode, duplicates included.
// Undirected graphs ignore mode.
func neighborIDs(g *graphObj, id int64, mode int32) []int64 {
	if !g.directed {
		mode = ModeAll
	}
	var out []int64
	for _, e := range g.edges {
		outMatch := e[0] == id && (mode == ModeOut || mode == ModeAll)
		inMatch := e[1] == id && (mode == ModeIn || mode == ModeAll)
		if outMatch {
			out = append(out, e[1])
		}
		// a self-loop matched by the out branch is listed only once
		if inMatch && !(outMatch && e[0] == e[1]) {
			out = append(out, e[0])
		}
	}

	return out
}
