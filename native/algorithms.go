// Package native: the engine's unweighted path and connectivity algorithms.
//
// Everything here is breadth-first search in one form or another. Distances
// are hop counts; the unreachable sentinel in distance matrices is +Inf.
package native

import "math"

// bfsDistances computes hop distances from src to every vertex reachable
// under mode. Unreached vertices are absent from the map.
func bfsDistances(g *graphObj, src int64, mode int32) map[int64]int64 {
	dist := map[int64]int64{src: 0}
	queue := []int64{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range neighborIDs(g, u, mode) {
			if _, seen := dist[v]; seen {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return dist
}

// bfsParents runs BFS from src until dst is settled, returning parent links.
// The second result reports whether dst was reached.
func bfsParents(g *graphObj, src, dst int64, mode int32) (map[int64]int64, bool) {
	if src == dst {
		return map[int64]int64{}, true
	}
	parent := map[int64]int64{src: src}
	queue := []int64{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range neighborIDs(g, u, mode) {
			if _, seen := parent[v]; seen {
				continue
			}
			parent[v] = u
			if v == dst {
				return parent, true
			}
			queue = append(queue, v)
		}
	}

	return parent, false
}

// reconstructPath walks parent links dst→src and returns the src→dst id path.
func reconstructPath(parent map[int64]int64, src, dst int64) []int64 {
	path := []int64{dst}
	for cur := dst; cur != src; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// ShortestPathsInto computes the hop-distance matrix between the two
// selectors' expansions. The out matrix is resized to
// len(from) x len(to); unreachable cells hold +Inf.
func ShortestPathsInto(h GraphHandle, out MatrixHandle, from, to Selector, mode int32) Status {
	g, st := lookupGraph(h)
	if st != OK {
		return st
	}
	m, st := lookupMatrix(out)
	if st != OK {
		return st
	}
	if mode != ModeOut && mode != ModeIn && mode != ModeAll {
		return StatusBadMode
	}
	rows, st := expandSelector(g, from)
	if st != OK {
		return st
	}
	cols, st := expandSelector(g, to)
	if st != OK {
		return st
	}

	data := make([]float64, len(rows)*len(cols))
	for i, src := range rows {
		dist := bfsDistances(g, src, mode)
		for j, dst := range cols {
			if d, ok := dist[dst]; ok {
				data[i*len(cols)+j] = float64(d)
			} else {
				data[i*len(cols)+j] = math.Inf(1)
			}
		}
	}
	m.rows, m.cols, m.data = len(rows), len(cols), data

	return OK
}

// ShortestPathInto computes one shortest path from→to. vpath receives the
// vertex ids along the path; epath receives the traversed edges as flat
// (from,to) id pairs. Both come back empty when no path exists.
func ShortestPathInto(h GraphHandle, vpath, epath VectorHandle, from, to int64, mode int32) Status {
	g, st := lookupGraph(h)
	if st != OK {
		return st
	}
	vOut, st := lookupVector(vpath)
	if st != OK {
		return st
	}
	eOut, st := lookupVector(epath)
	if st != OK {
		return st
	}
	if from < 0 || from >= g.vcount || to < 0 || to >= g.vcount {
		return StatusBadVertex
	}
	if mode != ModeOut && mode != ModeIn && mode != ModeAll {
		return StatusBadMode
	}

	parent, found := bfsParents(g, from, to, mode)
	if !found {
		vOut.data = nil
		eOut.data = nil
		return OK
	}
	ids := reconstructPath(parent, from, to)
	vs := make([]float64, len(ids))
	for i, id := range ids {
		vs[i] = float64(id)
	}
	var es []float64
	for i := 1; i < len(ids); i++ {
		es = append(es, float64(ids[i-1]), float64(ids[i]))
	}
	vOut.data = vs
	eOut.data = es

	return OK
}

// ShortestPathsListInto computes one shortest vertex-id path from `from` to
// each vertex in the target selector's expansion, one pointer-vector row per
// target. Unreachable targets yield empty rows.
func ShortestPathsListInto(h GraphHandle, out PtrVectorHandle, from int64, to Selector, mode int32) Status {
	g, st := lookupGraph(h)
	if st != OK {
		return st
	}
	p, st := lookupPtrVector(out)
	if st != OK {
		return st
	}
	if from < 0 || from >= g.vcount {
		return StatusBadVertex
	}
	if mode != ModeOut && mode != ModeIn && mode != ModeAll {
		return StatusBadMode
	}
	targets, st := expandSelector(g, to)
	if st != OK {
		return st
	}

	rows := make([][]float64, len(targets))
	for i, dst := range targets {
		parent, found := bfsParents(g, from, dst, mode)
		if !found {
			rows[i] = nil
			continue
		}
		ids := reconstructPath(parent, from, dst)
		row := make([]float64, len(ids))
		for j, id := range ids {
			row[j] = float64(id)
		}
		rows[i] = row
	}
	p.rows = rows

	return OK
}

// SubcomponentInto fills out with every vertex reachable from id under mode,
// id included, in BFS visit order.
func SubcomponentInto(h GraphHandle, out VectorHandle, id int64, mode int32) Status {
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

	seen := map[int64]bool{id: true}
	order := []int64{id}
	queue := []int64{id}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, nbr := range neighborIDs(g, u, mode) {
			if seen[nbr] {
				continue
			}
			seen[nbr] = true
			order = append(order, nbr)
			queue = append(queue, nbr)
		}
	}
	flat := make([]float64, len(order))
	for i, u := range order {
		flat[i] = float64(u)
	}
	v.data = flat

	return OK
}

// IsConnected reports global connectivity for the requested kind.
// On undirected graphs both kinds coincide with ordinary connectivity.
// The empty graph and the single-vertex graph count as connected.
func IsConnected(h GraphHandle, conn int32) (bool, Status) {
	g, st := lookupGraph(h)
	if st != OK {
		return false, st
	}
	if conn != ConnWeak && conn != ConnStrong {
		return false, StatusBadMode
	}
	if g.vcount <= 1 {
		return true, OK
	}

	if conn == ConnWeak || !g.directed {
		return int64(len(bfsDistances(g, 0, ModeAll))) == g.vcount, OK
	}
	// strong: every vertex reachable from 0 forwards and backwards
	if int64(len(bfsDistances(g, 0, ModeOut))) != g.vcount {
		return false, OK
	}

	return int64(len(bfsDistances(g, 0, ModeIn))) == g.vcount, OK
}
