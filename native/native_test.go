package native_test

import (
	"errors"
	"math"
	"testing"

	"github.com/maerskine/grix/native"
)

// buildGraph allocates a graph with n vertices and the given edges.
func buildGraph(t *testing.T, directed bool, n int64, edges [][2]int64) native.GraphHandle {
	t.Helper()
	h, st := native.NewGraph(directed)
	if st != native.OK {
		t.Fatalf("NewGraph: status %d", st)
	}
	if st = native.AddVertices(h, n); st != native.OK {
		t.Fatalf("AddVertices: status %d", st)
	}
	for _, e := range edges {
		if st = native.AddEdge(h, e[0], e[1]); st != native.OK {
			t.Fatalf("AddEdge(%d,%d): status %d", e[0], e[1], st)
		}
	}

	return h
}

func TestStaleHandleStatus(t *testing.T) {
	h, _ := native.NewGraph(false)
	if st := native.DestroyGraph(h); st != native.OK {
		t.Fatalf("DestroyGraph: status %d", st)
	}
	// every later use of the handle fails with StatusBadHandle
	if st := native.DestroyGraph(h); st != native.StatusBadHandle {
		t.Errorf("double destroy: want StatusBadHandle, got %d", st)
	}
	if _, st := native.VCount(h); st != native.StatusBadHandle {
		t.Errorf("VCount on stale handle: want StatusBadHandle, got %d", st)
	}

	v, _ := native.AllocVector(3)
	if st := native.FreeVector(v); st != native.OK {
		t.Fatalf("FreeVector: status %d", st)
	}
	if _, st := native.VectorCopyOut(v); st != native.StatusBadHandle {
		t.Errorf("copy-out after free: want StatusBadHandle, got %d", st)
	}
}

func TestLiveHandlesBalance(t *testing.T) {
	before := native.LiveHandles()
	g, _ := native.NewGraph(true)
	v, _ := native.AllocVector(2)
	m, _ := native.AllocMatrix(2, 2)
	p, _ := native.AllocPtrVector(1)
	if got := native.LiveHandles(); got != before+4 {
		t.Fatalf("LiveHandles = %d; want %d", got, before+4)
	}
	native.DestroyGraph(g)
	native.FreeVector(v)
	native.FreeMatrix(m)
	native.FreePtrVector(p)
	if got := native.LiveHandles(); got != before {
		t.Errorf("LiveHandles after release = %d; want %d", got, before)
	}
}

func TestDelVertexShiftsIDs(t *testing.T) {
	// 0→1, 1→2, 2→3; deleting vertex 1 leaves 0,1,2 with the old 2→3 as 1→2
	h := buildGraph(t, true, 4, [][2]int64{{0, 1}, {1, 2}, {2, 3}})
	defer native.DestroyGraph(h)

	if st := native.DelVertex(h, 1); st != native.OK {
		t.Fatalf("DelVertex: status %d", st)
	}
	n, _ := native.VCount(h)
	if n != 3 {
		t.Fatalf("VCount = %d; want 3", n)
	}
	out, _ := native.AllocVector(0)
	defer native.FreeVector(out)
	if st := native.EdgeListInto(h, out); st != native.OK {
		t.Fatalf("EdgeListInto: status %d", st)
	}
	flat, _ := native.VectorCopyOut(out)
	want := []float64{1, 2} // only the shifted 2→3 edge survives
	if len(flat) != 2 || flat[0] != want[0] || flat[1] != want[1] {
		t.Errorf("edge list = %v; want %v", flat, want)
	}

	if st := native.DelVertex(h, 99); st != native.StatusBadVertex {
		t.Errorf("DelVertex out of range: want StatusBadVertex, got %d", st)
	}
}

func TestNeighborsByMode(t *testing.T) {
	h := buildGraph(t, true, 3, [][2]int64{{0, 1}, {2, 0}})
	defer native.DestroyGraph(h)

	cases := []struct {
		mode int32
		want []float64
	}{
		{native.ModeOut, []float64{1}},
		{native.ModeIn, []float64{2}},
		{native.ModeAll, []float64{1, 2}},
	}
	out, _ := native.AllocVector(0)
	defer native.FreeVector(out)
	for _, tc := range cases {
		if st := native.NeighborsInto(h, out, 0, tc.mode); st != native.OK {
			t.Fatalf("NeighborsInto mode %d: status %d", tc.mode, st)
		}
		got, _ := native.VectorCopyOut(out)
		if len(got) != len(tc.want) {
			t.Errorf("mode %d: neighbors = %v; want %v", tc.mode, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("mode %d: neighbors = %v; want %v", tc.mode, got, tc.want)
			}
		}
	}

	if st := native.NeighborsInto(h, out, 0, 42); st != native.StatusBadMode {
		t.Errorf("bad mode: want StatusBadMode, got %d", st)
	}
}

func TestShortestPathsMatrix(t *testing.T) {
	// A(0)→B(1); B cannot reach A
	h := buildGraph(t, true, 2, [][2]int64{{0, 1}})
	defer native.DestroyGraph(h)

	m, _ := native.AllocMatrix(0, 0)
	defer native.FreeMatrix(m)
	all := native.Selector{Kind: native.SelAll}
	if st := native.ShortestPathsInto(h, m, all, all, native.ModeOut); st != native.OK {
		t.Fatalf("ShortestPathsInto: status %d", st)
	}
	rows, cols, _ := native.MatrixDims(m)
	if rows != 2 || cols != 2 {
		t.Fatalf("dims = %dx%d; want 2x2", rows, cols)
	}
	flat, _ := native.MatrixCopyOut(m)
	if flat[0] != 0 || flat[1] != 1 {
		t.Errorf("row 0 = %v; want [0 1]", flat[:2])
	}
	if !math.IsInf(flat[2], 1) || flat[3] != 0 {
		t.Errorf("row 1 = %v; want [+Inf 0]", flat[2:])
	}
}

func TestShortestPathReconstruction(t *testing.T) {
	h := buildGraph(t, true, 3, [][2]int64{{0, 1}, {1, 2}, {2, 0}})
	defer native.DestroyGraph(h)

	vp, _ := native.AllocVector(0)
	ep, _ := native.AllocVector(0)
	defer native.FreeVector(vp)
	defer native.FreeVector(ep)
	if st := native.ShortestPathInto(h, vp, ep, 0, 2, native.ModeOut); st != native.OK {
		t.Fatalf("ShortestPathInto: status %d", st)
	}
	vids, _ := native.VectorCopyOut(vp)
	eids, _ := native.VectorCopyOut(ep)
	wantV := []float64{0, 1, 2}
	wantE := []float64{0, 1, 1, 2}
	if len(vids) != 3 || vids[0] != wantV[0] || vids[1] != wantV[1] || vids[2] != wantV[2] {
		t.Errorf("vertex path = %v; want %v", vids, wantV)
	}
	if len(eids) != 4 {
		t.Fatalf("edge path = %v; want %v", eids, wantE)
	}
	for i := range wantE {
		if eids[i] != wantE[i] {
			t.Errorf("edge path = %v; want %v", eids, wantE)
			break
		}
	}
}

func TestShortestPathUnreachableIsEmpty(t *testing.T) {
	h := buildGraph(t, true, 2, [][2]int64{{0, 1}})
	defer native.DestroyGraph(h)

	vp, _ := native.AllocVector(0)
	ep, _ := native.AllocVector(0)
	defer native.FreeVector(vp)
	defer native.FreeVector(ep)
	if st := native.ShortestPathInto(h, vp, ep, 1, 0, native.ModeOut); st != native.OK {
		t.Fatalf("ShortestPathInto: status %d", st)
	}
	if n, _ := native.VectorLen(vp); n != 0 {
		t.Errorf("vertex path length = %d; want 0", n)
	}
	if n, _ := native.VectorLen(ep); n != 0 {
		t.Errorf("edge path length = %d; want 0", n)
	}
}

func TestSelectorExpansion(t *testing.T) {
	h := buildGraph(t, true, 3, [][2]int64{{0, 1}, {0, 2}})
	defer native.DestroyGraph(h)

	// explicit list echoes its own order, duplicates included
	ids, _ := native.AllocVector(0)
	defer native.FreeVector(ids)
	native.VectorFill(ids, []float64{2, 0, 2})
	sel := native.Selector{Kind: native.SelList, IDs: ids}
	n, st := native.SelectorSize(h, sel)
	if st != native.OK || n != 3 {
		t.Fatalf("SelectorSize = %d (status %d); want 3", n, st)
	}
	out, _ := native.AllocVector(0)
	defer native.FreeVector(out)
	if st = native.SelectorListInto(h, out, sel); st != native.OK {
		t.Fatalf("SelectorListInto: status %d", st)
	}
	got, _ := native.VectorCopyOut(out)
	want := []float64{2, 0, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expansion = %v; want %v", got, want)
		}
	}

	// the "all" selector matches VCount
	nAll, _ := native.SelectorSize(h, native.Selector{Kind: native.SelAll})
	if nAll != 3 {
		t.Errorf("all-selector size = %d; want 3", nAll)
	}

	// adjacency selector honors the mode ordinal
	adj := native.Selector{Kind: native.SelAdj, VID: 0, Mode: native.ModeOut}
	nAdj, _ := native.SelectorSize(h, adj)
	if nAdj != 2 {
		t.Errorf("adj-selector size = %d; want 2", nAdj)
	}
}

func TestIsConnectedKinds(t *testing.T) {
	// directed chain: weakly connected, not strongly
	chain := buildGraph(t, true, 3, [][2]int64{{0, 1}, {1, 2}})
	defer native.DestroyGraph(chain)
	if ok, _ := native.IsConnected(chain, native.ConnWeak); !ok {
		t.Error("chain: want weakly connected")
	}
	if ok, _ := native.IsConnected(chain, native.ConnStrong); ok {
		t.Error("chain: want not strongly connected")
	}

	// directed cycle: both
	cycle := buildGraph(t, true, 3, [][2]int64{{0, 1}, {1, 2}, {2, 0}})
	defer native.DestroyGraph(cycle)
	if ok, _ := native.IsConnected(cycle, native.ConnStrong); !ok {
		t.Error("cycle: want strongly connected")
	}

	if _, st := native.IsConnected(cycle, 7); st != native.StatusBadMode {
		t.Errorf("bad connectedness ordinal: want StatusBadMode, got %d", st)
	}
}

func TestCallErrorWrapsSentinel(t *testing.T) {
	err := native.StatusBadHandle.Err("VCount")
	if !errors.Is(err, native.ErrEngine) {
		t.Errorf("want errors.Is(err, ErrEngine); got %v", err)
	}
	var ce *native.CallError
	if !errors.As(err, &ce) || ce.Code != native.StatusBadHandle || ce.Op != "VCount" {
		t.Errorf("CallError fields = %+v", ce)
	}
	if native.OK.Err("noop") != nil {
		t.Error("OK.Err must be nil")
	}
}
