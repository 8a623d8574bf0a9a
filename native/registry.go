// Package native: resource registry and buffer primitives.
//
// All engine resources live behind integer handles in a process-wide
// registry. The registry mutex only protects handle bookkeeping; the
// single-owner discipline of the layers above guarantees that one resource
// is never used from two goroutines at once.
package native

import (
	"sync"
	"sync/atomic"
)

type graphObj struct {
	directed bool
	vcount   int64
	edges    [][2]int64 // insertion order, parallel edges preserved
}

type vectorObj struct {
	data []float64
}

type matrixObj struct {
	rows, cols int
	data       []float64 // row-major
}

type ptrVectorObj struct {
	rows [][]float64
}

var (
	regMu      sync.Mutex
	initOnce   sync.Once
	nextHandle int64

	graphs    map[GraphHandle]*graphObj
	vectors   map[VectorHandle]*vectorObj
	matrices  map[MatrixHandle]*matrixObj
	ptrVecs   map[PtrVectorHandle]*ptrVectorObj
)

// Init performs the process-wide engine setup. It is idempotent: repeated
// calls are no-ops. The first graph construction invokes it lazily.
func Init() {
	initOnce.Do(func() {
		regMu.Lock()
		graphs = make(map[GraphHandle]*graphObj)
		vectors = make(map[VectorHandle]*vectorObj)
		matrices = make(map[MatrixHandle]*matrixObj)
		ptrVecs = make(map[PtrVectorHandle]*ptrVectorObj)
		regMu.Unlock()
	})
}

// LiveHandles reports the number of engine resources currently allocated,
// across graphs and all buffer kinds.
func LiveHandles() int {
	regMu.Lock()
	defer regMu.Unlock()

	return len(graphs) + len(vectors) + len(matrices) + len(ptrVecs)
}

func newHandle() int64 { return atomic.AddInt64(&nextHandle, 1) }

func lookupGraph(h GraphHandle) (*graphObj, Status) {
	regMu.Lock()
	defer regMu.Unlock()
	g, ok := graphs[h]
	if !ok {
		return nil, StatusBadHandle
	}

	return g, OK
}

func lookupVector(h VectorHandle) (*vectorObj, Status) {
	regMu.Lock()
	defer regMu.Unlock()
	v, ok := vectors[h]
	if !ok {
		return nil, StatusBadHandle
	}

	return v, OK
}

func lookupMatrix(h MatrixHandle) (*matrixObj, Status) {
	regMu.Lock()
	defer regMu.Unlock()
	m, ok := matrices[h]
	if !ok {
		return nil, StatusBadHandle
	}

	return m, OK
}

func lookupPtrVector(h PtrVectorHandle) (*ptrVectorObj, Status) {
	regMu.Lock()
	defer regMu.Unlock()
	p, ok := ptrVecs[h]
	if !ok {
		return nil, StatusBadHandle
	}

	return p, OK
}

// Vector primitives:
////////////////////

// AllocVector allocates a zeroed vector of length n (n >= 0).
func AllocVector(n int) (VectorHandle, Status) {
	Init()
	if n < 0 {
		return 0, StatusBadBuffer
	}
	h := VectorHandle(newHandle())
	regMu.Lock()
	vectors[h] = &vectorObj{data: make([]float64, n)}
	regMu.Unlock()

	return h, OK
}

// FreeVector releases the vector's backing memory. The handle is invalid
// afterwards; freeing it again returns StatusBadHandle.
func FreeVector(h VectorHandle) Status {
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := vectors[h]; !ok {
		return StatusBadHandle
	}
	delete(vectors, h)

	return OK
}

// VectorLen reports the current length of the vector.
func VectorLen(h VectorHandle) (int, Status) {
	v, st := lookupVector(h)
	if st != OK {
		return 0, st
	}

	return len(v.data), OK
}

// VectorSet writes value at index i.
func VectorSet(h VectorHandle, i int, value float64) Status {
	v, st := lookupVector(h)
	if st != OK {
		return st
	}
	if i < 0 || i >= len(v.data) {
		return StatusBadBuffer
	}
	v.data[i] = value

	return OK
}

// VectorAt reads the value at index i.
func VectorAt(h VectorHandle, i int) (float64, Status) {
	v, st := lookupVector(h)
	if st != OK {
		return 0, st
	}
	if i < 0 || i >= len(v.data) {
		return 0, StatusBadBuffer
	}

	return v.data[i], OK
}

// VectorFill resizes the vector to len(values) and copies values in.
func VectorFill(h VectorHandle, values []float64) Status {
	v, st := lookupVector(h)
	if st != OK {
		return st
	}
	v.data = append(v.data[:0], values...)

	return OK
}

// VectorCopyOut returns a host-owned copy of the vector's contents.
// The copy has no lifetime tie to the handle.
func VectorCopyOut(h VectorHandle) ([]float64, Status) {
	v, st := lookupVector(h)
	if st != OK {
		return nil, st
	}
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out, OK
}

// Matrix primitives:
////////////////////

// AllocMatrix allocates a zeroed rows x cols matrix (both >= 0).
func AllocMatrix(rows, cols int) (MatrixHandle, Status) {
	Init()
	if rows < 0 || cols < 0 {
		return 0, StatusBadBuffer
	}
	h := MatrixHandle(newHandle())
	regMu.Lock()
	matrices[h] = &matrixObj{rows: rows, cols: cols, data: make([]float64, rows*cols)}
	regMu.Unlock()

	return h, OK
}

// FreeMatrix releases the matrix's backing memory.
func FreeMatrix(h MatrixHandle) Status {
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := matrices[h]; !ok {
		return StatusBadHandle
	}
	delete(matrices, h)

	return OK
}

// MatrixDims reports the current shape of the matrix.
func MatrixDims(h MatrixHandle) (rows, cols int, st Status) {
	m, st := lookupMatrix(h)
	if st != OK {
		return 0, 0, st
	}

	return m.rows, m.cols, OK
}

// MatrixCopyOut returns a host-owned row-major copy of the matrix contents.
func MatrixCopyOut(h MatrixHandle) ([]float64, Status) {
	m, st := lookupMatrix(h)
	if st != OK {
		return nil, st
	}
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out, OK
}

// Pointer-vector primitives:
////////////////////

// AllocPtrVector allocates a pointer-vector with n empty rows (n >= 0).
func AllocPtrVector(n int) (PtrVectorHandle, Status) {
	Init()
	if n < 0 {
		return 0, StatusBadBuffer
	}
	h := PtrVectorHandle(newHandle())
	regMu.Lock()
	ptrVecs[h] = &ptrVectorObj{rows: make([][]float64, n)}
	regMu.Unlock()

	return h, OK
}

// FreePtrVector releases the pointer-vector and every row it owns.
func FreePtrVector(h PtrVectorHandle) Status {
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := ptrVecs[h]; !ok {
		return StatusBadHandle
	}
	delete(ptrVecs, h)

	return OK
}

// PtrVectorLen reports the number of rows.
func PtrVectorLen(h PtrVectorHandle) (int, Status) {
	p, st := lookupPtrVector(h)
	if st != OK {
		return 0, st
	}

	return len(p.rows), OK
}

// PtrVectorCopyOut returns a host-owned copy of every row.
func PtrVectorCopyOut(h PtrVectorHandle) ([][]float64, Status) {
	p, st := lookupPtrVector(h)
	if st != OK {
		return nil, st
	}
	out := make([][]float64, len(p.rows))
	for i, row := range p.rows {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out, OK
}
