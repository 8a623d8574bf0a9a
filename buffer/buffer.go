// Package buffer: Vector, Matrix, and PtrVector handle types.
package buffer

import (
	"errors"
	"math"

	"github.com/maerskine/grix/native"
)

// Sentinel errors for buffer operations.
var (
	// ErrBufferReleased is returned when a buffer is used after Destroy.
	ErrBufferReleased = errors.New("buffer: buffer already released")

	// ErrBadLength is returned for negative lengths or shapes.
	ErrBadLength = errors.New("buffer: invalid length or shape")
)

// Vector is a scoped handle over one engine-owned flat numeric vector.
// It is single-owner: the creating call site destroys it.
type Vector struct {
	h        native.VectorHandle
	released bool
}

// NewVector allocates a zeroed native vector of length n.
func NewVector(n int) (*Vector, error) {
	if n < 0 {
		return nil, ErrBadLength
	}
	h, st := native.AllocVector(n)
	if err := st.Err("AllocVector"); err != nil {
		return nil, err
	}

	return &Vector{h: h}, nil
}

// VectorFromInts allocates a native vector and populates it with values
// in one step.
func VectorFromInts(values []int64) (*Vector, error) {
	floats := make([]float64, len(values))
	for i, v := range values {
		floats[i] = float64(v)
	}

	return VectorFromFloats(floats)
}

// VectorFromFloats allocates a native vector and populates it with values
// in one step.
func VectorFromFloats(values []float64) (*Vector, error) {
	v, err := NewVector(len(values))
	if err != nil {
		return nil, err
	}
	if st := native.VectorFill(v.h, values); st != native.OK {
		v.Destroy()
		return nil, st.Err("VectorFill")
	}

	return v, nil
}

// Handle exposes the raw native handle for engine-call sites.
func (v *Vector) Handle() native.VectorHandle { return v.h }

// Len reports the vector's current native length.
func (v *Vector) Len() (int, error) {
	if v.released {
		return 0, ErrBufferReleased
	}
	n, st := native.VectorLen(v.h)

	return n, st.Err("VectorLen")
}

// Floats decodes the full vector into a host-owned slice.
func (v *Vector) Floats() ([]float64, error) {
	if v.released {
		return nil, ErrBufferReleased
	}
	out, st := native.VectorCopyOut(v.h)

	return out, st.Err("VectorCopyOut")
}

// Ints decodes the full vector, rounding each entry to the nearest integer.
func (v *Vector) Ints() ([]int64, error) {
	floats, err := v.Floats()
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(floats))
	for i, f := range floats {
		out[i] = int64(math.Round(f))
	}

	return out, nil
}

// Destroy frees the native memory exactly once; later calls are no-ops.
func (v *Vector) Destroy() {
	if v == nil || v.released {
		return
	}
	v.released = true
	native.FreeVector(v.h)
}

// Matrix is a scoped handle over one engine-owned 2-D numeric matrix.
type Matrix struct {
	h        native.MatrixHandle
	released bool
}

// NewMatrix allocates a zeroed native rows x cols matrix. Engine calls may
// resize it; Dims reports the shape after the call that populated it.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadLength
	}
	h, st := native.AllocMatrix(rows, cols)
	if err := st.Err("AllocMatrix"); err != nil {
		return nil, err
	}

	return &Matrix{h: h}, nil
}

// Handle exposes the raw native handle for engine-call sites.
func (m *Matrix) Handle() native.MatrixHandle { return m.h }

// Dims reports the matrix's current native shape.
func (m *Matrix) Dims() (rows, cols int, err error) {
	if m.released {
		return 0, 0, ErrBufferReleased
	}
	rows, cols, st := native.MatrixDims(m.h)

	return rows, cols, st.Err("MatrixDims")
}

// Values decodes the full matrix into host-owned row slices.
func (m *Matrix) Values() ([][]float64, error) {
	if m.released {
		return nil, ErrBufferReleased
	}
	rows, cols, st := native.MatrixDims(m.h)
	if err := st.Err("MatrixDims"); err != nil {
		return nil, err
	}
	flat, st := native.MatrixCopyOut(m.h)
	if err := st.Err("MatrixCopyOut"); err != nil {
		return nil, err
	}
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = flat[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return out, nil
}

// Destroy frees the native memory exactly once; later calls are no-ops.
func (m *Matrix) Destroy() {
	if m == nil || m.released {
		return
	}
	m.released = true
	native.FreeMatrix(m.h)
}

// PtrVector is a scoped handle over one engine-owned sequence of sequences.
type PtrVector struct {
	h        native.PtrVectorHandle
	released bool
}

// NewPtrVector allocates a native pointer-vector with n empty rows.
func NewPtrVector(n int) (*PtrVector, error) {
	if n < 0 {
		return nil, ErrBadLength
	}
	h, st := native.AllocPtrVector(n)
	if err := st.Err("AllocPtrVector"); err != nil {
		return nil, err
	}

	return &PtrVector{h: h}, nil
}

// Handle exposes the raw native handle for engine-call sites.
func (p *PtrVector) Handle() native.PtrVectorHandle { return p.h }

// Len reports the current number of rows.
func (p *PtrVector) Len() (int, error) {
	if p.released {
		return 0, ErrBufferReleased
	}
	n, st := native.PtrVectorLen(p.h)

	return n, st.Err("PtrVectorLen")
}

// Values decodes every row into host-owned slices.
func (p *PtrVector) Values() ([][]float64, error) {
	if p.released {
		return nil, ErrBufferReleased
	}
	out, st := native.PtrVectorCopyOut(p.h)

	return out, st.Err("PtrVectorCopyOut")
}

// IntRows decodes every row, rounding each entry to the nearest integer.
func (p *PtrVector) IntRows() ([][]int64, error) {
	rows, err := p.Values()
	if err != nil {
		return nil, err
	}
	out := make([][]int64, len(rows))
	for i, row := range rows {
		out[i] = make([]int64, len(row))
		for j, f := range row {
			out[i][j] = int64(math.Round(f))
		}
	}

	return out, nil
}

// Destroy frees the native memory, rows included, exactly once.
func (p *PtrVector) Destroy() {
	if p == nil || p.released {
		return
	}
	p.released = true
	native.FreePtrVector(p.h)
}
