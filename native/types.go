// Package native: handle types, status codes, selector descriptors,
// and the engine's fixed enum ordinals.
package native

import (
	"errors"
	"fmt"
)

// Status is the engine's integer return code. Zero means success.
type Status int32

// Engine status codes. Any non-zero value denotes a failed call whose
// output buffers are unpopulated and must not be read.
const (
	OK Status = 0

	// StatusBadHandle indicates a stale or unknown resource handle.
	StatusBadHandle Status = 1

	// StatusBadVertex indicates a vertex id outside [0, VCount).
	StatusBadVertex Status = 2

	// StatusBadBuffer indicates an invalid buffer shape or size.
	StatusBadBuffer Status = 3

	// StatusBadSelector indicates a malformed selector descriptor.
	StatusBadSelector Status = 4

	// StatusBadMode indicates an unknown traversal or connectedness ordinal.
	StatusBadMode Status = 5

	// StatusNoSuchEdge indicates an edge deletion for an absent edge.
	StatusNoSuchEdge Status = 6
)

// Traversal mode ordinals, fixed by the engine's call contract.
const (
	ModeOut int32 = 1
	ModeIn  int32 = 2
	ModeAll int32 = 3
)

// Connectedness ordinals, fixed by the engine's call contract.
const (
	ConnWeak   int32 = 1
	ConnStrong int32 = 2
)

// Handle types. Handles are opaque; zero is never a valid handle.
type (
	// GraphHandle refers to one engine-owned graph object.
	GraphHandle int64

	// VectorHandle refers to one engine-owned flat numeric vector.
	VectorHandle int64

	// MatrixHandle refers to one engine-owned 2-D numeric matrix.
	MatrixHandle int64

	// PtrVectorHandle refers to one engine-owned sequence of sequences.
	PtrVectorHandle int64
)

// SelectorKind tags the engine's vertex-selector encoding.
type SelectorKind int32

// Selector kinds, fixed by the engine's call contract.
const (
	SelAll  SelectorKind = 1
	SelNone SelectorKind = 2
	SelOne  SelectorKind = 3
	SelList SelectorKind = 4
	SelAdj  SelectorKind = 5
)

// Selector is the engine-facing description of "which vertices".
// It is a plain descriptor: lowering allocates IDs (for SelList) but the
// descriptor itself owns nothing and performs no native work.
type Selector struct {
	Kind SelectorKind
	VID  int64        // SelOne, SelAdj: the anchoring vertex id
	Mode int32        // SelAdj: traversal mode ordinal
	IDs  VectorHandle // SelList: explicit id sequence, owned by the caller
}

// ErrEngine is the sentinel all engine-call failures unwrap to.
// Match a specific status through errors.As with *CallError.
var ErrEngine = errors.New("native: engine call failed")

// CallError reports a non-zero status from a named engine call.
type CallError struct {
	Op   string
	Code Status
}

// Error implements the error interface.
func (e *CallError) Error() string {
	return fmt.Sprintf("native: %s returned status %d", e.Op, e.Code)
}

// Unwrap ties every CallError to the ErrEngine sentinel.
func (e *CallError) Unwrap() error { return ErrEngine }

// Err converts a status into an error: nil for OK, *CallError otherwise.
func (s Status) Err(op string) error {
	if s == OK {
		return nil
	}
	return &CallError{Op: op, Code: s}
}
