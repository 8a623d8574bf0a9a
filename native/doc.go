// Package native is the engine boundary of grix: a graph-algorithms engine
// reachable only through integer handles, pre-allocated buffer handles,
// selector descriptors, and integer status codes.
//
// Every call follows the same C-style contract:
//
//	status := native.ShortestPathsInto(g, out, from, to, mode)
//
// where a zero Status means success and any non-zero Status means the call
// failed and no output buffer was populated. Callers must never read a buffer
// after a non-zero status.
//
// Resources (graphs, vectors, matrices, pointer-vectors) are allocated and
// freed explicitly. A handle passed after its Free/Destroy returns
// StatusBadHandle. LiveHandles reports the number of currently allocated
// resources so tests can prove the no-leak discipline of the layers above.
//
// Vertices are addressed purely by dense position: ids are contiguous in
// [0, VCount). DelVertex shifts every id above the deleted one down by one.
//
// The packages above this one (buffer, core, query) treat the engine as a
// black box; nothing here leaks internal state except by explicit copy-out.
package native
