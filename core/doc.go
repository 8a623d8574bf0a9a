// Package core provides the typed graph surface over the native engine:
// a Graph parameterized by any comparable vertex value, the bidirectional
// identity map between values and the engine's dense integer ids, and the
// vertex selectors that describe query inputs.
//
// What
//
//   - Graph[V]: owns one native graph object, keeps its vertex count and the
//     identity map in lockstep across every mutation, and releases the native
//     handle exactly once on Close.
//   - Identity map: for every live vertex, value→id and id→value are mutual
//     inverses and ids stay contiguous in [0, n). Deleting a vertex shifts
//     every higher id down by one, in the same logical operation as the
//     engine-side deletion.
//   - Selector[V]: a pure description of "which vertices" (all, none, one,
//     an explicit list, the neighbors of a vertex). Lowered to the engine's
//     descriptor encoding only when a query runs.
//
// Directedness is fixed at construction. On undirected graphs every
// traversal Mode is treated as ModeAll.
//
// Concurrency
//
//	A Graph is a single-owner handle. One mutex per instance serializes
//	mutations so the identity map can never drift from the native object;
//	there is no finer-grained locking because partial synchronization would
//	desynchronize the two.
//
// Errors
//
//   - ErrDuplicateVertex  inserting a value that is already mapped.
//   - ErrUnknownVertex    removing a value that is not mapped.
//   - ErrUnknownEdge      deleting an edge that does not exist.
//   - ErrGraphClosed      any operation after Close.
//   - native.CallError    non-zero status from an engine call.
package core
