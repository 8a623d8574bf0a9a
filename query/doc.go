// Package query provides the read-only graph algorithms of grix: adjacency
// tests, shortest-path distances and reconstruction, subcomponent
// extraction, and global connectivity.
//
// Every operation is a thin application of the core marshalling layer:
// selectors are lowered to the engine's encoding, one native call runs, and
// the output buffers are decoded back into vertex values through the
// graph's identity map. All native buffers are scoped to the operation and
// released on every path.
//
// Missing-vertex policy
//
// Operations that can meaningfully degrade do so silently: AreConnected
// reports false and Subcomponent returns an empty set when a value was
// never inserted, and selector expansion skips unmapped values. Operations
// that construct a single required path fail loudly: ShortestPath and
// PathsFrom return ErrInvalidVertex. The split is deliberate and mirrors
// the per-operation contracts; callers must not rely on one uniform rule.
//
// Unreachability is not an error: an unreachable pair decodes to
// Distance{Reachable: false} and an unreachable endpoint to an empty path.
package query
