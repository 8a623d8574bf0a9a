// Package buffer provides scoped, host-side handles over the engine's flat
// vector, 2-D matrix, and pointer-vector buffer types.
//
// Every constructor allocates native memory; Destroy releases it exactly
// once and a second Destroy is a no-op. The intended call shape is:
//
//	vec, err := buffer.NewVector(0)
//	if err != nil { ... }
//	defer vec.Destroy()
//
// Decoding (Floats, Ints, Values) copies the native contents into host-owned
// memory: the decoded result has no lifetime tie to the buffer and stays
// valid after Destroy. Using a buffer after Destroy returns
// ErrBufferReleased.
//
// Leaving a buffer undestroyed on any exit path, including early error
// returns, is a native-resource leak; native.LiveHandles exists so tests can
// assert this never happens.
package buffer
