// Package core: the bidirectional value↔id identity map.
//
// The engine addresses vertices by dense position, so ids must stay
// contiguous in [0, n) across every mutation. values[id] is the reverse map;
// removal compacts by shifting the tail down one slot and rewriting the
// forward entries of every shifted value.
package core

// idMap maintains the mutually-inverse value→id and id→value mappings.
// It is pure bookkeeping: no native call ever happens here.
type idMap[V comparable] struct {
	ids    map[V]int64
	values []V
}

func newIDMap[V comparable]() *idMap[V] {
	return &idMap[V]{ids: make(map[V]int64)}
}

// insert assigns the smallest unused id (the next dense position) to v.
// Returns ErrDuplicateVertex if v is already mapped.
// Complexity: O(1) amortized.
func (m *idMap[V]) insert(v V) (int64, error) {
	if _, exists := m.ids[v]; exists {
		return 0, ErrDuplicateVertex
	}
	id := int64(len(m.values))
	m.ids[v] = id
	m.values = append(m.values, v)

	return id, nil
}

// remove unmaps v and decrements every id greater than v's by one,
// preserving density. Returns the id v held, or ErrUnknownVertex.
// Complexity: O(n - id).
func (m *idMap[V]) remove(v V) (int64, error) {
	id, exists := m.ids[v]
	if !exists {
		return 0, ErrUnknownVertex
	}
	delete(m.ids, v)
	copy(m.values[id:], m.values[id+1:])
	m.values = m.values[:len(m.values)-1]
	for i := id; i < int64(len(m.values)); i++ {
		m.ids[m.values[i]] = i
	}

	return id, nil
}

// lookup resolves a value to its id. Pure lookup, O(1).
func (m *idMap[V]) lookup(v V) (int64, bool) {
	id, ok := m.ids[v]

	return id, ok
}

// resolve resolves an id back to its owning value. Pure lookup, O(1).
func (m *idMap[V]) resolve(id int64) (V, bool) {
	if id < 0 || id >= int64(len(m.values)) {
		var zero V
		return zero, false
	}

	return m.values[id], true
}

// count reports the number of live mappings.
func (m *idMap[V]) count() int { return len(m.values) }

// all returns the values in dense id order, as a copy.
func (m *idMap[V]) all() []V {
	out := make([]V, len(m.values))
	copy(out, m.values)

	return out
}
