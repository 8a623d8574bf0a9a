// Package native: selector-descriptor resolution.
package native

// expandSelector resolves a selector descriptor against g into a concrete
// id sequence. SelList echoes the caller's order and duplicates; the other
// kinds list ids in the engine's own order.
func expandSelector(g *graphObj, sel Selector) ([]int64, Status) {
	switch sel.Kind {
	case SelAll:
		ids := make([]int64, g.vcount)
		for i := range ids {
			ids[i] = int64(i)
		}
		return ids, OK

	case SelNone:
		return nil, OK

	case SelOne:
		if sel.VID < 0 || sel.VID >= g.vcount {
			return nil, StatusBadVertex
		}
		return []int64{sel.VID}, OK

	case SelList:
		raw, st := lookupVector(sel.IDs)
		if st != OK {
			return nil, st
		}
		ids := make([]int64, len(raw.data))
		for i, f := range raw.data {
			id := int64(f)
			if id < 0 || id >= g.vcount {
				return nil, StatusBadVertex
			}
			ids[i] = id
		}
		return ids, OK

	case SelAdj:
		if sel.VID < 0 || sel.VID >= g.vcount {
			return nil, StatusBadVertex
		}
		if sel.Mode != ModeOut && sel.Mode != ModeIn && sel.Mode != ModeAll {
			return nil, StatusBadMode
		}
		return neighborIDs(g, sel.VID, sel.Mode), OK

	default:
		return nil, StatusBadSelector
	}
}

// SelectorSize reports the cardinality of the selector against graph h.
func SelectorSize(h GraphHandle, sel Selector) (int64, Status) {
	g, st := lookupGraph(h)
	if st != OK {
		return 0, st
	}
	ids, st := expandSelector(g, sel)
	if st != OK {
		return 0, st
	}

	return int64(len(ids)), OK
}

// SelectorListInto resizes out and fills it with the selector's concrete
// id sequence.
func SelectorListInto(h GraphHandle, out VectorHandle, sel Selector) Status {
	g, st := lookupGraph(h)
	if st != OK {
		return st
	}
	v, st := lookupVector(out)
	if st != OK {
		return st
	}
	ids, st := expandSelector(g, sel)
	if st != OK {
		return st
	}
	flat := make([]float64, len(ids))
	for i, id := range ids {
		flat[i] = float64(id)
	}
	v.data = flat

	return OK
}
