package rhmap

// cascade performs the Robin Hood displacement loop (spec §4.4 step 5),
// starting at idx with (h, key, val) as the carried triple. It never
// searches for an existing key — the caller must already have established
// the key is absent — and it never invokes the user hasher or equality
// function, only raw moves, matching spec §9's non-reentrancy requirement.
//
// The new entry always settles at the original idx: either idx is empty
// and cascade writes there directly, or idx is occupied by a resident with
// a strictly smaller displacement, in which case the new entry takes idx
// and the resident becomes the carried triple that keeps moving forward.
func (t *Table[K, V]) cascade(idx int, h uint64, key K, val V) {
	c := len(t.hashes)
	carriedH := h
	carried := entry[K, V]{key: key, value: val}

	for {
		stored := t.hashes[idx]
		if stored == 0 {
			t.hashes[idx] = carriedH
			t.entries[idx] = carried
			return
		}

		if debugEnabled && stored == carriedH && t.equal(t.entries[idx].key, carried.key) {
			panic("rhmap: internal invariant violated: key reappeared during displacement cascade")
		}

		if t.displacement(idx, stored) < t.displacement(idx, carriedH) {
			t.hashes[idx], carriedH = carriedH, stored
			t.entries[idx], carried = carried, t.entries[idx]
		}

		idx = (idx + 1) % c
	}
}

// Insert maps key to val, inserting if key is absent or overwriting if
// present. It returns the slot holding key and whether this is a newly
// inserted key (spec §4.4). The returned slot is invalidated by any
// subsequent mutating call.
func (t *Table[K, V]) Insert(key K, val V) (slot int, inserted bool) {
	h := normalize(t.hasher(key))

	if len(t.hashes) == 0 {
		t.grow()
	}

	idx, status := t.find(key, h)
	if status == statusFound {
		t.entries[idx].value = val
		return idx, false
	}

	if float64(t.length+1) > t.maxLoad*float64(len(t.hashes)) {
		t.grow()
		idx, _ = t.find(key, h)
	}

	t.cascade(idx, h, key, val)
	t.length++
	return idx, true
}
