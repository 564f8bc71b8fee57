package rhmap

// findStatus classifies where find() stopped.
type findStatus int

const (
	// statusEmpty: the probe reached an empty slot; the key is absent and
	// idx is where it would be inserted with no eviction.
	statusEmpty findStatus = iota
	// statusFound: idx holds the key.
	statusFound
	// statusDisplaced: the probe reached an occupied slot whose
	// displacement is strictly smaller than the sought key's displacement
	// would be at idx; the key is absent (Robin Hood early exit, spec §4.3).
	statusDisplaced
)

// ideal returns the bucket a normalized hash maps to in the current table.
// The table must be non-empty.
func (t *Table[K, V]) ideal(h uint64) int {
	return int(h % uint64(len(t.hashes)))
}

// displacement returns the forward wrap-around distance from idx to the
// ideal bucket of the (already-normalized) hash h. h need not be the hash
// stored at idx; callers pass whichever hash they want the displacement
// of, evaluated as if it lived at idx.
func (t *Table[K, V]) displacement(idx int, h uint64) int {
	c := len(t.hashes)
	d := idx - t.ideal(h)
	if d < 0 {
		d += c
	}
	return d
}

// find locates key's slot, or the slot at which the Robin Hood early-exit
// rule first fires. h must already be normalize()d. It never mutates the
// table and never returns an out-of-range index when the table is
// non-empty.
func (t *Table[K, V]) find(key K, h uint64) (idx int, status findStatus) {
	c := len(t.hashes)
	if c == 0 {
		return 0, statusEmpty
	}

	idx = t.ideal(h)
	d := 0
	for {
		stored := t.hashes[idx]
		if stored == 0 {
			return idx, statusEmpty
		}
		if stored == h && t.equal(t.entries[idx].key, key) {
			return idx, statusFound
		}
		if t.displacement(idx, stored) < d {
			return idx, statusDisplaced
		}
		idx = (idx + 1) % c
		d++
	}
}

// Get returns the value stored for key, or the zero value and false if
// key is absent.
func (t *Table[K, V]) Get(key K) (V, bool) {
	idx, status := t.find(key, normalize(t.hasher(key)))
	if status != statusFound {
		var zero V
		return zero, false
	}
	return t.entries[idx].value, true
}

// GetPtr returns a pointer to the value stored for key, or nil if absent.
// The pointer is invalidated by the next mutating call (see Table's
// doc comment).
func (t *Table[K, V]) GetPtr(key K) *V {
	idx, status := t.find(key, normalize(t.hasher(key)))
	if status != statusFound {
		return nil
	}
	return &t.entries[idx].value
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	_, status := t.find(key, normalize(t.hasher(key)))
	return status == statusFound
}

// MustGet returns the value for key, panicking with ErrKeyAbsent if it is
// not present. It is the only panicking accessor in the table (spec §4.3).
func (t *Table[K, V]) MustGet(key K) V {
	v, ok := t.Get(key)
	if !ok {
		panic(errKeyAbsent(key))
	}
	return v
}
