package rhmap

// removeAt empties slot idx and backward-shifts the following probe chain
// so the Robin Hood ordering invariant and the no-gaps invariant (spec §3)
// keep holding. idx must currently be occupied.
func (t *Table[K, V]) removeAt(idx int) {
	c := len(t.hashes)
	cur := idx
	next := (idx + 1) % c

	for t.hashes[next] != 0 && t.displacement(next, t.hashes[next]) > 0 {
		t.hashes[cur] = t.hashes[next]
		t.entries[cur] = t.entries[next]
		cur = next
		next = (next + 1) % c
	}

	t.hashes[cur] = 0
	t.entries[cur] = entry[K, V]{}
	t.length--
}

// firstLiveFrom returns the first occupied slot index >= from, or Cap()
// if there is none (no wraparound, matching the "first still-live slot
// >= the erased range" contract of spec §4.5).
func (t *Table[K, V]) firstLiveFrom(from int) int {
	for i := from; i < len(t.hashes); i++ {
		if t.hashes[i] != 0 {
			return i
		}
	}
	return len(t.hashes)
}

// Remove deletes key if present, returning its value and true; returns
// the zero value and false if key was absent (a no-op).
func (t *Table[K, V]) Remove(key K) (V, bool) {
	var zero V
	if len(t.hashes) == 0 {
		return zero, false
	}

	idx, status := t.find(key, normalize(t.hasher(key)))
	if status != statusFound {
		return zero, false
	}

	val := t.entries[idx].value
	t.removeAt(idx)
	return val, true
}

// RemoveAt deletes whatever key occupies slot, panicking if slot is out of
// range or already empty. It returns the first live slot index >= slot
// after the backward shift, for iterator continuation (spec §4.5/§6).
func (t *Table[K, V]) RemoveAt(slot int) (next int) {
	if slot < 0 || slot >= len(t.hashes) || t.hashes[slot] == 0 {
		panic("rhmap: RemoveAt of an out-of-range or empty slot")
	}
	t.removeAt(slot)
	return t.firstLiveFrom(slot)
}

// RemoveRange deletes every key occupying the contiguous, wrap-aware slot
// range [first, last) and returns the first live slot index >= first
// afterward (spec §4.5). A chain that starts before first but runs into the
// range, or one that starts inside the range and runs past it, is shifted
// by removeAt exactly as a lone Remove would shift it; a slot that empties
// out mid-walk without anything shifted into it may simply mean its
// original occupant already got folded into first by an earlier step, not
// that the range is exhausted, so the walk cannot stop at the first empty
// slot. It instead counts how many of the n slots started out occupied and
// keeps removing from first, skipping already-empty slots for free, until
// that many entries are gone.
func (t *Table[K, V]) RemoveRange(first, last int) (next int) {
	c := len(t.hashes)
	if c == 0 || first == last {
		return first
	}

	n := last - first
	if n < 0 {
		n += c
	}

	target := 0
	for i, p := 0, first; i < n; i, p = i+1, (p+1)%c {
		if t.hashes[p] != 0 {
			target++
		}
	}

	pos := first
	for removed := 0; removed < target; {
		if t.hashes[pos] == 0 {
			pos = (pos + 1) % c
			continue
		}
		t.removeAt(pos)
		removed++
	}

	return t.firstLiveFrom(first)
}
