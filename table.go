package rhmap

import (
	"github.com/hashkit/rhmap/shared"
)

// entry holds one occupied slot's key/value pair. The hash for a slot
// lives in the parallel Table.hashes slice, not here, so an unsuccessful
// lookup never has to touch K or V.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Table is the canonical Robin Hood hash table: a split ("fat") layout
// with a parallel array of normalized hashes. A slot is empty iff its
// stored hash is 0; see spec §3.
//
// Table is not safe for concurrent use. Any Insert, Remove, RemoveAt,
// RemoveRange, Reserve, Rehash, or Clear call invalidates every pointer
// previously returned by GetPtr and every slot index previously returned
// by Insert/RemoveAt/RemoveRange.
type Table[K comparable, V any] struct {
	hashes  []uint64
	entries []entry[K, V]
	hasher  HashFn[K]
	equal   EqFn[K]
	length  int
	maxLoad float64
}

// New constructs an empty table with default settings: capacity 0 (no
// allocation until the first Insert), max load factor 0.85, and a built-in
// hasher/equality pair appropriate for K.
func New[K comparable, V any](opts ...Option[K, V]) *Table[K, V] {
	t := &Table[K, V]{
		hasher:  defaultHasher[K](),
		equal:   defaultEqual[K](),
		maxLoad: shared.DefaultMaxLoadFactor,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Len returns the number of occupied slots.
func (t *Table[K, V]) Len() int { return t.length }

// IsEmpty reports whether Len() == 0.
func (t *Table[K, V]) IsEmpty() bool { return t.length == 0 }

// Cap returns the current bucket count (0 until the first allocation).
func (t *Table[K, V]) Cap() int { return len(t.hashes) }

// LoadFactor returns Len()/Cap(), or 0 when Cap() == 0.
func (t *Table[K, V]) LoadFactor() float64 {
	if len(t.hashes) == 0 {
		return 0
	}
	return float64(t.length) / float64(len(t.hashes))
}

// MaxLoadFactor returns the threshold that triggers growth on Insert.
func (t *Table[K, V]) MaxLoadFactor() float64 { return t.maxLoad }

// SetMaxLoadFactor changes the growth threshold. f must be in
// [0.01, 1.0]; otherwise ErrInvalidLoadFactor is returned and the table is
// left unchanged. Lowering f below the current LoadFactor() does not
// force an immediate rehash — the new threshold is only checked on the
// next Insert (spec §4.6).
func (t *Table[K, V]) SetMaxLoadFactor(f float64) error {
	if f < shared.MinLoadFactor || f > shared.MaxLoadFactorBound {
		return errInvalidLoadFactor(f)
	}
	t.maxLoad = f
	return nil
}

// Clear removes every key-value pair but keeps the current capacity.
func (t *Table[K, V]) Clear() {
	for i := range t.hashes {
		t.hashes[i] = 0
		t.entries[i] = entry[K, V]{}
	}
	t.length = 0
}

// Clone returns a deep, independent copy of t.
func (t *Table[K, V]) Clone() *Table[K, V] {
	c := &Table[K, V]{
		hashes:  make([]uint64, len(t.hashes)),
		entries: make([]entry[K, V], len(t.entries)),
		hasher:  t.hasher,
		equal:   t.equal,
		length:  t.length,
		maxLoad: t.maxLoad,
	}
	copy(c.hashes, t.hashes)
	copy(c.entries, t.entries)
	return c
}
