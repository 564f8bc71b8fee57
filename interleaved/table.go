package interleaved

import (
	"fmt"
	"math"

	"github.com/hashkit/rhmap/shared"
)

// HashFn and EqFn mirror the root package's types so callers never need to
// import both packages just to pass a hasher around.
type HashFn[K any] func(k K) uint64
type EqFn[K any] func(a, b K) bool

// ErrInvalidLoadFactor and ErrKeyAbsent mirror the root package's
// sentinels; both engines share the same underlying errors so callers can
// errors.Is against either package's exported var interchangeably.
var (
	ErrInvalidLoadFactor = shared.ErrInvalidLoadFactor
	ErrKeyAbsent         = shared.ErrKeyAbsent
)

type findStatus int

const (
	statusEmpty findStatus = iota
	statusFound
	statusDisplaced
)

type slot[K comparable, V any] struct {
	hash  uint64
	disp  uint32
	key   K
	value V
}

// Table is the interleaved/"thin" Robin Hood engine. Zero value is not
// usable; construct with New. Not safe for concurrent use.
type Table[K comparable, V any] struct {
	slots    []slot[K, V]
	capacity uint64 // always a power of two, or 0 before first allocation
	hasher   HashFn[K]
	equal    EqFn[K]
	length   int
	maxLoad  float64
}

// Option configures a Table at construction.
type Option[K comparable, V any] func(*Table[K, V])

func WithCapacity[K comparable, V any](n int) Option[K, V] {
	return func(t *Table[K, V]) { t.Reserve(n) }
}

func WithHasher[K comparable, V any](h HashFn[K]) Option[K, V] {
	return func(t *Table[K, V]) { t.hasher = h }
}

func WithEqual[K comparable, V any](eq EqFn[K]) Option[K, V] {
	return func(t *Table[K, V]) { t.equal = eq }
}

func WithMaxLoadFactor[K comparable, V any](f float64) Option[K, V] {
	return func(t *Table[K, V]) {
		if f < shared.MinLoadFactor {
			f = shared.MinLoadFactor
		}
		if f > shared.MaxLoadFactorBound {
			f = shared.MaxLoadFactorBound
		}
		t.maxLoad = f
	}
}

// New constructs an empty table: capacity 0, max load factor 0.85, and a
// built-in hasher/equality pair for K.
func New[K comparable, V any](opts ...Option[K, V]) *Table[K, V] {
	t := &Table[K, V]{
		hasher:  HashFn[K](shared.GetHasher[K]()),
		equal:   EqFn[K](shared.DefaultEqual[K]()),
		maxLoad: shared.DefaultMaxLoadFactor,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func normalize(h uint64) uint64 {
	if h == 0 {
		return 1
	}
	return h
}

func (t *Table[K, V]) mask() uint64 { return t.capacity - 1 }

func (t *Table[K, V]) ideal(h uint64) uint64 { return h & t.mask() }

// displacementAt returns the displacement hash h would have if it were
// stored at idx, computed (not looked up) so it can be evaluated for a
// hash that is not yet placed anywhere.
func (t *Table[K, V]) displacementAt(idx, h uint64) uint64 {
	return (idx - t.ideal(h)) & t.mask()
}

func (t *Table[K, V]) find(key K, h uint64) (idx uint64, status findStatus) {
	if t.capacity == 0 {
		return 0, statusEmpty
	}
	idx = t.ideal(h)
	d := uint64(0)
	for {
		s := &t.slots[idx]
		if s.hash == 0 {
			return idx, statusEmpty
		}
		if s.hash == h && t.equal(s.key, key) {
			return idx, statusFound
		}
		if uint64(s.disp) < d {
			return idx, statusDisplaced
		}
		idx = (idx + 1) & t.mask()
		d++
	}
}

// cascade runs the Robin Hood displacement loop starting at idx, never
// searching for an existing key and never calling the user hasher or
// equality function.
func (t *Table[K, V]) cascade(idx, h uint64, key K, val V) {
	carriedH := h
	carriedDisp := t.displacementAt(idx, h)
	carriedKey, carriedVal := key, val

	for {
		s := &t.slots[idx]
		if s.hash == 0 {
			s.hash = carriedH
			s.disp = uint32(carriedDisp)
			s.key = carriedKey
			s.value = carriedVal
			return
		}
		if uint64(s.disp) < carriedDisp {
			s.hash, carriedH = carriedH, s.hash
			s.disp, carriedDisp = uint32(carriedDisp), uint64(s.disp)
			s.key, carriedKey = carriedKey, s.key
			s.value, carriedVal = carriedVal, s.value
		}
		idx = (idx + 1) & t.mask()
		carriedDisp++
	}
}

// Len returns the number of occupied slots.
func (t *Table[K, V]) Len() int { return t.length }

// IsEmpty reports whether Len() == 0.
func (t *Table[K, V]) IsEmpty() bool { return t.length == 0 }

// Cap returns the current bucket count.
func (t *Table[K, V]) Cap() int { return int(t.capacity) }

// LoadFactor returns Len()/Cap(), or 0 when Cap() == 0.
func (t *Table[K, V]) LoadFactor() float64 {
	if t.capacity == 0 {
		return 0
	}
	return float64(t.length) / float64(t.capacity)
}

func (t *Table[K, V]) MaxLoadFactor() float64 { return t.maxLoad }

func (t *Table[K, V]) SetMaxLoadFactor(f float64) error {
	if f < shared.MinLoadFactor || f > shared.MaxLoadFactorBound {
		return fmt.Errorf("%w: %v", ErrInvalidLoadFactor, f)
	}
	t.maxLoad = f
	return nil
}

// Get returns the value stored for key, or the zero value and false.
func (t *Table[K, V]) Get(key K) (V, bool) {
	idx, status := t.find(key, normalize(t.hasher(key)))
	if status != statusFound {
		var zero V
		return zero, false
	}
	return t.slots[idx].value, true
}

// GetPtr returns a pointer to the value for key, or nil. Invalidated by
// the next mutating call.
func (t *Table[K, V]) GetPtr(key K) *V {
	idx, status := t.find(key, normalize(t.hasher(key)))
	if status != statusFound {
		return nil
	}
	return &t.slots[idx].value
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	_, status := t.find(key, normalize(t.hasher(key)))
	return status == statusFound
}

// MustGet returns the value for key, panicking with ErrKeyAbsent if absent.
func (t *Table[K, V]) MustGet(key K) V {
	v, ok := t.Get(key)
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrKeyAbsent, key))
	}
	return v
}

// Insert maps key to val, returning the slot and whether key was newly
// inserted.
func (t *Table[K, V]) Insert(key K, val V) (slot int, inserted bool) {
	h := normalize(t.hasher(key))

	if t.capacity == 0 {
		t.grow()
	}

	idx, status := t.find(key, h)
	if status == statusFound {
		t.slots[idx].value = val
		return int(idx), false
	}

	if float64(t.length+1) > t.maxLoad*float64(t.capacity) {
		t.grow()
		idx, _ = t.find(key, h)
	}

	t.cascade(idx, h, key, val)
	t.length++
	return int(idx), true
}

func (t *Table[K, V]) removeAt(idx uint64) {
	cur := idx
	next := (idx + 1) & t.mask()
	for t.slots[next].hash != 0 && t.slots[next].disp > 0 {
		t.slots[cur] = t.slots[next]
		t.slots[cur].disp--
		cur = next
		next = (next + 1) & t.mask()
	}
	t.slots[cur] = slot[K, V]{}
	t.length--
}

func (t *Table[K, V]) firstLiveFrom(from uint64) int {
	for i := from; i < t.capacity; i++ {
		if t.slots[i].hash != 0 {
			return int(i)
		}
	}
	return int(t.capacity)
}

// Remove deletes key if present, returning its value and true, or the
// zero value and false if it was absent.
func (t *Table[K, V]) Remove(key K) (V, bool) {
	var zero V
	if t.capacity == 0 {
		return zero, false
	}
	idx, status := t.find(key, normalize(t.hasher(key)))
	if status != statusFound {
		return zero, false
	}
	val := t.slots[idx].value
	t.removeAt(idx)
	return val, true
}

// RemoveAt deletes whatever occupies slot, panicking if it is out of range
// or empty, and returns the first live slot index >= slot afterward.
func (t *Table[K, V]) RemoveAt(slot int) (next int) {
	if slot < 0 || uint64(slot) >= t.capacity || t.slots[slot].hash == 0 {
		panic("interleaved: RemoveAt of an out-of-range or empty slot")
	}
	t.removeAt(uint64(slot))
	return t.firstLiveFrom(uint64(slot))
}

// RemoveRange deletes every key in the contiguous, wrap-aware slot range
// [first, last). A slot that empties out mid-walk doesn't mean the range is
// exhausted — its original occupant may already have been folded into
// first by an earlier step — so the walk counts how many of the n slots
// started out occupied and keeps removing from first, skipping already-
// empty slots for free, until that many entries are gone.
func (t *Table[K, V]) RemoveRange(first, last int) (next int) {
	if t.capacity == 0 || first == last {
		return first
	}
	n := last - first
	if n < 0 {
		n += int(t.capacity)
	}

	target := 0
	for i, p := 0, uint64(first); i < n; i, p = i+1, (p+1)&t.mask() {
		if t.slots[p].hash != 0 {
			target++
		}
	}

	pos := uint64(first)
	for removed := 0; removed < target; {
		if t.slots[pos].hash == 0 {
			pos = (pos + 1) & t.mask()
			continue
		}
		t.removeAt(pos)
		removed++
	}

	return t.firstLiveFrom(uint64(first))
}

// Clear removes every key-value pair but keeps the current capacity.
func (t *Table[K, V]) Clear() {
	for i := range t.slots {
		t.slots[i] = slot[K, V]{}
	}
	t.length = 0
}

// Clone returns a deep, independent copy of t.
func (t *Table[K, V]) Clone() *Table[K, V] {
	c := &Table[K, V]{
		slots:    make([]slot[K, V], len(t.slots)),
		capacity: t.capacity,
		hasher:   t.hasher,
		equal:    t.equal,
		length:   t.length,
		maxLoad:  t.maxLoad,
	}
	copy(c.slots, t.slots)
	return c
}

// Each calls fn for every occupied slot in unspecified order, stopping
// early if fn returns true.
func (t *Table[K, V]) Each(fn func(key K, value V) bool) {
	for i := range t.slots {
		if t.slots[i].hash == 0 {
			continue
		}
		if fn(t.slots[i].key, t.slots[i].value) {
			return
		}
	}
}

func (t *Table[K, V]) grow() {
	target := shared.NextPowerOf2(uint64(math.Ceil(float64(t.length+1) / t.maxLoad)))
	if target < t.capacity*2 {
		target = t.capacity * 2
	}
	if target == 0 {
		target = shared.DefaultSize
	}
	t.resize(target)
}

func (t *Table[K, V]) resize(newCap uint64) {
	oldSlots := t.slots
	t.slots = make([]slot[K, V], newCap)
	t.capacity = newCap

	for _, s := range oldSlots {
		if s.hash == 0 {
			continue
		}
		t.cascade(t.ideal(s.hash), s.hash, s.key, s.value)
	}
}

// Reserve grows the table, if necessary, to hold at least n entries
// without triggering another rehash.
func (t *Table[K, V]) Reserve(n int) {
	if n <= 0 {
		return
	}
	needed := shared.NextPowerOf2(uint64(math.Ceil(float64(n) / t.maxLoad)))
	if needed > t.capacity {
		t.resize(needed)
	}
}

// Rehash grows or shrinks the table to the next power-of-two bucket count
// >= nBuckets, never below what Len() requires at the current max load
// factor.
func (t *Table[K, V]) Rehash(nBuckets int) {
	minNeeded := shared.NextPowerOf2(uint64(math.Ceil(float64(t.length) / t.maxLoad)))
	target := shared.NextPowerOf2(uint64(max(nBuckets, 0)))
	if target < minNeeded {
		target = minNeeded
	}
	if target != t.capacity {
		t.resize(target)
	}
}
