package rhmap

import (
	"math"

	"github.com/hashkit/rhmap/internal/primes"
)

// grow is invoked by Insert when capacity runs out (spec §4.4 step 3 and
// §4.6's minimum capacity growth law): C' >= max(2C, ceil((N+1)/f)),
// rounded up to the next prime.
func (t *Table[K, V]) grow() {
	c := len(t.hashes)
	minNeeded := int(math.Ceil(float64(t.length+1) / t.maxLoad))
	t.resize(primes.NextPrime(max(c*2, minNeeded)))
}

// resize reallocates the slot arrays at newCap and reinserts every
// occupied entry via the same displacement cascade Insert uses. Reinsertion
// never triggers a further grow because newCap is large enough by
// construction (spec §4.6).
func (t *Table[K, V]) resize(newCap int) {
	oldHashes := t.hashes
	oldEntries := t.entries

	t.hashes = make([]uint64, newCap)
	t.entries = make([]entry[K, V], newCap)

	for i, h := range oldHashes {
		if h == 0 {
			continue
		}
		t.cascade(t.ideal(h), h, oldEntries[i].key, oldEntries[i].value)
	}
}

// Reserve grows the table, if necessary, so it can hold at least n entries
// without triggering another rehash. It never shrinks the table.
func (t *Table[K, V]) Reserve(n int) {
	if n <= 0 {
		return
	}
	needed := primes.NextPrime(int(math.Ceil(float64(n) / t.maxLoad)))
	if needed > len(t.hashes) {
		t.resize(needed)
	}
}

// Rehash grows or shrinks the table to the next prime bucket count
// >= nBuckets, but never below what the current Len() requires at the
// current max load factor (spec §4.6). A nBuckets of 0 rehashes down to
// the smallest capacity the live entries permit.
func (t *Table[K, V]) Rehash(nBuckets int) {
	minNeeded := primes.NextPrime(int(math.Ceil(float64(t.length) / t.maxLoad)))
	target := primes.NextPrime(max(nBuckets, 0))
	if target < minNeeded {
		target = minNeeded
	}
	if target != len(t.hashes) {
		t.resize(target)
	}
}
