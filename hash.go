package rhmap

import "github.com/hashkit/rhmap/shared"

// HashFn is a function that returns the hash of k. Two keys considered
// equal by the table's EqFn must always hash equally; violating this is
// the caller's responsibility and leads to unfindable or duplicate
// entries (spec §7's user-hash contract), never to a crash.
type HashFn[K any] func(k K) uint64

// EqFn reports whether a and b denote the same key.
type EqFn[K any] func(a, b K) bool

// defaultHasher returns the built-in hasher for K's kind: a cheap integer
// mix for fixed-width numeric kinds, xxhash for strings, and a seeded
// generic hash over the comparable representation for everything else.
func defaultHasher[K comparable]() HashFn[K] {
	return HashFn[K](shared.GetHasher[K]())
}

func defaultEqual[K comparable]() EqFn[K] {
	return EqFn[K](shared.DefaultEqual[K]())
}

// normalize maps a raw hash to the reserved nonzero range, so 0 can serve
// as the empty-slot sentinel (spec §3). Hashes that happen to land on 0
// are folded into the same bucket as hashes equal to 1; this is an
// accepted, documented lossy trade (spec §9).
func normalize(h uint64) uint64 {
	if h == 0 {
		return 1
	}
	return h
}
