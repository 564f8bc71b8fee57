// Package interleaved implements the same Robin Hood hash table contract
// as the root rhmap package, but with the "thin" interleaved slot layout
// instead of the canonical split layout: each slot stores its normalized
// hash, its displacement (cached, not recomputed), and its key/value pair
// together in one array. This trades memory (4 extra bytes per slot for
// the cached displacement, plus no separate hash array to scan) for
// better locality once a probe finds an occupied slot.
//
// Capacity grows by doubling to the next power of two rather than to the
// next prime; see the root package's DESIGN.md for why that is safe here
// but not for the canonical engine.
package interleaved
