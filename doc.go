// Package rhmap implements an open-addressed hash table with Robin Hood
// probing: an associative map from keys to values with unique keys,
// average O(1) lookup/insert/delete, and a bounded worst-case probe length
// obtained by minimizing the variance of per-slot displacement.
//
// On a collision, the entry with the smaller displacement from its ideal
// bucket yields its slot to the entry with the larger displacement — "takes
// from the rich, gives to the poor" — which keeps the probe-length
// distribution tight even at high load factors (default 0.85, up to 1.0
// supported).
//
// Table is the canonical engine: a split ("fat") layout with a parallel
// hash array that lets unsuccessful lookups reject on a single uint64
// comparison before ever touching a key. Package interleaved provides an
// alternate, equally complete engine using a single interleaved ("thin")
// array with a cached per-slot displacement, for callers who have measured
// better locality from keeping hash, key, and value together.
//
// The table is not safe for concurrent use; it is a single-owner value
// with no internal synchronization, matching a plain Go map.
package rhmap
