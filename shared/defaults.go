// Package shared collects the types, default hashers, and constants common
// to every hash map engine in this module (the canonical split-layout
// engine in the root package and the interleaved alternate in package
// interleaved), so neither engine needs to import the other.
package shared

const (
	// DefaultMaxLoadFactor is the load factor used by a freshly constructed
	// table when no option overrides it. 0.85 keeps the average Robin Hood
	// probe length low while still packing buckets tightly.
	DefaultMaxLoadFactor = 0.85

	// MinLoadFactor and MaxLoadFactorBound are the accepted range for
	// SetMaxLoadFactor, enforced by both engines.
	MinLoadFactor      = 0.01
	MaxLoadFactorBound = 1.0

	// DefaultSize is the bucket count the interleaved engine's grow falls
	// back to if its computed target is 0. NextPowerOf2 never returns 0, so
	// a first allocation is instead sized from the load factor (2 buckets
	// at the default 0.85); an empty, just-constructed table has zero
	// buckets.
	DefaultSize = 8
)
