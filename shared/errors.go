package shared

import "errors"

var (
	// ErrInvalidLoadFactor is returned when a caller asks for a max load
	// factor outside of [MinLoadFactor, MaxLoadFactorBound].
	ErrInvalidLoadFactor = errors.New("rhmap: max load factor out of range")

	// ErrKeyAbsent is panicked by MustGet, the accessor that surfaces
	// absence as an error instead of a boolean.
	ErrKeyAbsent = errors.New("rhmap: key not present")
)
