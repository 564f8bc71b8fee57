package rhmap

import (
	"fmt"

	"github.com/hashkit/rhmap/shared"
)

// ErrInvalidLoadFactor is returned when SetMaxLoadFactor is given a value
// outside [0.01, 1.0]. The WithMaxLoadFactor option clamps instead.
var ErrInvalidLoadFactor = shared.ErrInvalidLoadFactor

// ErrKeyAbsent is the error MustGet panics with for a missing key.
var ErrKeyAbsent = shared.ErrKeyAbsent

func errInvalidLoadFactor(f float64) error {
	return fmt.Errorf("%w: %v", ErrInvalidLoadFactor, f)
}

func errKeyAbsent[K any](key K) error {
	return fmt.Errorf("%w: %v", ErrKeyAbsent, key)
}
