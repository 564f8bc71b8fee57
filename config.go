package rhmap

import (
	"github.com/hashkit/rhmap/interleaved"
)

// Engine selects which concrete Robin Hood layout a Config builds.
type Engine int

const (
	// Split is the canonical engine: parallel hash/entry arrays, prime
	// capacities, recomputed displacement. Default.
	Split Engine = iota
	// Interleaved is the alternate engine: one interleaved slot array,
	// power-of-two capacities, cached displacement.
	Interleaved
)

// Config configures the factory function NewMap. Every field is optional;
// zero values pick engine defaults.
type Config[K comparable, V any] struct {
	Engine Engine
	// Size pre-sizes the table, equivalent to Reserve(Size). Zero means
	// start empty.
	Size int
	// MaxLoadFactor overrides the default 0.85 load factor. Zero means
	// use the default.
	MaxLoadFactor float64
	// Hasher overrides the built-in hasher. Nil means use the default for K.
	Hasher HashFn[K]
}

// MapOps is a struct of bound methods, letting callers hold a uniform
// handle to either engine without a type switch. It mirrors spec §6's
// "interface contract" framing: the factory and this struct are
// deliberately thin glue around the two real engines, never algorithms in
// their own right.
type MapOps[K comparable, V any] struct {
	Get      func(key K) (V, bool)
	Insert   func(key K, val V) (int, bool)
	Remove   func(key K) (V, bool)
	Contains func(key K) bool
	Len      func() int
	Clear    func()
	Each     func(fn func(key K, val V) bool)
	Reserve  func(n int)
}

// NewMap builds a MapOps bound to a freshly constructed engine selected by
// cfg.Engine.
func NewMap[K comparable, V any](cfg Config[K, V]) *MapOps[K, V] {
	ops := &MapOps[K, V]{}

	switch cfg.Engine {
	case Interleaved:
		var opts []interleaved.Option[K, V]
		if cfg.Hasher != nil {
			opts = append(opts, interleaved.WithHasher[K, V](interleaved.HashFn[K](cfg.Hasher)))
		}
		if cfg.MaxLoadFactor > 0 {
			opts = append(opts, interleaved.WithMaxLoadFactor[K, V](cfg.MaxLoadFactor))
		}
		m := interleaved.New[K, V](opts...)
		if cfg.Size > 0 {
			m.Reserve(cfg.Size)
		}
		ops.Get = m.Get
		ops.Insert = m.Insert
		ops.Remove = m.Remove
		ops.Contains = m.Contains
		ops.Len = m.Len
		ops.Clear = m.Clear
		ops.Each = m.Each
		ops.Reserve = m.Reserve
	default:
		var opts []Option[K, V]
		if cfg.Hasher != nil {
			opts = append(opts, WithHasher[K, V](cfg.Hasher))
		}
		if cfg.MaxLoadFactor > 0 {
			opts = append(opts, WithMaxLoadFactor[K, V](cfg.MaxLoadFactor))
		}
		m := New[K, V](opts...)
		if cfg.Size > 0 {
			m.Reserve(cfg.Size)
		}
		ops.Get = m.Get
		ops.Insert = m.Insert
		ops.Remove = m.Remove
		ops.Contains = m.Contains
		ops.Len = m.Len
		ops.Clear = m.Clear
		ops.Each = m.Each
		ops.Reserve = m.Reserve
	}

	return ops
}
