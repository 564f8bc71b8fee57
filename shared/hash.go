package shared

import (
	"reflect"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
)

// HashFn is a function that returns the hash of k. Equal keys (per EqFn)
// must always produce equal hashes; see spec §7's user-hash contract.
type HashFn[K any] func(k K) uint64

// EqFn reports whether a and b denote the same key. Defaults to Go's
// built-in == for the comparable constraint when not supplied explicitly.
type EqFn[K any] func(a, b K) bool

// DefaultEqual returns the built-in == comparison for K.
func DefaultEqual[K comparable]() EqFn[K] {
	return func(a, b K) bool { return a == b }
}

// GetHasher returns a hasher for K. Fixed-width integer and float kinds get
// a cheap MurmurHash3-style finalizer mix; strings get xxhash; everything
// else (structs, arrays, bools, pointers, interfaces, ...) falls back to a
// seeded generic hasher over the comparable representation, so no key type
// is ever rejected outright.
func GetHasher[K comparable]() HashFn[K] {
	var key K
	kind := reflect.TypeOf(&key).Elem().Kind()

	switch kind {
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		switch unsafe.Sizeof(key) {
		case 2:
			return *(*HashFn[K])(unsafe.Pointer(&hashWord))
		case 4:
			return *(*HashFn[K])(unsafe.Pointer(&hashDword))
		case 8:
			return *(*HashFn[K])(unsafe.Pointer(&hashQword))
		}
	case reflect.Int8, reflect.Uint8:
		return *(*HashFn[K])(unsafe.Pointer(&hashByte))
	case reflect.Int16, reflect.Uint16:
		return *(*HashFn[K])(unsafe.Pointer(&hashWord))
	case reflect.Int32, reflect.Uint32:
		return *(*HashFn[K])(unsafe.Pointer(&hashDword))
	case reflect.Int64, reflect.Uint64:
		return *(*HashFn[K])(unsafe.Pointer(&hashQword))
	case reflect.Float32:
		return *(*HashFn[K])(unsafe.Pointer(&hashFloat32))
	case reflect.Float64:
		return *(*HashFn[K])(unsafe.Pointer(&hashFloat64))
	case reflect.String:
		return *(*HashFn[K])(unsafe.Pointer(&hashString))
	}

	// generic fallback: any comparable type, via a seeded hash over its
	// in-memory representation.
	hasher := maphash.NewHasher[K]()
	return hasher.Hash
}

var hashByte = func(in uint8) uint64 {
	key := uint32(in)
	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return uint64(key)
}

var hashWord = func(in uint16) uint64 {
	key := uint32(in)
	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return uint64(key)
}

var hashDword = func(key uint32) uint64 {
	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return uint64(key)
}

var hashFloat32 = func(in float32) uint64 {
	p := unsafe.Pointer(&in)
	key := *(*uint32)(p)
	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return uint64(key)
}

// hashQword implements MurmurHash3's 64-bit finalizer.
var hashQword = func(key uint64) uint64 {
	key ^= key >> 33
	key *= 0xff51afd7ed558ccd
	key ^= key >> 33
	key *= 0xc4ceb9fe1a85ec53
	key ^= key >> 33
	return key
}

var hashFloat64 = func(in float64) uint64 {
	p := unsafe.Pointer(&in)
	key := *(*uint64)(p)
	return hashQword(key)
}

var hashString = func(s string) uint64 {
	return xxhash.Sum64String(s)
}
