package rhmap

import "iter"

// Each calls fn for every occupied slot in unspecified, rehash-unstable
// order, stopping early if fn returns true (spec §6).
func (t *Table[K, V]) Each(fn func(key K, value V) bool) {
	for i, h := range t.hashes {
		if h == 0 {
			continue
		}
		if fn(t.entries[i].key, t.entries[i].value) {
			return
		}
	}
}

// All returns a range-over-func iterator equivalent to Each, for callers
// on Go 1.23+ who prefer "for k, v := range t.All() { ... }" over the
// callback form. Each remains the canonical iteration surface.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.Each(func(key K, value V) bool {
			return !yield(key, value)
		})
	}
}
