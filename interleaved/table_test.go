package interleaved_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashkit/rhmap/interleaved"
)

func TestRoundTrip(t *testing.T) {
	m := interleaved.New[string, int]()

	_, inserted := m.Insert("alpha", 1)
	require.True(t, inserted)
	_, inserted = m.Insert("alpha", 10)
	require.False(t, inserted)

	v, ok := m.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestConflictingChainPowerOfTwo(t *testing.T) {
	// Capacity is rounded to a power of two internally; four keys ideal-
	// mapped to the same bucket still form one displaced chain.
	m := interleaved.New[uint64, uint64](
		interleaved.WithHasher[uint64, uint64](func(k uint64) uint64 { return 3 }),
		interleaved.WithMaxLoadFactor[uint64, uint64](1.0),
		interleaved.WithCapacity[uint64, uint64](8),
	)

	keys := []uint64{3, 11, 19, 27}
	for _, k := range keys {
		_, inserted := m.Insert(k, k*100)
		require.True(t, inserted)
	}
	for _, k := range keys {
		v, ok := m.Get(k)
		require.True(t, ok, "key %d", k)
		assert.Equal(t, k*100, v)
	}
}

func TestEraseBackwardShiftCachedDisplacement(t *testing.T) {
	m := interleaved.New[uint64, uint64](
		interleaved.WithHasher[uint64, uint64](func(k uint64) uint64 { return 1 }),
		interleaved.WithMaxLoadFactor[uint64, uint64](1.0),
		interleaved.WithCapacity[uint64, uint64](8),
	)

	keys := []uint64{1, 9, 17, 25}
	for _, k := range keys {
		_, _ = m.Insert(k, k)
	}

	v, ok := m.Remove(9)
	require.True(t, ok)
	assert.Equal(t, uint64(9), v)

	for _, k := range []uint64{1, 17, 25} {
		_, ok := m.Get(k)
		require.True(t, ok, "key %d missing after removal", k)
	}
	_, ok = m.Get(9)
	require.False(t, ok)
}

func TestRemoveRangeAnchoredAtFirst(t *testing.T) {
	m := interleaved.New[uint64, uint64](
		interleaved.WithHasher[uint64, uint64](func(k uint64) uint64 { return 1 }),
		interleaved.WithMaxLoadFactor[uint64, uint64](1.0),
		interleaved.WithCapacity[uint64, uint64](8),
	)

	keys := []uint64{1, 9, 17, 25}
	for _, k := range keys {
		_, _ = m.Insert(k, k)
	}

	// Bucket 1 holds 1, then 9, 17, 25 displaced forward. Removing slots
	// [1, 3) must delete exactly the two keys originally occupying those
	// two slots (1 and 9), leaving 17 and 25 reachable.
	m.RemoveRange(1, 3)

	_, ok := m.Get(1)
	require.False(t, ok)
	_, ok = m.Get(9)
	require.False(t, ok)
	_, ok = m.Get(17)
	require.True(t, ok)
	_, ok = m.Get(25)
	require.True(t, ok)
}

func TestRemoveRangeAcrossChainBoundary(t *testing.T) {
	// Key A hashes to bucket 1 (displacement 0), key B hashes to bucket 2
	// (displacement 0) — two separate one-entry chains, not one chain
	// overflowing into the next bucket. RemoveRange(1, 3) must delete
	// both, even though erasing A leaves nothing to backward-shift into
	// its slot (B's displacement is 0, so it never moves).
	hashes := map[uint64]uint64{100: 1, 200: 2}
	m := interleaved.New[uint64, string](
		interleaved.WithHasher[uint64, string](func(k uint64) uint64 { return hashes[k] }),
		interleaved.WithMaxLoadFactor[uint64, string](1.0),
		interleaved.WithCapacity[uint64, string](8),
	)

	_, _ = m.Insert(100, "a")
	_, _ = m.Insert(200, "b")

	m.RemoveRange(1, 3)

	_, ok := m.Get(100)
	require.False(t, ok, "key 100 should have been removed")
	_, ok = m.Get(200)
	require.False(t, ok, "key 200 should have been removed")
	assert.Equal(t, 0, m.Len())
}

func TestCrossCheck(t *testing.T) {
	m := interleaved.New[uint64, uint32]()
	stdm := make(map[uint64]uint32)

	const nops = 20000
	for i := 0; i < nops; i++ {
		key := uint64(rand.Intn(500))
		val := rand.Uint32()

		switch rand.Intn(5) {
		case 0:
			v1, ok1 := m.Get(key)
			v2, ok2 := stdm[key]
			require.Equal(t, ok2, ok1)
			if ok1 {
				require.Equal(t, v2, v1)
			}
		case 1, 2:
			_, wasIn := stdm[key]
			stdm[key] = val
			_, inserted := m.Insert(key, val)
			require.Equal(t, !wasIn, inserted)
		case 3:
			_, wasIn := stdm[key]
			delete(stdm, key)
			_, removed := m.Remove(key)
			require.Equal(t, wasIn, removed)
		case 4:
			m.Rehash(rand.Intn(600))
		}

		require.Equal(t, len(stdm), m.Len())
	}

	seen := make(map[uint64]uint32, len(stdm))
	m.Each(func(k uint64, v uint32) bool {
		seen[k] = v
		return false
	})
	if diff := cmp.Diff(stdm, seen); diff != "" {
		t.Fatalf("map contents diverged from reference (-want +got):\n%s", diff)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := interleaved.New[string, int]()
	m.Insert("a", 1)
	m.Insert("b", 2)

	clone := m.Clone()
	clone.Remove("a")

	_, ok := m.Get("a")
	assert.True(t, ok)
	_, ok = clone.Get("a")
	assert.False(t, ok)
}

func TestSetMaxLoadFactorRejectsOutOfRange(t *testing.T) {
	m := interleaved.New[int, int]()
	err := m.SetMaxLoadFactor(2.0)
	require.ErrorIs(t, err, interleaved.ErrInvalidLoadFactor)
}

func TestMustGetPanicsOnAbsentKey(t *testing.T) {
	m := interleaved.New[string, int]()
	assert.Panics(t, func() {
		m.MustGet("missing")
	})
}
