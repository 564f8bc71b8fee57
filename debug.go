//go:build rhmap_debug

package rhmap

// debugEnabled gates the InternalInvariant assertion in the displacement
// cascade (spec §7). It costs an equality comparison per cascade step, so
// it is opt-in via the rhmap_debug build tag rather than always-on.
const debugEnabled = true
