package robinmap

import "hash/maphash"

// HashFunc produces the raw 64-bit hash of a key. A custom HashFunc supplied
// via WithHashFunc fully replaces the default one; it is never combined
// with it.
type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc builds the default hasher on top of hash/maphash,
// keyed by the given seed.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// mix folds the high bits of a raw hash into the low bits, so tables indexed
// by `hash & (capacity-1)` see entropy from the whole word.
func mix(h uint64) uint64 {
	return h ^ (h >> 16)
}
