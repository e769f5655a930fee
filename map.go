package robinmap

import "hash/maphash"

const defaultCapacity = 8

// slot is a single table cell. A zero slot is empty; a filled slot carries
// the entry's mixed hash and its probe distance from the home index, so
// lookups can terminate early and deletions can shift clusters back.
type slot[K comparable, V any] struct {
	filled bool
	dist   int
	hash   uint64
	key    K
	value  V
}

// Map is an open-addressing hash map using Robin Hood hashing with
// backward-shift deletion. Entries live in a single flat array whose length
// is always a power of two; there are no tombstones and no chaining.
// Collisions probe linearly, displacing whichever entry sits closer to its
// home index, which keeps probe lengths short and lets lookups stop as soon
// as they out-travel an occupant.
//
// The map grows itself at a 13/16 load factor. It is not safe for concurrent
// use; callers must serialize access themselves.
//
// The zero value is an empty map using the default hash function.
type Map[K comparable, V any] struct {
	slots  []slot[K, V]
	size   int
	growAt int

	hashFunc HashFunc[K]

	emptyV V
}

type Option[K comparable, V any] func(m *Map[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(m *Map[K, V]) {
		m.hashFunc = f
	}
}

// Returns a new empty map with the default capacity.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	m := &Map[K, V]{}

	for _, opt := range opts {
		opt(m)
	}

	if m.hashFunc == nil {
		m.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	m.alloc(defaultCapacity)

	return m
}

// FromPairs builds a map by inserting every pair in order. Later pairs with
// a duplicate key overwrite earlier ones.
func FromPairs[K comparable, V any](pairs []Pair[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := New[K, V](opts...)
	for _, p := range pairs {
		m.Set(p.First, p.Second)
	}

	return m
}

func (m *Map[K, V]) alloc(capacity int) {
	m.slots = make([]slot[K, V], capacity)
	m.growAt = capacity * 13 / 16
	m.size = 0
}

// Set inserts a key or overwrites its value, growing the table first when
// the load threshold is reached.
func (m *Map[K, V]) Set(key K, value V) {
	if len(m.slots) == 0 || m.size >= m.growAt {
		m.grow()
	}

	m.set(mix(m.hashFunc(key)), key, value)
}

func (m *Map[K, V]) set(hash uint64, key K, value V) {
	var (
		mask = uint64(len(m.slots) - 1)
		dist = 0
		i    = hash & mask
	)

	for range m.slots {
		s := &m.slots[i]

		if !s.filled {
			*s = slot[K, V]{filled: true, dist: dist, hash: hash, key: key, value: value}
			m.size++

			return
		}

		if s.hash == hash && s.key == key {
			// In-place update, not a displacement.
			s.value = value

			return
		}

		if dist > s.dist {
			// The traveler out-traveled the occupant: take the slot and
			// carry the displaced entry forward.
			s.dist, dist = dist, s.dist
			s.hash, hash = hash, s.hash
			s.key, key = key, s.key
			s.value, value = value, s.value
		}

		dist++
		i = (i + 1) & mask
	}

	// Unreachable while growth keeps the load factor below 1.
	panic("robinmap: table full")
}

// Get returns the value stored for a key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if len(m.slots) == 0 {
		return m.emptyV, false
	}

	var (
		hash = mix(m.hashFunc(key))
		mask = uint64(len(m.slots) - 1)
		i    = hash & mask
	)

	for dist := 0; dist < len(m.slots); dist++ {
		s := &m.slots[i]

		if !s.filled {
			return m.emptyV, false
		}

		if s.hash == hash && s.key == key {
			return s.value, true
		}

		if s.dist < dist {
			// Anything homed earlier would have displaced this occupant,
			// so the key cannot sit further along the probe sequence.
			return m.emptyV, false
		}

		i = (i + 1) & mask
	}

	return m.emptyV, false
}

// Contains checks whether a key is in the map.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes a key. It reports whether the key was present; deleting an
// absent key is a no-op.
func (m *Map[K, V]) Delete(key K) bool {
	if len(m.slots) == 0 {
		return false
	}

	var (
		hash = mix(m.hashFunc(key))
		mask = uint64(len(m.slots) - 1)
		i    = hash & mask
	)

	for dist := 0; dist < len(m.slots); dist++ {
		s := &m.slots[i]

		if !s.filled {
			return false
		}

		if s.hash == hash && s.key == key {
			m.shiftBack(i)

			return true
		}

		if s.dist < dist {
			return false
		}

		i = (i + 1) & mask
	}

	return false
}

// shiftBack empties slot i and pulls every subsequent cluster entry one slot
// closer to its home index, restoring the early-exit lookup invariant.
func (m *Map[K, V]) shiftBack(i uint64) {
	mask := uint64(len(m.slots) - 1)

	m.slots[i] = slot[K, V]{}
	m.size--

	prev, curr := i, (i+1)&mask
	for range m.slots {
		s := &m.slots[curr]

		// An entry at its home index is not part of the cluster being
		// compacted and must never be pulled backward.
		if !s.filled || s.dist == 0 {
			return
		}

		m.slots[prev] = *s
		m.slots[prev].dist--
		*s = slot[K, V]{}

		prev, curr = curr, (curr+1)&mask
	}
}

// grow doubles the table and reinserts every entry, recomputing probe
// distances from scratch. The old array is only read, never mutated, while
// reinserting.
func (m *Map[K, V]) grow() {
	if m.hashFunc == nil {
		// Zero-value map: first Set lands here.
		m.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	old := m.slots

	capacity := defaultCapacity
	if len(old) > 0 {
		capacity = len(old) * 2
	}
	m.alloc(capacity)

	for i := range old {
		if old[i].filled {
			m.set(old[i].hash, old[i].key, old[i].value)
		}
	}
}

// Clear empties every slot, keeping the allocated capacity.
func (m *Map[K, V]) Clear() {
	clear(m.slots)
	m.size = 0
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Cap returns the current number of slots.
func (m *Map[K, V]) Cap() int {
	return len(m.slots)
}

func (m *Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Range calls f for every entry in ascending slot order.
func (m *Map[K, V]) Range(f func(K, V)) {
	for i := range m.slots {
		if m.slots[i].filled {
			f(m.slots[i].key, m.slots[i].value)
		}
	}
}

// RangeIndexed is Range with a 0-based ordinal of the entry among those
// visited so far. The ordinal is not the physical slot index.
func (m *Map[K, V]) RangeIndexed(f func(int, K, V)) {
	n := 0
	for i := range m.slots {
		if m.slots[i].filled {
			f(n, m.slots[i].key, m.slots[i].value)
			n++
		}
	}
}
