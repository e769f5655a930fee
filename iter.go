package robinmap

import "iter"

// All returns an iterator over entries in ascending slot order. Unlike
// Range, ranging over it can stop early.
//
// Slot order is a layout artifact: it changes across growth and deletions
// and carries no semantic meaning.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.slots {
			if m.slots[i].filled && !yield(m.slots[i].key, m.slots[i].value) {
				return
			}
		}
	}
}
