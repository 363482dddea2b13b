package primitive

import "iter"

// Map is an open-addressing hash map from integer keys to integer values.
//
// The zero Map is not usable; construct with NewMap. A Map is not safe for
// concurrent use. Get on an absent key returns the miss value configured at
// construction, so lookups never allocate and never fail.
type Map[K, V Key] struct {
	keys []K
	vals []V
	live []bool
	mask uint64
	size int
	miss V
}

// NewMap returns a Map pre-sized to hold capacityHint entries without
// resizing. Get returns miss for keys that are not present.
//
// Complexity: O(capacityHint).
func NewMap[K, V Key](capacityHint int, miss V) *Map[K, V] {
	c := tableCapacity(max(capacityHint, 0))
	m := &Map[K, V]{
		keys: make([]K, c),
		vals: make([]V, c),
		live: make([]bool, c),
		mask: uint64(c - 1),
		miss: miss,
	}

	return m
}

// Len reports the number of live entries.
func (m *Map[K, V]) Len() int { return m.size }

// Miss reports the configured value returned by Get for absent keys.
func (m *Map[K, V]) Miss() V { return m.miss }

// find locates k's slot: (index of k, true) when present, otherwise
// (index of the first empty slot on k's probe sequence, false).
func (m *Map[K, V]) find(k K) (uint64, bool) {
	i := hashKey(k, m.mask)
	for m.live[i] {
		if m.keys[i] == k {
			return i, true
		}
		i = (i + 1) & m.mask
	}

	return i, false
}

// Put stores v under k, replacing any previous value.
//
// Complexity: amortized O(1); a load-factor resize reinserts every entry.
func (m *Map[K, V]) Put(k K, v V) {
	i, ok := m.find(k)
	if ok {
		m.vals[i] = v

		return
	}
	if m.size+1 > len(m.keys)/4*3 {
		m.grow()
		i, _ = m.find(k)
	}
	m.keys[i] = k
	m.vals[i] = v
	m.live[i] = true
	m.size++
}

// Get returns the value stored under k, or the configured miss value when
// k is absent.
//
// Complexity: O(1) expected.
func (m *Map[K, V]) Get(k K) V {
	if i, ok := m.find(k); ok {
		return m.vals[i]
	}

	return m.miss
}

// Contains reports whether k has an entry.
func (m *Map[K, V]) Contains(k K) bool {
	_, ok := m.find(k)

	return ok
}

// Remove deletes k's entry and reports whether one existed.
//
// Deletion is backward-shift: later entries of the probe cluster slide into
// the vacated slot, so no tombstones accumulate under churn.
//
// Complexity: O(1) expected, O(cluster length) worst case.
func (m *Map[K, V]) Remove(k K) bool {
	i, ok := m.find(k)
	if !ok {
		return false
	}
	m.size--
	j := i
	for {
		m.live[i] = false
		for {
			j = (j + 1) & m.mask
			if !m.live[j] {
				return true
			}
			h := hashKey(m.keys[j], m.mask)
			// Entry j stays put only if its home h lies cyclically
			// within (i, j]; otherwise it slides into the hole at i.
			var anchored bool
			if i < j {
				anchored = i < h && h <= j
			} else {
				anchored = h > i || h <= j
			}
			if !anchored {
				break
			}
		}
		m.keys[i] = m.keys[j]
		m.vals[i] = m.vals[j]
		m.live[i] = true
		i = j
	}
}

// Clear removes every entry, retaining the current capacity.
func (m *Map[K, V]) Clear() {
	clear(m.live)
	m.size = 0
}

// Keys returns a lazy sequence over the live keys, in unspecified order.
// Each range restarts the sequence; mutating the map mid-range is undefined.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i, ok := range m.live {
			if ok && !yield(m.keys[i]) {
				return
			}
		}
	}
}

// All returns a lazy sequence over the live (key, value) pairs, in
// unspecified order. Same restart and mutation contract as Keys.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, ok := range m.live {
			if ok && !yield(m.keys[i], m.vals[i]) {
				return
			}
		}
	}
}

// grow doubles the backing arrays and reinserts every live entry.
func (m *Map[K, V]) grow() {
	c := len(m.keys) * 2
	if c > maxCapacity || c <= 0 {
		panic(ErrTableOverflow)
	}
	keys, vals, live := m.keys, m.vals, m.live
	m.keys = make([]K, c)
	m.vals = make([]V, c)
	m.live = make([]bool, c)
	m.mask = uint64(c - 1)
	for i, ok := range live {
		if !ok {
			continue
		}
		j, _ := m.find(keys[i])
		m.keys[j] = keys[i]
		m.vals[j] = vals[i]
		m.live[j] = true
	}
}
