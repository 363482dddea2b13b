package primitive

import "iter"

// Set is an open-addressing hash set of integer values. It shares the Map
// table shape with the value lane removed.
//
// The zero Set is not usable; construct with NewSet. A Set is not safe for
// concurrent use.
type Set[K Key] struct {
	keys []K
	live []bool
	mask uint64
	size int
}

// NewSet returns a Set pre-sized to hold capacityHint values without
// resizing.
//
// Complexity: O(capacityHint).
func NewSet[K Key](capacityHint int) *Set[K] {
	c := tableCapacity(max(capacityHint, 0))

	return &Set[K]{
		keys: make([]K, c),
		live: make([]bool, c),
		mask: uint64(c - 1),
	}
}

// Len reports the number of values in the set.
func (s *Set[K]) Len() int { return s.size }

func (s *Set[K]) find(k K) (uint64, bool) {
	i := hashKey(k, s.mask)
	for s.live[i] {
		if s.keys[i] == k {
			return i, true
		}
		i = (i + 1) & s.mask
	}

	return i, false
}

// Add inserts k and reports whether it was newly added. Adding a present
// value is a no-op returning false.
//
// Complexity: amortized O(1).
func (s *Set[K]) Add(k K) bool {
	i, ok := s.find(k)
	if ok {
		return false
	}
	if s.size+1 > len(s.keys)/4*3 {
		s.grow()
		i, _ = s.find(k)
	}
	s.keys[i] = k
	s.live[i] = true
	s.size++

	return true
}

// Contains reports whether k is in the set.
func (s *Set[K]) Contains(k K) bool {
	_, ok := s.find(k)

	return ok
}

// Remove deletes k and reports whether it was present. Backward-shift
// deletion, as in Map.Remove.
func (s *Set[K]) Remove(k K) bool {
	i, ok := s.find(k)
	if !ok {
		return false
	}
	s.size--
	j := i
	for {
		s.live[i] = false
		for {
			j = (j + 1) & s.mask
			if !s.live[j] {
				return true
			}
			h := hashKey(s.keys[j], s.mask)
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
		s.keys[i] = s.keys[j]
		s.live[i] = true
		i = j
	}
}

// Clear removes every value, retaining the current capacity.
func (s *Set[K]) Clear() {
	clear(s.live)
	s.size = 0
}

// Values returns a lazy sequence over the set's values, in unspecified
// order. Each range restarts the sequence; mutating the set mid-range is
// undefined.
func (s *Set[K]) Values() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i, ok := range s.live {
			if ok && !yield(s.keys[i]) {
				return
			}
		}
	}
}

func (s *Set[K]) grow() {
	c := len(s.keys) * 2
	if c > maxCapacity || c <= 0 {
		panic(ErrTableOverflow)
	}
	keys, live := s.keys, s.live
	s.keys = make([]K, c)
	s.live = make([]bool, c)
	s.mask = uint64(c - 1)
	for i, ok := range live {
		if !ok {
			continue
		}
		j, _ := s.find(keys[i])
		s.keys[j] = keys[i]
		s.live[j] = true
	}
}
