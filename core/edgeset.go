package core

import (
	"iter"

	"github.com/grintlab/grint/primitive"
)

// EdgeSet is an unordered collection of distinct edges backed by a
// primitive 64-bit hash set; no edge is ever boxed.
type EdgeSet struct {
	set *primitive.Set[Edge]
}

// NewEdgeSet returns an EdgeSet pre-sized for capacityHint edges.
func NewEdgeSet(capacityHint int) *EdgeSet {
	return &EdgeSet{set: primitive.NewSet[Edge](capacityHint)}
}

// Add inserts e and reports whether it was newly added.
//
// Complexity: amortized O(1).
func (s *EdgeSet) Add(e Edge) bool { return s.set.Add(e) }

// Remove deletes e and reports whether it was present.
func (s *EdgeSet) Remove(e Edge) bool { return s.set.Remove(e) }

// Len reports the number of distinct edges.
func (s *EdgeSet) Len() int { return s.set.Len() }

// Contains reports membership of e.
func (s *EdgeSet) Contains(e Edge) bool { return s.set.Contains(e) }

// All returns a lazy sequence over the edges in unspecified order.
func (s *EdgeSet) All() iter.Seq[Edge] { return s.set.Values() }

// Export copies the edges into a fresh array, in unspecified order.
func (s *EdgeSet) Export() []Edge {
	out := make([]Edge, 0, s.set.Len())
	for e := range s.set.Values() {
		out = append(out, e)
	}

	return out
}
