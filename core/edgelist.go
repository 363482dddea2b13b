package core

import (
	"fmt"
	"iter"
)

// EdgeList is an ordered, index-addressable collection of edges backed by a
// flat 64-bit array.
//
// Slice produces O(1) sub-range views sharing the parent's backing storage;
// equality and hashing are structural (over the contained edge sequence),
// so a view and a freshly built list with the same contents compare equal.
type EdgeList struct {
	edges []Edge
}

// NewEdgeList returns an empty list with room for capacityHint edges.
func NewEdgeList(capacityHint int) *EdgeList {
	return &EdgeList{edges: make([]Edge, 0, max(capacityHint, 0))}
}

// EdgeListOf returns a list holding the given edges, in order.
func EdgeListOf(edges ...Edge) *EdgeList {
	return &EdgeList{edges: edges}
}

// viewOf wraps graph-owned storage without copying. Callers receiving such
// a list must treat it as read-only.
func viewOf(edges []Edge) *EdgeList {
	return &EdgeList{edges: edges[:len(edges):len(edges)]}
}

// Append adds e at the end of the list.
func (l *EdgeList) Append(e Edge) { l.edges = append(l.edges, e) }

// Len reports the number of edges.
func (l *EdgeList) Len() int { return len(l.edges) }

// At returns the edge at index i. Panics with ErrEdgeRange for i outside
// [0, Len).
func (l *EdgeList) At(i int) Edge {
	if i < 0 || i >= len(l.edges) {
		panic(fmt.Errorf("%w: index %d of %d", ErrEdgeRange, i, len(l.edges)))
	}

	return l.edges[i]
}

// Contains reports membership by linear scan.
//
// Complexity: O(Len). Use EdgeSet when membership dominates the workload.
func (l *EdgeList) Contains(e Edge) bool {
	for _, x := range l.edges {
		if x == e {
			return true
		}
	}

	return false
}

// All returns a lazy sequence over the edges in index order.
func (l *EdgeList) All() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range l.edges {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward returns a lazy sequence over the edges in reverse index order.
func (l *EdgeList) Backward() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for i := len(l.edges) - 1; i >= 0; i-- {
			if !yield(l.edges[i]) {
				return
			}
		}
	}
}

// Export copies the edges into a fresh array, in index order.
func (l *EdgeList) Export() []Edge {
	out := make([]Edge, len(l.edges))
	copy(out, l.edges)

	return out
}

// Slice returns an O(1) view of length edges starting at offset. The view
// shares this list's backing storage: it is a window, not a copy. Panics
// with ErrEdgeRange when the window falls outside [0, Len].
func (l *EdgeList) Slice(offset, length int) *EdgeList {
	if offset < 0 || length < 0 || offset+length > len(l.edges) {
		panic(fmt.Errorf("%w: window [%d,%d) of %d", ErrEdgeRange, offset, offset+length, len(l.edges)))
	}

	return viewOf(l.edges[offset : offset+length])
}

// Equal reports structural equality: same length and the same edge value at
// every index.
func (l *EdgeList) Equal(o *EdgeList) bool {
	if l.Len() != o.Len() {
		return false
	}
	for i, e := range l.edges {
		if o.edges[i] != e {
			return false
		}
	}

	return true
}

// Hash returns a structural hash consistent with Equal (FNV-1a folded over
// the 64-bit edge values).
func (l *EdgeList) Hash() uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for _, e := range l.edges {
		h ^= uint64(e)
		h *= prime64
	}

	return h
}
