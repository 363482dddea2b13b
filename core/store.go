package core

import (
	"fmt"
	"iter"
)

// edgeStore is the flat edge catalog shared by the mutable and frozen
// representations: per-ordinal endpoint and weight arrays. The packed Edge
// value for ordinal i is (i, from[i]).
type edgeStore struct {
	from   []Vertex
	to     []Vertex
	weight []float64
}

func (s *edgeStore) EdgeCount() int { return len(s.from) }

// edgeValue packs the canonical Edge for ordinal i.
func (s *edgeStore) edgeValue(i int) Edge {
	return PackEdge(uint32(i), uint32(s.from[i]))
}

// checkEdge validates that e identifies a live edge and returns its
// ordinal. The low half must match the recorded source endpoint, so a
// hand-forged or cross-graph value is rejected rather than misread.
func (s *edgeStore) checkEdge(e Edge) (int, error) {
	i := int(e.Hi())
	if i >= len(s.from) || s.edgeValue(i) != e {
		return -1, fmt.Errorf("%w: edge %#x", ErrEdgeRange, uint64(e))
	}

	return i, nil
}

func (s *edgeStore) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for i := range s.from {
			if !yield(s.edgeValue(i)) {
				return
			}
		}
	}
}

func (s *edgeStore) EdgeOrdinal(e Edge) int {
	i, err := s.checkEdge(e)
	if err != nil {
		panic(err)
	}

	return i
}

func (s *edgeStore) Weight(e Edge) float64 {
	return s.weight[s.EdgeOrdinal(e)]
}

func (s *edgeStore) EdgeOpposite(e Edge, v Vertex) (Vertex, error) {
	i, err := s.checkEdge(e)
	if err != nil {
		return NoVertex, err
	}
	switch v {
	case s.from[i]:
		return s.to[i], nil
	case s.to[i]:
		return s.from[i], nil
	}

	return NoVertex, fmt.Errorf("%w: edge %#x, vertex %d", ErrNotIncident, uint64(e), v)
}

// opposite is EdgeOpposite for ordinals already known valid; used on hot
// adjacency paths where e came out of this store moments ago.
func (s *edgeStore) opposite(i int, v Vertex) Vertex {
	if s.from[i] == v {
		return s.to[i]
	}

	return s.from[i]
}

// checkVertex panics unless v is inside [0, n).
func checkVertex(v Vertex, n int) {
	if v < 0 || int(v) >= n {
		panic(fmt.Errorf("%w: vertex %d of %d", ErrVertexRange, v, n))
	}
}
