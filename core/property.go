package core

import "fmt"

// VertexProperty is a default-valued mapping from Vertex to T, sized to the
// graph's vertex id space at creation.
//
// Defaults are materialized eagerly: the default factory runs exactly once
// per id at creation time, giving O(1) cache-friendly reads with no
// per-read branch. The property is owned by its creator, independent of the
// graph's lifecycle, and becomes invalid if the graph's id space is grown
// or renumbered afterwards (a usage contract, not a checked condition).
type VertexProperty[T any] struct {
	values []T
}

// NewVertexProperty allocates a property over g's current vertex id space,
// invoking def once per id for the initial values.
//
// Complexity: O(VertexCount).
func NewVertexProperty[T any](g Graph, def func() T) *VertexProperty[T] {
	p := &VertexProperty[T]{values: make([]T, g.VertexCount())}
	for i := range p.values {
		p.values[i] = def()
	}

	return p
}

// Len reports the size of the covered id space.
func (p *VertexProperty[T]) Len() int { return len(p.values) }

// Get returns the value for v. Panics with ErrVertexRange outside the id
// space the property was sized to.
func (p *VertexProperty[T]) Get(v Vertex) T {
	p.check(v)

	return p.values[v]
}

// Set stores the value for v. Same range contract as Get.
func (p *VertexProperty[T]) Set(v Vertex, val T) {
	p.check(v)
	p.values[v] = val
}

func (p *VertexProperty[T]) check(v Vertex) {
	if v < 0 || int(v) >= len(p.values) {
		panic(fmt.Errorf("%w: vertex %d of property over %d", ErrVertexRange, v, len(p.values)))
	}
}

// EdgeProperty is a default-valued mapping from Edge to T, sized to the
// graph's edge id space at creation. Same eager-default and lifecycle
// contract as VertexProperty; lookups go through the owning graph's
// EdgeOrdinal, so a dead or foreign Edge panics with ErrEdgeRange.
type EdgeProperty[T any] struct {
	g      Graph
	values []T
}

// NewEdgeProperty allocates a property over g's current edge id space,
// invoking def once per edge for the initial values.
//
// Complexity: O(EdgeCount).
func NewEdgeProperty[T any](g Graph, def func() T) *EdgeProperty[T] {
	p := &EdgeProperty[T]{g: g, values: make([]T, g.EdgeCount())}
	for i := range p.values {
		p.values[i] = def()
	}

	return p
}

// Len reports the size of the covered id space.
func (p *EdgeProperty[T]) Len() int { return len(p.values) }

// Get returns the value for e.
func (p *EdgeProperty[T]) Get(e Edge) T {
	return p.values[p.g.EdgeOrdinal(e)]
}

// Set stores the value for e.
func (p *EdgeProperty[T]) Set(e Edge, val T) {
	p.values[p.g.EdgeOrdinal(e)] = val
}
