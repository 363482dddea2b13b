package core

// Edge is an opaque packed 64-bit edge identifier. Equality and hashing are
// over the raw 64-bit value. The interpretation of the two 32-bit halves is
// owner-defined; the graphs in this package pack the dense edge ordinal in
// the high half and the insertion-time source endpoint in the low half.
//
// An Edge never references its owning graph. Edges from different graphs
// must not be mixed, and an Edge read before a topology mutation must be
// treated as invalid afterwards unless the owner documents otherwise.
type Edge uint64

// NoEdge is the out-of-band edge value. No graph in this package ever
// produces it (a live edge's low half is a valid vertex id, never ^0).
const NoEdge Edge = 1<<64 - 1

// PackEdge composes an Edge from its two 32-bit halves.
func PackEdge(hi, lo uint32) Edge {
	return Edge(uint64(hi)<<32 | uint64(lo))
}

// Hi extracts the high 32-bit half.
func (e Edge) Hi() uint32 { return uint32(uint64(e) >> 32) }

// Lo extracts the low 32-bit half.
func (e Edge) Lo() uint32 { return uint32(uint64(e)) }
