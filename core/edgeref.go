package core

// EdgeRef is a stable edge handle. Unlike a raw Edge, it survives any
// number of topology mutations on the owning graph: Resolve always reports
// the edge's current (possibly relocated) Edge value. Minting and holding
// an EdgeRef costs a slot in the graph's indirection table, so reach for it
// only when cross-mutation stability is actually needed.
//
// A released ref's slot may be reused for a later edge; the generation
// check turns such use into ErrStaleRef instead of silently aliasing a
// different edge. An EdgeRef is only meaningful against the graph that
// minted it.
type EdgeRef struct {
	table *refTable
	slot  int32
	gen   uint32
}

// Resolve returns the current Edge value for the referenced edge, or
// ErrStaleRef once the ref has been released.
//
// Complexity: O(1).
func (r *EdgeRef) Resolve() (Edge, error) {
	s := &r.table.slots[r.slot]
	if !s.live || s.gen != r.gen {
		return NoEdge, ErrStaleRef
	}

	return s.edge, nil
}

// Release frees the ref's slot for reuse. Resolving after Release returns
// ErrStaleRef. Releasing twice is a no-op.
func (r *EdgeRef) Release() {
	s := &r.table.slots[r.slot]
	if !s.live || s.gen != r.gen {
		return
	}
	s.live = false
	r.table.free = append(r.table.free, r.slot)
}

// refSlot carries one live indirection entry. gen is bumped on every reuse
// so stale refs are detectable forever (modulo uint32 wraparound).
type refSlot struct {
	edge Edge
	gen  uint32
	live bool
}

// refTable is the per-graph indirection arena behind EdgeRef. Slots are
// assigned monotonically and recycled through a free list. Graphs that
// relocate edges rewrite the affected slots' edge values, which is what
// keeps refs valid across mutation; the representations in this package
// never relocate, so minted values stay put until released.
type refTable struct {
	slots []refSlot
	free  []int32
}

// acquire mints a stable ref for e.
func (t *refTable) acquire(e Edge) *EdgeRef {
	var slot int32
	if n := len(t.free); n > 0 {
		slot = t.free[n-1]
		t.free = t.free[:n-1]
		s := &t.slots[slot]
		s.edge = e
		s.gen++
		s.live = true
	} else {
		slot = int32(len(t.slots))
		t.slots = append(t.slots, refSlot{edge: e, live: true})
	}

	return &EdgeRef{table: t, slot: slot, gen: t.slots[slot].gen}
}
