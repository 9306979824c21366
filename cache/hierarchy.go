package cache

// Counters accumulate the six memory-traffic statistics a single
// configuration (no-prefetch or with-prefetch) produces over a trace.
// Every field is monotonically non-decreasing as the trace is processed.
type Counters struct {
	MemoryReads  uint64
	MemoryWrites uint64
	L1Hits       uint64
	L1Misses     uint64
	L2Hits       uint64
	L2Misses     uint64
}

// Hierarchy drives an L1 and an L2 Cache through the two-level
// read/write/prefetch access protocol and accumulates Counters. Two
// Hierarchy instances — one with Prefetch false, one true — process the
// same trace independently; they share no state.
type Hierarchy struct {
	L1       *Cache
	L2       *Cache
	Prefetch bool
	Counters Counters
}

// NewHierarchy builds a Hierarchy with freshly allocated L1 and L2
// caches for the given geometries.
func NewHierarchy(l1, l2 Geometry, prefetch bool) *Hierarchy {
	return &Hierarchy{
		L1:       New(l1),
		L2:       New(l2),
		Prefetch: prefetch,
	}
}

// Read runs the read protocol for addr: L1, then on miss L2, then on L2
// miss a memory read and (if Prefetch) the next-line prefetch step.
func (h *Hierarchy) Read(addr uint64) {
	if h.L1.Access(addr, false) == Hit {
		h.Counters.L1Hits++
		return
	}
	h.Counters.L1Misses++

	if h.L2.Access(addr, false) == Hit {
		h.Counters.L2Hits++
		return
	}
	h.Counters.L2Misses++
	h.Counters.MemoryReads++

	if h.Prefetch {
		h.prefetchNextLine(addr)
	}
}

// Write runs the write-allocate, write-through protocol for addr: L1,
// then on miss L2, then on L2 miss an allocating memory read plus a
// write-through, and (if Prefetch) the next-line prefetch step.
func (h *Hierarchy) Write(addr uint64) {
	if h.L1.Access(addr, false) == Hit {
		h.Counters.L1Hits++
		h.Counters.MemoryWrites++
		return
	}
	h.Counters.L1Misses++

	if h.L2.Access(addr, false) == Hit {
		h.Counters.L2Hits++
		h.Counters.MemoryWrites++
		return
	}
	h.Counters.L2Misses++
	h.Counters.MemoryReads++
	h.Counters.MemoryWrites++

	if h.Prefetch {
		h.prefetchNextLine(addr)
	}
}

// prefetchNextLine issues a one-block next-line prefetch into L2: the
// block immediately following addr is brought into L2 (as a prefetch
// access, so a hit there does not disturb LRU). A prefetch miss costs one
// more memory read; prefetch accesses never touch L1 and never count
// toward the L2 hit/miss counters, only toward MemoryReads.
func (h *Hierarchy) prefetchNextLine(addr uint64) {
	next := addr + uint64(h.L2.Geometry().BlockSize)
	if h.L2.Access(next, true) == Miss {
		h.Counters.MemoryReads++
	}
}
