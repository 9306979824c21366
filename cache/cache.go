package cache

// Cache is a set-associative cache: a fixed-length sequence of Sets plus
// the static Geometry that decodes addresses into (tag, set index).
// A Cache owns its Sets exclusively; each Set owns its Lines exclusively.
// All storage is allocated once at construction and lives for the
// simulation's duration — there is no resizing and no teardown beyond
// garbage collection.
type Cache struct {
	geometry Geometry
	sets     []Set
}

// New allocates a Cache for the given geometry. Every line starts
// invalid.
func New(geometry Geometry) *Cache {
	sets := make([]Set, geometry.NumSets)
	for i := range sets {
		sets[i] = newSet(geometry.LinesPerSet)
	}
	return &Cache{geometry: geometry, sets: sets}
}

// Geometry returns the cache's address-decomposition geometry.
func (c *Cache) Geometry() Geometry { return c.geometry }

// Access looks up addr, installing or evicting a line as needed, and
// reports whether it was a hit. isPrefetch suppresses the LRU promotion
// that would otherwise happen on a hit, so that a prefetch re-touching an
// already-resident line does not perturb recency ordering.
func (c *Cache) Access(addr uint64, isPrefetch bool) Outcome {
	tag := c.geometry.Tag(addr)
	setIndex := c.geometry.SetIndex(addr)
	return c.sets[setIndex].access(tag, isPrefetch)
}
