// Package simulation wires the trace driver to the two-level cache
// access protocol: it owns the two independent configurations
// (no-prefetch, with-prefetch) that share a trace but maintain separate
// caches and counters.
package simulation

import (
	"io"

	"github.com/sarchlab/cachesim/cache"
	"github.com/sarchlab/cachesim/config"
	"github.com/sarchlab/cachesim/trace"
)

// Simulation drives one trace through two cache hierarchies built from
// the same L1/L2 geometry: NoPrefetch never issues next-line prefetches,
// WithPrefetch always does.
type Simulation struct {
	NoPrefetch   *cache.Hierarchy
	WithPrefetch *cache.Hierarchy
}

// New builds a Simulation from a validated Config. Both hierarchies get
// their own freshly allocated L1 and L2 caches.
func New(cfg *config.Config) *Simulation {
	return &Simulation{
		NoPrefetch:   cache.NewHierarchy(cfg.L1, cfg.L2, false),
		WithPrefetch: cache.NewHierarchy(cfg.L1, cfg.L2, true),
	}
}

// Run scans r for trace events and, for each, invokes the read or write
// protocol on both hierarchies in turn, using the same address decoded
// independently against each hierarchy's own geometry. It stops at the
// trace's "#eof" sentinel (or end of input) and returns the first parse
// or I/O error it encounters, if any.
func (s *Simulation) Run(r io.Reader) error {
	return trace.Run(r, func(ev trace.Event) {
		switch ev.Op {
		case trace.Read:
			s.NoPrefetch.Read(ev.Addr)
			s.WithPrefetch.Read(ev.Addr)
		case trace.Write:
			s.NoPrefetch.Write(ev.Addr)
			s.WithPrefetch.Write(ev.Addr)
		}
	})
}
