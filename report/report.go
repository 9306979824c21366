// Package report formats cache.Counters into the simulator's stdout
// output, independent of the engine that produced them.
package report

import (
	"fmt"
	"io"

	"github.com/sarchlab/cachesim/cache"
)

// Write emits the two-configuration report described in spec.md §4.5:
// a "No Prefetch" block followed by a "With Prefetch" block, each
// listing the six counters in a fixed order as "Label: value" lines.
func Write(w io.Writer, noPrefetch, withPrefetch cache.Counters) error {
	if err := writeBlock(w, "No Prefetch", noPrefetch); err != nil {
		return err
	}
	return writeBlock(w, "With Prefetch", withPrefetch)
}

func writeBlock(w io.Writer, label string, c cache.Counters) error {
	lines := []struct {
		label string
		value uint64
	}{
		{"Memory reads", c.MemoryReads},
		{"Memory writes", c.MemoryWrites},
		{"L1 cache hits", c.L1Hits},
		{"L1 cache misses", c.L1Misses},
		{"L2 cache hits", c.L2Hits},
		{"L2 cache misses", c.L2Misses},
	}

	if _, err := fmt.Fprintln(w, label); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %d\n", l.label, l.value); err != nil {
			return err
		}
	}
	return nil
}
