package report_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cachesim/cache"
	"github.com/sarchlab/cachesim/report"
)

var _ = Describe("Write", func() {
	It("emits both blocks with their six counters in order", func() {
		noPrefetch := cache.Counters{
			MemoryReads: 3, MemoryWrites: 1,
			L1Hits: 5, L1Misses: 2,
			L2Hits: 1, L2Misses: 1,
		}
		withPrefetch := cache.Counters{
			MemoryReads: 4, MemoryWrites: 1,
			L1Hits: 5, L1Misses: 2,
			L2Hits: 2, L2Misses: 0,
		}

		var buf strings.Builder
		err := report.Write(&buf, noPrefetch, withPrefetch)
		Expect(err).NotTo(HaveOccurred())

		Expect(buf.String()).To(Equal(strings.Join([]string{
			"No Prefetch",
			"Memory reads: 3",
			"Memory writes: 1",
			"L1 cache hits: 5",
			"L1 cache misses: 2",
			"L2 cache hits: 1",
			"L2 cache misses: 1",
			"With Prefetch",
			"Memory reads: 4",
			"Memory writes: 1",
			"L1 cache hits: 5",
			"L1 cache misses: 2",
			"L2 cache hits: 2",
			"L2 cache misses: 0",
			"",
		}, "\n")))
	})

	It("emits zeroed counters for a configuration with no traffic", func() {
		var buf strings.Builder
		err := report.Write(&buf, cache.Counters{}, cache.Counters{})
		Expect(err).NotTo(HaveOccurred())

		Expect(buf.String()).To(ContainSubstring("Memory reads: 0"))
		Expect(strings.Count(buf.String(), "Memory reads: 0")).To(Equal(2))
	})
})
