package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cachesim/config"
)

func validArgs() []string {
	return []string{
		"32", "direct", "lru", "16",
		"64", "assoc:2", "lru", "16",
		"trace.txt",
	}
}

var _ = Describe("ParseArgs", func() {
	It("accepts a well-formed nine-argument command line", func() {
		cfg, err := config.ParseArgs(validArgs())
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.L1.NumSets).To(Equal(2))
		Expect(cfg.L1.LinesPerSet).To(Equal(1))
		Expect(cfg.L2.NumSets).To(Equal(2))
		Expect(cfg.L2.LinesPerSet).To(Equal(2))
		Expect(cfg.TracePath).To(Equal("trace.txt"))
	})

	It("resolves fully-associative geometry from a bare \"assoc\"", func() {
		args := validArgs()
		args[1] = "assoc" // l1_assoc
		cfg, err := config.ParseArgs(args)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.L1.NumSets).To(Equal(1))
		Expect(cfg.L1.LinesPerSet).To(Equal(2)) // 32B / 16B lines
	})

	DescribeTable("rejects invalid arguments",
		func(mutate func([]string) []string) {
			args := mutate(validArgs())
			_, err := config.ParseArgs(args)
			Expect(err).To(HaveOccurred())
		},
		Entry("wrong argument count", func(a []string) []string { return a[:8] }),
		Entry("non-power-of-two cache size", func(a []string) []string {
			a[0] = "24"
			return a
		}),
		Entry("unparseable cache size", func(a []string) []string {
			a[0] = "not-a-number"
			return a
		}),
		Entry("block size exceeding cache size", func(a []string) []string {
			a[3] = "64"
			return a
		}),
		Entry("non-power-of-two block size", func(a []string) []string {
			a[3] = "12"
			return a
		}),
		Entry("unrecognized associativity string", func(a []string) []string {
			a[1] = "fully"
			return a
		}),
		Entry("assoc: with nothing after the colon", func(a []string) []string {
			a[1] = "assoc:"
			return a
		}),
		Entry("assoc:N with a non-power-of-two N", func(a []string) []string {
			a[1] = "assoc:3"
			return a
		}),
		Entry("unrecognized replacement policy", func(a []string) []string {
			a[2] = "fifo"
			return a
		}),
		Entry("empty trace path", func(a []string) []string {
			a[8] = ""
			return a
		}),
	)
})
