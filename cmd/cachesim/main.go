// Package main provides the entry point for cachesim.
// cachesim is a trace-driven, two-level (L1+L2) set-associative cache
// simulator with a next-line L2 prefetcher.
//
// Usage:
//
//	go run ./cmd/cachesim l1_cache_size l1_assoc l1_replace_policy l1_block_size \
//	    l2_cache_size l2_assoc l2_replace_policy l2_block_size trace_file
//
// Example:
//
//	go run ./cmd/cachesim 32 direct lru 16 64 assoc:2 lru 16 trace.txt
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/cachesim/config"
	"github.com/sarchlab/cachesim/report"
	"github.com/sarchlab/cachesim/simulation"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run is the testable core of main: it validates args, runs the
// simulation against the named trace file, and writes the report to w.
// It returns the process exit code.
func run(args []string, w io.Writer) int {
	cfg, err := config.ParseArgs(args)
	if err != nil {
		fmt.Fprintln(w, err)
		printUsage(w)
		return 1
	}

	traceFile, err := os.Open(cfg.TracePath)
	if err != nil {
		fmt.Fprintf(w, "cannot open trace file: %v\n", err)
		return 1
	}
	defer func() { _ = traceFile.Close() }()

	sim := simulation.New(cfg)
	if err := sim.Run(traceFile); err != nil {
		fmt.Fprintln(w, err)
		return 1
	}

	if err := report.Write(w, sim.NoPrefetch.Counters, sim.WithPrefetch.Counters); err != nil {
		fmt.Fprintln(w, err)
		return 1
	}

	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cachesim l1_cache_size l1_assoc l1_replace_policy l1_block_size \\")
	fmt.Fprintln(w, "                l2_cache_size l2_assoc l2_replace_policy l2_block_size trace_file")
	fmt.Fprintln(w, "  *_cache_size    positive power-of-two byte count")
	fmt.Fprintln(w, "  *_assoc         direct | assoc | assoc:N (N a power of two)")
	fmt.Fprintln(w, "  *_replace_policy  lru")
	fmt.Fprintln(w, "  *_block_size    positive power-of-two byte count, <= cache size")
	fmt.Fprintln(w, "  trace_file      path to a readable trace file")
}
