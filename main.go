// Package main provides a banner entry point for cachesim.
// cachesim is a trace-driven, two-level set-associative cache simulator.
//
// For the full CLI, use: go run ./cmd/cachesim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("cachesim - two-level set-associative cache simulator")
	fmt.Println("")
	fmt.Println("Usage: cachesim l1_cache_size l1_assoc l1_replace_policy l1_block_size \\")
	fmt.Println("                l2_cache_size l2_assoc l2_replace_policy l2_block_size trace_file")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/cachesim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/cachesim' instead.")
	}
}
