// Package config validates the cache simulator's nine positional CLI
// arguments and turns them into the cache.Geometry values the engine
// needs. It is an external collaborator of the core cache engine, not
// part of it: the engine assumes it is always handed already-validated
// geometry.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sarchlab/cachesim/cache"
)

// NumArgs is the number of positional arguments the CLI expects, not
// counting argv[0].
const NumArgs = 9

// Config holds the validated geometry for both cache levels plus the
// trace file path, ready to drive a simulation.
type Config struct {
	L1        cache.Geometry
	L2        cache.Geometry
	TracePath string
}

// ParseArgs validates the nine positional arguments described in
// spec.md §6 and builds a Config. args must not include argv[0].
func ParseArgs(args []string) (*Config, error) {
	if len(args) != NumArgs {
		return nil, fmt.Errorf("expected %d arguments, got %d", NumArgs, len(args))
	}

	l1, err := parseLevel("l1", args[0], args[1], args[2], args[3])
	if err != nil {
		return nil, err
	}

	l2, err := parseLevel("l2", args[4], args[5], args[6], args[7])
	if err != nil {
		return nil, err
	}

	tracePath := args[8]
	if tracePath == "" {
		return nil, fmt.Errorf("trace_file must not be empty")
	}

	return &Config{L1: l1, L2: l2, TracePath: tracePath}, nil
}

// parseLevel validates one cache level's size, associativity, policy,
// and block size, returning the resulting Geometry.
func parseLevel(level, sizeArg, assocArg, policyArg, blockArg string) (cache.Geometry, error) {
	size, err := parsePositiveInt(level+"_cache_size", sizeArg)
	if err != nil {
		return cache.Geometry{}, err
	}
	if !isPowerOfTwo(size) {
		return cache.Geometry{}, fmt.Errorf("%s_cache_size must be a power of two, got %d", level, size)
	}

	blockSize, err := parsePositiveInt(level+"_block_size", blockArg)
	if err != nil {
		return cache.Geometry{}, err
	}
	if !isPowerOfTwo(blockSize) {
		return cache.Geometry{}, fmt.Errorf("%s_block_size must be a power of two, got %d", level, blockSize)
	}
	if blockSize > size {
		return cache.Geometry{}, fmt.Errorf("%s_block_size (%d) must not exceed %s_cache_size (%d)", level, blockSize, level, size)
	}

	if policyArg != "lru" {
		return cache.Geometry{}, fmt.Errorf("%s_replace_policy must be %q, got %q", level, "lru", policyArg)
	}

	linesPerSet, err := parseAssociativity(level, assocArg, size, blockSize)
	if err != nil {
		return cache.Geometry{}, err
	}

	if size%(blockSize*linesPerSet) != 0 {
		return cache.Geometry{}, fmt.Errorf("%s_assoc (%d ways) does not evenly divide %s_cache_size/%s_block_size", level, linesPerSet, level, level)
	}

	return cache.NewGeometry(size, blockSize, linesPerSet), nil
}

// parseAssociativity implements the three-way associativity grammar from
// the original simulator's getAssociativity: "direct" (1-way), "assoc"
// (fully-associative — one way per block in the cache), or "assoc:N" with
// N a positive power of two.
func parseAssociativity(level, s string, size, blockSize int) (int, error) {
	if s == "direct" {
		return 1, nil
	}

	if s == "assoc" {
		return size / blockSize, nil
	}

	prefix, rest, ok := strings.Cut(s, ":")
	if !ok || prefix != "assoc" {
		return 0, fmt.Errorf("%s_assoc must be %q, %q, or %q, got %q", level, "direct", "assoc", "assoc:N", s)
	}
	if rest == "" {
		return 0, fmt.Errorf("%s_assoc is missing N after \"assoc:\"", level)
	}

	n, err := parsePositiveInt(level+"_assoc", rest)
	if err != nil {
		return 0, err
	}
	if !isPowerOfTwo(n) {
		return 0, fmt.Errorf("%s_assoc N must be a power of two, got %d", level, n)
	}

	return n, nil
}

// parsePositiveInt parses s as a positive base-10 integer, naming field
// in any error so the caller's diagnostic points at the offending
// argument.
func parsePositiveInt(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", field, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", field, n)
	}
	return n, nil
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
