// Package qlearn - RNG utilities.
//
// This file centralizes deterministic random generation for training.
//
// Goals:
//   - Determinism: same seed ⇒ identical value tables across platforms.
//   - Encapsulation: a single RNG factory; no time-based or global sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveSeed to create independent streams for parallel training runs.
package qlearn

import "math/rand"

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer, so consecutive stream ids give
// uncorrelated sources. A parent of 0 is replaced by DefaultSeed first.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	if parent == 0 {
		parent = DefaultSeed
	}
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	// Never hand back the "use default" sentinel.
	if x == 0 {
		x = 1
	}
	return int64(x)
}
