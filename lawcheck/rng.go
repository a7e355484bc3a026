// SPDX-License-Identifier: MIT

// Package lawcheck - random streams for the generators.
//
// Every law draws from its own *rand.Rand, derived from the run seed and the
// law's catalogue index, so a report depends on the seed only and never on
// goroutine scheduling. math/rand.Rand is not goroutine-safe; streams are
// never shared.

package lawcheck

import "math/rand"

// defaultRNGSeed replaces a zero run seed.
const defaultRNGSeed int64 = 1

// seedOrDefault maps the zero seed to defaultRNGSeed.
func seedOrDefault(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// rngFromSeed returns a *rand.Rand seeded with seedOrDefault(seed).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seedOrDefault(seed)))
}

// deriveSeed hashes (parent, stream) with the SplitMix64 finalizer; adjacent
// stream numbers yield unrelated seeds.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamRNG returns the stream of law number idx for the run seed.
func streamRNG(seed int64, idx int) *rand.Rand {
	return rngFromSeed(deriveSeed(seedOrDefault(seed), uint64(idx)))
}
