// Copyright (c) 2025 The uradix authors
// SPDX-License-Identifier: MIT

package golden

import "math/rand/v2"

// RandomKey returns a uniformly random key of at most bits bits.
func RandomKey(prng *rand.Rand, bits int) uint64 {
	return prng.Uint64() & (^uint64(0) >> (64 - bits))
}

// RandomKeys returns n random keys of at most bits bits, duplicates
// included.
func RandomKeys(prng *rand.Rand, n, bits int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = RandomKey(prng, bits)
	}
	return keys
}

// RandomValue returns a random non-zero value, 0 is the reserved
// not-found sentinel.
func RandomValue(prng *rand.Rand) uint64 {
	for {
		if v := prng.Uint64(); v != 0 {
			return v
		}
	}
}
