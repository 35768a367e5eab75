// Copyright (c) 2025 The uradix authors
// SPDX-License-Identifier: MIT

// Package uradix provides an ordered key/value index over unsigned
// integer keys, built as a wide-fanout radix trie.
//
// The trie consumes the key in fixed strides of 8 bits. Every level
// node carries a 256-bit presence vector, stored as four uint64
// words, next to four child references, each addressing a
// slab-allocated block of 64 children. The bottom level blocks hold
// the values directly.
//
// The algorithm works entirely on fast, cache-friendly bitmask
// operations over a fixed length of 256 bits, which modern CPUs
// support with advanced bit manipulation instruction sets
// (POPCNT, LZCNT, TZCNT). The fixed size of [4]uint64 keeps the
// presence vector within a cache line and lets the hot loops unroll.
//
// Besides point insertion, lookup and removal the index answers the
// find-ceiling query: the value of the smallest stored key greater
// than or equal to a probe key. The successor search runs over the
// recorded descent trail with range-bounded bit scans, no comparison
// tree is involved.
//
// All blocks come from two per-index slab allocators, one for
// interior blocks and one for leaf blocks, with constant-time
// acquire and release and one-pass teardown. For dense or clustered
// integer domains this undercuts the constant factors of balanced
// comparison trees while keeping memory consumption predictable.
package uradix
