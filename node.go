// Copyright (c) 2025 The uradix authors
// SPDX-License-Identifier: MIT

package uradix

import (
	"unsafe"

	"github.com/uradix/uradix/internal/bitset"
)

const (
	strideLen  = 8               // one byte of the key per trie level
	maxDepth   = 64 / strideLen  // 8
	blockShift = 6               // log2 of the block size
	blockSize  = 1 << blockShift // 64 entries per child block
)

// node is one level of the trie, addressing one stride byte of the key.
//
// The stride byte doubles as the bit position in the 256-bit presence
// vector. The same split addresses the children: children[octet>>6]
// references a block of 64 entries and octet&63 the slot within it.
// Grouping 64 children under one reference keeps the node small and
// the allocator pressure at block granularity.
//
// At interior levels a child reference is a *nodeBlock, at the bottom
// level it is a *leafBlock holding the values directly. Both come
// from the slabs of the owning Tree. A reference is nil iff no bit is
// set in the corresponding word of the presence vector.
type node struct {
	bits     bitset.BitSet256
	children [4]unsafe.Pointer
}

// nodeBlock is a slab-allocated group of 64 child nodes.
type nodeBlock [blockSize]node

// leafBlock is a slab-allocated group of 64 values.
type leafBlock [blockSize]uint64

func (n *node) nodeBlock(idx uint8) *nodeBlock {
	return (*nodeBlock)(n.children[idx])
}

func (n *node) leafBlock(idx uint8) *leafBlock {
	return (*leafBlock)(n.children[idx])
}

// wordIdx and slotIdx split a stride byte into the presence word
// index (0..3) and the slot within the referenced block (0..63).
// With octet typed as uint8 neither can go out of range.
func wordIdx(octet uint8) uint8 { return octet >> blockShift }

func slotIdx(octet uint8) uint8 { return octet & (blockSize - 1) }
