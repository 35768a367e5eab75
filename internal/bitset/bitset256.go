// Copyright (c) 2025 The uradix authors
// SPDX-License-Identifier: MIT

// Package bitset implements a fixed size bitset, a mapping
// between the integers [0..255] and boolean values.
//
// Studied [github.com/bits-and-blooms/bitset] inside out
// and rewrote needed parts from scratch for this project.
//
// This implementation is heavily optimized for this internal use case.
package bitset

//  can inline (*BitSet256).All with cost 56
//  can inline (*BitSet256).AsSlice with cost 50
//  can inline (*BitSet256).Clear with cost 12
//  can inline (*BitSet256).FirstSet with cost 79
//  can inline (*BitSet256).IsEmpty with cost 28
//  can inline (*BitSet256).NextSet with cost 73
//  can inline (*BitSet256).Set with cost 12
//  can inline (*BitSet256).Size with cost 36
//  can inline (*BitSet256).Test with cost 24

import (
	"fmt"
	"math/bits"
)

// just as an explanation of the recurring expressions,
//
//	bit>>6 and bit&63
//
// bit>>6 is the word index (bit / 64) and bit&63 the bit index
// within the word (bit % 64), not factored out as functions to
// keep the methods inlineable with minimal costs.
//
// With bit typed as uint8 the word index is 0..3 by construction,
// no bounds checks are needed, none can fail.

// BitSet256 represents a fixed size bitset from [0..255].
type BitSet256 [4]uint64

func (b *BitSet256) String() string {
	return fmt.Sprint(b.All())
}

// Set the bit.
func (b *BitSet256) Set(bit uint8) {
	b[bit>>6] |= 1 << (bit & 63)
}

// Clear the bit.
func (b *BitSet256) Clear(bit uint8) {
	b[bit>>6] &^= 1 << (bit & 63)
}

// Test if the bit is set.
func (b *BitSet256) Test(bit uint8) bool {
	return b[bit>>6]&(1<<(bit&63)) != 0
}

// FirstSet returns the first bit set along with an ok code.
func (b *BitSet256) FirstSet() (first uint8, ok bool) {
	// optimized for pipelining, can still inline with cost 79
	if x := bits.TrailingZeros64(b[0]); x != 64 {
		return uint8(x), true
	} else if x := bits.TrailingZeros64(b[1]); x != 64 {
		return uint8(x + 64), true
	} else if x := bits.TrailingZeros64(b[2]); x != 64 {
		return uint8(x + 128), true
	} else if x := bits.TrailingZeros64(b[3]); x != 64 {
		return uint8(x + 192), true
	}
	return
}

// NextSet returns the next bit set from the specified start bit,
// including possibly the current bit along with an ok code.
func (b *BitSet256) NextSet(bit uint8) (uint8, bool) {
	wIdx := int(bit >> 6)

	// process the first (maybe partial) word
	first := b[wIdx] >> (bit & 63)
	if first != 0 {
		return bit + uint8(bits.TrailingZeros64(first)), true
	}

	// process the following words until next bit is set
	for wIdx++; wIdx < 4; wIdx++ {
		if word := b[wIdx]; word != 0 {
			return uint8(wIdx<<6 + bits.TrailingZeros64(word)), true
		}
	}
	return 0, false
}

// NextSetInRange returns the lowest bit set in [start, end],
// both bounds inclusive, along with an ok code.
//
// The partial first and last words are masked to the range,
// full words in between are scanned as is.
func (b *BitSet256) NextSetInRange(start, end uint8) (uint8, bool) {
	if start > end {
		return 0, false
	}
	sWord := int(start >> 6)
	eWord := int(end >> 6)

	for wIdx := sWord; wIdx <= eWord; wIdx++ {
		word := b[wIdx&3] // [wIdx&3] is bounds check elimination (BCE)
		if wIdx == sWord {
			word &= ^uint64(0) << (start & 63)
		}
		if wIdx == eWord {
			word &= ^uint64(0) >> (63 - (end & 63))
		}
		if word != 0 {
			return uint8(wIdx<<6 + bits.TrailingZeros64(word)), true
		}
	}
	return 0, false
}

// IsEmpty returns true if no bit is set.
func (b *BitSet256) IsEmpty() bool {
	return b[3] == 0 &&
		b[2] == 0 &&
		b[1] == 0 &&
		b[0] == 0
}

// AsSlice returns all set bits as slice of uint8 without
// heap allocations.
//
// This is faster than All, but also more dangerous,
// it panics if the capacity of buf is < b.Size()
func (b *BitSet256) AsSlice(buf []uint8) []uint8 {
	buf = buf[:cap(buf)] // use cap as max len

	size := 0
	for wIdx, word := range b {
		for ; word != 0; size++ {
			// panics if capacity of buf is exceeded.
			buf[size] = uint8(wIdx<<6 + bits.TrailingZeros64(word))

			// clear the rightmost set bit
			word &= word - 1
		}
	}

	buf = buf[:size]
	return buf
}

// All returns all set bits. This has a simpler API but is slower than AsSlice.
func (b *BitSet256) All() []uint8 {
	return b.AsSlice(make([]uint8, 0, 256))
}

// Size is the number of set bits (popcount).
func (b *BitSet256) Size() (cnt int) {
	cnt += bits.OnesCount64(b[0])
	cnt += bits.OnesCount64(b[1])
	cnt += bits.OnesCount64(b[2])
	cnt += bits.OnesCount64(b[3])
	return
}
