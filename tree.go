// Copyright (c) 2025 The uradix authors
// SPDX-License-Identifier: MIT

package uradix

import (
	"errors"
	"iter"
	"unsafe"
)

// initial arena capacities, in blocks, for the two slabs.
// Leaf blocks are an order of magnitude smaller than interior blocks
// and turn over faster, so their first arena is sized larger.
const (
	innerArenaCap = 100
	leafArenaCap  = 1000
)

var (
	// ErrKeyBits is returned by New for a key width outside 1..64.
	ErrKeyBits = errors.New("uradix: key width out of range")

	// ErrAlignShift is returned by New when the alignment shift
	// leaves no key bits to index.
	ErrAlignShift = errors.New("uradix: alignment shift out of range")

	// ErrZeroValue is returned by Insert for the value 0, which is
	// reserved as the not-found sentinel.
	ErrZeroValue = errors.New("uradix: zero value is reserved")

	// ErrKeyRange is returned by Insert for a key with bits set
	// above the configured key width.
	ErrKeyRange = errors.New("uradix: key exceeds key width")
)

// Tree is an ordered key/value index over unsigned integer keys of up
// to 64 bits, implemented as a fixed-stride radix trie with a 256-bit
// presence vector per node and slab-allocated child blocks.
//
// Values are machine words with 0 reserved as the not-found sentinel:
// Get, Ceiling and Delete return 0 for absent keys and Insert rejects
// the value 0. Callers that need to store 0 must shift or tag their
// values.
//
// A Tree is not safe for concurrent use. All operations, readers
// included, require external synchronization when shared between
// goroutines. No operation blocks.
//
// A Tree must not be copied by value after first use.
type Tree struct {
	// used by -copylocks checker from `go vet`.
	_ noCopy

	// the root node, embedded, never slab-allocated
	root node

	levels  uint8 // trie depth, ceil((keyBits-shift)/8)
	shift   uint8 // low bits discarded from every key
	keyBits uint8

	topMax uint8  // highest stride byte possible at level 0
	rawMax uint64 // highest raw key, all ones below keyBits
	geqMax uint64 // highest shifted key, rawMax>>shift

	// number of stored keys
	size int

	// block slabs, inner feeds the interior levels, leaves the
	// bottom level
	inner  slab[nodeBlock]
	leaves slab[leafBlock]
}

// New returns a Tree for keys of at most keyBits bits (1..64) whose
// low alignShift bits are zero. The alignment shift is discarded
// before indexing, it must leave at least one key bit.
//
// Beyond the first arena of each slab nothing is pre-allocated,
// blocks are acquired lazily on insertion and recycled on removal.
func New(keyBits, alignShift int) (*Tree, error) {
	if keyBits < 1 || keyBits > 64 {
		return nil, ErrKeyBits
	}
	if alignShift < 0 || alignShift >= keyBits {
		return nil, ErrAlignShift
	}

	levels := uint8((keyBits - alignShift + 7) / strideLen)
	topBits := uint8(keyBits-alignShift) - (levels-1)*strideLen

	t := &Tree{
		levels:  levels,
		shift:   uint8(alignShift),
		keyBits: uint8(keyBits),
		topMax:  uint8(1<<topBits - 1),
		rawMax:  ^uint64(0) >> (64 - keyBits),
	}
	t.geqMax = t.rawMax >> t.shift

	t.inner = newSlab[nodeBlock](innerArenaCap)
	t.leaves = newSlab[leafBlock](leafArenaCap)
	return t, nil
}

// Size returns the number of stored keys.
func (t *Tree) Size() int {
	return t.size
}

// Insert stores value under key if the key is absent and returns 0.
// If the key is already present the stored value is returned
// unchanged, the insert is a no-op. Overwriting is an explicit
// Delete plus Insert.
//
// The value must not be 0 and the key must fit the configured width,
// otherwise the Tree is left untouched and an error is returned.
func (t *Tree) Insert(key, value uint64) (existing uint64, err error) {
	if value == 0 {
		return 0, ErrZeroValue
	}
	if key > t.rawMax {
		return 0, ErrKeyRange
	}
	key >>= t.shift // aligned low bits, discarded

	lastLevel := t.levels - 1

	n := &t.root
	for level := uint8(0); ; level++ {
		octet := uint8(key >> ((lastLevel - level) * strideLen))
		idx := wordIdx(octet)

		if level == lastLevel {
			if n.children[idx] == nil {
				n.children[idx] = unsafe.Pointer(t.leaves.acquire())
			}
			n.bits.Set(octet)

			block := n.leafBlock(idx)
			existing = block[slotIdx(octet)]
			if existing == 0 {
				block[slotIdx(octet)] = value
				t.size++
			}
			return existing, nil
		}

		if n.children[idx] == nil {
			n.children[idx] = unsafe.Pointer(t.inner.acquire())
		}
		n.bits.Set(octet)

		n = &n.nodeBlock(idx)[slotIdx(octet)]
	}
}

// Get returns the value stored under key, or 0 if the key is absent.
func (t *Tree) Get(key uint64) uint64 {
	if key > t.rawMax {
		return 0
	}
	key >>= t.shift

	lastLevel := t.levels - 1

	n := &t.root
	for level := uint8(0); ; level++ {
		octet := uint8(key >> ((lastLevel - level) * strideLen))
		if !n.bits.Test(octet) {
			return 0
		}

		if level == lastLevel {
			return n.leafBlock(wordIdx(octet))[slotIdx(octet)]
		}
		n = &n.nodeBlock(wordIdx(octet))[slotIdx(octet)]
	}
}

// Ceiling returns the value of the smallest stored key greater than
// or equal to key, or 0 if no such key exists. Keys compare as
// unsigned integers after the alignment shift.
func (t *Tree) Ceiling(key uint64) uint64 {
	_, value, _ := t.CeilingEntry(key)
	return value
}

// CeilingEntry is Ceiling with the successor key included: it returns
// the smallest stored key greater than or equal to key together with
// its value, ok is false if no such key exists.
func (t *Tree) CeilingEntry(key uint64) (ceil, value uint64, ok bool) {
	if key > t.rawMax {
		return 0, 0, false
	}
	skey, value, ok := t.ceiling(key >> t.shift)
	if !ok {
		return 0, 0, false
	}
	return skey << t.shift, value, true
}

// ceiling is the successor search on the shifted key domain.
//
// Phase one descends along the probe and records the trail of nodes.
// A full descent is the exact match. A clear presence bit stops the
// descent, phase two then scans the current presence vector for the
// lowest bit above the probe byte, backtracking along the trail with
// an incremented probe until a bit is found or the root is exhausted.
// From that bit the successor is the leftmost descent, taking the
// first set bit at every deeper level while assembling the key.
func (t *Tree) ceiling(key uint64) (skey, value uint64, ok bool) {
	lastLevel := t.levels - 1

	var trail [maxDepth]*node
	var octets [maxDepth]uint8

	// phase one, descent with recorded trail
	n := &t.root
	level := uint8(0)
	for ; ; level++ {
		octet := uint8(key >> ((lastLevel - level) * strideLen))
		trail[level], octets[level] = n, octet

		if !n.bits.Test(octet) {
			break
		}
		if level == lastLevel {
			// exact match
			return key, n.leafBlock(wordIdx(octet))[slotIdx(octet)], true
		}
		n = &n.nodeBlock(wordIdx(octet))[slotIdx(octet)]
	}

	// phase two, scan above the probe byte, backtrack on miss.
	// At level 0 only the significant bits of the top stride byte
	// are in play, the scan is clamped accordingly.
	var octet uint8
	for {
		limit := uint8(255)
		if level == 0 {
			limit = t.topMax
		}

		probe := octets[level]
		if probe < limit {
			if octet, ok = trail[level].bits.NextSetInRange(probe+1, limit); ok {
				break
			}
		}
		if level == 0 {
			return 0, 0, false
		}
		level--
	}

	// phase three, leftmost descent from the found bit,
	// assembling the successor key from the unchanged trail prefix
	for i := uint8(0); i < level; i++ {
		skey = skey<<strideLen | uint64(octets[i])
	}

	n = trail[level]
	for ; ; level++ {
		skey = skey<<strideLen | uint64(octet)

		if level == lastLevel {
			return skey, n.leafBlock(wordIdx(octet))[slotIdx(octet)], true
		}
		n = &n.nodeBlock(wordIdx(octet))[slotIdx(octet)]

		// a reachable subtree holds at least one key
		octet, _ = n.bits.FirstSet()
	}
}

// Delete removes key and returns its value, or 0 if the key is
// absent. Blocks emptied by the removal are returned to their slab,
// ascending towards the root as subtrees run empty.
func (t *Tree) Delete(key uint64) uint64 {
	if key > t.rawMax {
		return 0
	}
	key >>= t.shift

	lastLevel := t.levels - 1

	var trail [maxDepth]*node
	var octets [maxDepth]uint8

	// descent, any clear presence bit means the key is absent
	n := &t.root
	for level := uint8(0); ; level++ {
		octet := uint8(key >> ((lastLevel - level) * strideLen))
		if !n.bits.Test(octet) {
			return 0
		}
		trail[level], octets[level] = n, octet

		if level == lastLevel {
			break
		}
		n = &n.nodeBlock(wordIdx(octet))[slotIdx(octet)]
	}

	// take the value out of the leaf block
	octet := octets[lastLevel]
	block := n.leafBlock(wordIdx(octet))
	value := block[slotIdx(octet)]
	block[slotIdx(octet)] = 0
	t.size--

	// ascent reclamation, one slab release per emptied block.
	// Stops at the first node that still holds other keys.
	for level := int(lastLevel); level >= 0; level-- {
		n := trail[level]
		octet := octets[level]
		idx := wordIdx(octet)

		n.bits.Clear(octet)
		if n.bits[idx] == 0 {
			if level == int(lastLevel) {
				t.leaves.release(n.leafBlock(idx))
			} else {
				t.inner.release(n.nodeBlock(idx))
			}
			n.children[idx] = nil
		}
		if !n.bits.IsEmpty() {
			break
		}
	}
	return value
}

// All returns an iterator over all key/value pairs in ascending key
// order, driven by successive ceiling queries.
//
// The Tree must not be modified during the iteration.
func (t *Tree) All() iter.Seq2[uint64, uint64] {
	return func(yield func(uint64, uint64) bool) {
		skey, value, ok := t.ceiling(0)
		for ok {
			if !yield(skey<<t.shift, value) {
				return
			}
			if skey == t.geqMax {
				return
			}
			skey, value, ok = t.ceiling(skey + 1)
		}
	}
}

// Free tears down both slabs in one pass, releasing every block at
// once. The Tree must not be used afterwards.
func (t *Tree) Free() {
	t.inner.destroy()
	t.leaves.destroy()
	t.root = node{}
	t.size = 0
}

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
type noCopy struct{}

// Lock is a no-op used by copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
