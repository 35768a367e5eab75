// Copyright (c) 2025 The uradix authors
// SPDX-License-Identifier: MIT

package uradix

import (
	"fmt"
	"io"
	"strings"
)

// dumpString is just a wrapper for dump.
func (t *Tree) dumpString() string {
	w := new(strings.Builder)
	t.dump(w)
	return w.String()
}

// dump the trie to w.
// Useful during development and debugging.
//
//	Output:
//
//	[NODE] level: 0 path: []
//	octets(#2): 0x01 0x02
//
//	.[LEAF] level: 1 path: [0x01]
//	.octets(#1): 0x00
//	.values(#1): [0x01]_00->10
//
//	.[LEAF] level: 1 path: [0x02]
//	.octets(#1): 0x00
//	.values(#1): [0x02]_00->20
func (t *Tree) dump(w io.Writer) {
	t.dumpRec(w, &t.root, nil)
}

// dumpRec, rec-descent the trie.
func (t *Tree) dumpRec(w io.Writer, n *node, path []uint8) {
	n.dump(w, path, len(path) == int(t.levels)-1)

	if len(path) == int(t.levels)-1 {
		return
	}
	for _, octet := range n.bits.All() {
		child := &n.nodeBlock(wordIdx(octet))[slotIdx(octet)]
		t.dumpRec(w, child, append(path, octet))
	}
}

// dump the node to w.
func (n *node) dump(w io.Writer, path []uint8, isLeafLevel bool) {
	indent := strings.Repeat(".", len(path))

	kind := "NODE"
	if isLeafLevel {
		kind = "LEAF"
	}
	fmt.Fprintf(w, "\n%s[%s] level: %d path: %s\n", indent, kind, len(path), pathString(path))

	octets := n.bits.All()
	fmt.Fprintf(w, "%soctets(#%d):", indent, len(octets))
	for _, octet := range octets {
		fmt.Fprintf(w, " 0x%02x", octet)
	}
	fmt.Fprintln(w)

	if !isLeafLevel {
		return
	}
	fmt.Fprintf(w, "%svalues(#%d):", indent, len(octets))
	for _, octet := range octets {
		value := n.leafBlock(wordIdx(octet))[slotIdx(octet)]
		fmt.Fprintf(w, " %s_%02x->%d", pathString(path), octet, value)
	}
	fmt.Fprintln(w)
}

func pathString(path []uint8) string {
	if len(path) == 0 {
		return "[]"
	}
	parts := make([]string, 0, len(path))
	for _, octet := range path {
		parts = append(parts, fmt.Sprintf("0x%02x", octet))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
