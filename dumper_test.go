// Copyright (c) 2025 The uradix authors
// SPDX-License-Identifier: MIT

package uradix

import (
	"strings"
	"testing"
)

func TestDumperEmpty(t *testing.T) {
	t.Parallel()
	tree, err := New(16, 0)
	if err != nil {
		t.Fatal(err)
	}

	got := tree.dumpString()
	if !strings.Contains(got, "octets(#0):") {
		t.Errorf("dump of empty tree, missing empty octet list:\n%s", got)
	}
}

func TestDumper(t *testing.T) {
	t.Parallel()
	tree, err := New(16, 0)
	if err != nil {
		t.Fatal(err)
	}

	//nolint:errcheck
	tree.Insert(0x0100, 10)
	//nolint:errcheck
	tree.Insert(0x0200, 20)

	got := tree.dumpString()

	for _, want := range []string{
		"[NODE] level: 0 path: []",
		"octets(#2): 0x01 0x02",
		"[LEAF] level: 1 path: [0x01]",
		"[LEAF] level: 1 path: [0x02]",
		"->10",
		"->20",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("dump, missing %q:\n%s", want, got)
		}
	}
}
