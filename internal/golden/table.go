// Copyright (c) 2025 The uradix authors
// SPDX-License-Identifier: MIT

// Package golden implements a simple and slow ordered key/value
// table as a golden reference for uradix.
package golden

import (
	"cmp"
	"fmt"
	"slices"
)

// Table is a simple and slow ordered integer map, implemented as an
// unsorted slice of items.
type Table []Item

type Item struct {
	Key uint64
	Val uint64
}

func (item Item) String() string {
	return fmt.Sprintf("(%#x, %d)", item.Key, item.Val)
}

// Insert mimics the insert-or-existing contract: a present key is
// left unchanged and its value returned, an absent key is stored and
// 0 returned.
func (t *Table) Insert(key, val uint64) (existing uint64) {
	for _, item := range *t {
		if item.Key == key {
			return item.Val
		}
	}
	*t = append(*t, Item{key, val})
	return 0
}

// Delete removes key and returns its value, 0 if absent.
func (t *Table) Delete(key uint64) (val uint64) {
	for i, item := range *t {
		if item.Key == key {
			*t = slices.Delete(*t, i, i+1)
			return item.Val
		}
	}
	return 0
}

// Get returns the value stored under key, 0 if absent.
func (t Table) Get(key uint64) (val uint64) {
	for _, item := range t {
		if item.Key == key {
			return item.Val
		}
	}
	return 0
}

// Ceiling returns the item with the smallest key >= key.
func (t Table) Ceiling(key uint64) (ceil, val uint64, ok bool) {
	for _, item := range t {
		if item.Key < key {
			continue
		}
		if !ok || item.Key < ceil {
			ceil, val, ok = item.Key, item.Val, true
		}
	}
	return ceil, val, ok
}

// AllSorted returns all items in ascending key order.
func (t Table) AllSorted() []Item {
	result := slices.Clone(t)
	slices.SortFunc(result, func(a, b Item) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return result
}
