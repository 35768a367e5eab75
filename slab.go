// Copyright (c) 2025 The uradix authors
// SPDX-License-Identifier: MIT

package uradix

import "unsafe"

// slab hands out fixed-size objects from a growing chain of arenas.
//
// Every arena owns a contiguous backing region and a LIFO stack of
// free object pointers into that region. Acquire pops from the current
// arena, falling back to the first arena in the chain with free slots,
// release routes the object back to its owning
// arena by address range. There is no per-object heap metadata and
// teardown is one pass over the arena chain.
//
// A slab is owned by exactly one Tree and inherits its
// single-threaded contract, there is no locking.
type slab[T any] struct {
	arenas  []*arena[T]
	current *arena[T] // fast path for acquire

	// new arenas are sized 2*initialCap, a deliberate growth cap so
	// that many small coexisting indexes don't balloon
	initialCap int
}

// arena is one contiguous region of objects plus the free stack
// managing them.
type arena[T any] struct {
	objs []T  // the backing region, len == cap
	free []*T // LIFO stack of free objects
	used int  // diagnostics, objects handed out and not yet released

	// address range [lo, hi) of the backing region,
	// used to route a release to its owning arena
	lo, hi uintptr
}

func newSlab[T any](initialCap int) slab[T] {
	s := slab[T]{initialCap: initialCap}
	a := newArena[T](initialCap)
	s.arenas = append(s.arenas, a)
	s.current = a
	return s
}

func newArena[T any](capacity int) *arena[T] {
	objs := make([]T, capacity)
	free := make([]*T, capacity)
	for i := range objs {
		free[i] = &objs[i]
	}

	lo := uintptr(unsafe.Pointer(&objs[0]))
	return &arena[T]{
		objs: objs,
		free: free,
		lo:   lo,
		hi:   lo + unsafe.Sizeof(objs[0])*uintptr(capacity),
	}
}

func (a *arena[T]) owns(obj *T) bool {
	p := uintptr(unsafe.Pointer(obj))
	return p >= a.lo && p < a.hi
}

// acquire returns a zeroed object. The current arena is the fast
// path, then the chain is searched for free slots, then the chain is
// grown by a fresh arena.
func (s *slab[T]) acquire() *T {
	a := s.current
	if a == nil || len(a.free) == 0 {
		a = nil
		for _, c := range s.arenas {
			if len(c.free) > 0 {
				a = c
				break
			}
		}
		if a == nil {
			a = newArena[T](2 * s.initialCap)
			s.arenas = append(s.arenas, a)
		}
		s.current = a
	}

	obj := a.free[len(a.free)-1]
	a.free = a.free[:len(a.free)-1]
	a.used++
	return obj
}

// release returns obj to its owning arena. Objects that belong to no
// arena are dropped, a release must never corrupt the chain.
func (s *slab[T]) release(obj *T) {
	for _, a := range s.arenas {
		if !a.owns(obj) {
			continue
		}
		if len(a.free) == cap(a.free) {
			return // double release, caller bug
		}

		// hand back zeroed memory, the acquire path relies on it
		var zero T
		*obj = zero

		a.free = append(a.free, obj)
		a.used--
		return
	}
}

// destroy drops the whole arena chain in one pass. The slab is
// unusable afterwards until reinitialized.
func (s *slab[T]) destroy() {
	s.arenas = nil
	s.current = nil
}

// stats returns the number of objects currently handed out and the
// total capacity of the arena chain.
func (s *slab[T]) stats() (live, capacity int) {
	for _, a := range s.arenas {
		live += a.used
		capacity += len(a.objs)
	}
	return live, capacity
}
