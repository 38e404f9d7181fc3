// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vertexset provides a small ordered integer set used throughout
// the MFR solver as the "removed set" R (spec.md §3) and in fragment
// intersection as the deletion set D. Ordering is kept deterministic
// (sorted ascending) so that output and memo iteration never depend on Go
// map iteration order.
package vertexset

import "sort"

// Set is an ordered set of vertex ids. The zero value is an empty set.
type Set struct {
	ids []int
}

// Of returns a Set containing ids, deduplicated.
func Of(ids ...int) Set {
	var s Set
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Len returns the number of elements.
func (s Set) Len() int { return len(s.ids) }

func (s Set) search(id int) (int, bool) {
	i := sort.SearchInts(s.ids, id)
	return i, i < len(s.ids) && s.ids[i] == id
}

// Has reports whether id is in the set.
func (s Set) Has(id int) bool {
	_, ok := s.search(id)
	return ok
}

// Add inserts id, returning whether it was newly added.
func (s *Set) Add(id int) bool {
	i, ok := s.search(id)
	if ok {
		return false
	}
	s.ids = append(s.ids, 0)
	copy(s.ids[i+1:], s.ids[i:])
	s.ids[i] = id
	return true
}

// Remove deletes id, returning whether it was present.
func (s *Set) Remove(id int) bool {
	i, ok := s.search(id)
	if !ok {
		return false
	}
	s.ids = append(s.ids[:i], s.ids[i+1:]...)
	return true
}

// Slice returns the set's elements in ascending order. The returned slice
// must not be mutated.
func (s Set) Slice() []int { return s.ids }

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	ids := make([]int, len(s.ids))
	copy(ids, s.ids)
	return Set{ids: ids}
}

// Equal reports whether s and o contain the same elements.
func (s Set) Equal(o Set) bool {
	if len(s.ids) != len(o.ids) {
		return false
	}
	for i, id := range s.ids {
		if o.ids[i] != id {
			return false
		}
	}
	return true
}

// Key returns a comparable snapshot of s suitable for use as a map key (Go
// maps cannot key on slices directly).
func (s Set) Key() string {
	// A fixed-width (8 bytes per id) encoding avoids delimiter collisions
	// between adjacent ids without pulling in a new dependency for what
	// is, in practice, always a handful of small integers.
	b := make([]byte, 0, len(s.ids)*8)
	for _, id := range s.ids {
		u := uint64(id)
		for i := 0; i < 8; i++ {
			b = append(b, byte(u>>(8*i)))
		}
	}
	return string(b)
}
