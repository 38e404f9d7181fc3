// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mfr implements the minimum fragment removal branch-and-bound
// solver (spec.md §4.6): the smallest vertex set R whose removal leaves
// the conflict graph bipartite.
package mfr

import (
	"math/rand"

	"github.com/kortschak/diploid/vertexset"
)

// Table is a Zobrist table: one uniformly random tag per vertex id, used
// for O(1) incremental hashing of removed-vertex sets. Grounded on
// original_source/src/mfr.hpp's GenZobrist/CalcHash, with the hash-XOR
// bug (spec.md §4.6) corrected: every tag in the table is combined, never
// a raw vertex id.
type Table []uint64

// NewTable builds a Table large enough to index every id in vertices,
// deterministically seeded so that two runs with the same seed produce
// identical hashes (spec.md §8's round-trip property).
func NewTable(vertices []int, seed int64) Table {
	max := -1
	for _, v := range vertices {
		if v > max {
			max = v
		}
	}
	t := make(Table, max+1)
	src := rand.New(rand.NewSource(seed))
	for i := range t {
		t[i] = src.Uint64()
	}
	return t
}

// Hash returns XOR_{v in r} t[v]. hash(∅) = 0 and hash(R ∪ {v}) =
// hash(R) ^ t[v] (spec.md §8).
func (t Table) Hash(r vertexset.Set) uint64 {
	var h uint64
	for _, v := range r.Slice() {
		h ^= t[v]
	}
	return h
}
