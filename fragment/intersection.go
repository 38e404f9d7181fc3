// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fragment implements fragment intersection (spec.md §4.7): the
// repeated identification and removal of reads that lie in some minimum
// fragment removal set, leaving the conflict graph bipartite.
package fragment

import (
	"sync"

	"github.com/kortschak/diploid/conflict"
	"github.com/kortschak/diploid/mfr"
	"github.com/kortschak/diploid/vertexset"
	"github.com/kortschak/diploid/workpool"
)

// Result reports the outcome of Intersect.
type Result struct {
	// Removed is the union, across every round, of vertices deleted from
	// g because they lie in some minimum removal set (the source's
	// deletion set D, accumulated).
	Removed vertexset.Set
	// Optimum is the final Optima(G, ∅) value once no vertex qualifies
	// for further removal (i.e. G is bipartite, Optimum == 0, unless
	// Heuristic is set).
	Optimum int
	// Heuristic reports whether any Optima call hit the depth or
	// wall-clock cap, meaning Optimum and Removed are not certified
	// minimal (spec.md §5's cancellation policy).
	Heuristic bool
}

// Intersect mutates g in place, repeatedly computing s = Optima(G, ∅)
// then, for every remaining vertex v, s_v = Optima(G, {v}); any v with
// s_v = s is removed. This matches original_source/src/mfr.cpp's
// FragmentIntersection: the test is "v lies in some minimum removal
// set", not "v lies in every minimum removal set" (spec.md §4.7's
// correctness note) — preserved here deliberately, not tightened.
//
// If pool is non-nil, the per-vertex Optima calls of step 2 run
// concurrently, each with its own Solver and memo (spec.md §5 permits
// either independent memos or one shared behind a mutex; independent
// memos avoid lock contention at the cost of repeated work already
// bounded by seed and graph size).
func Intersect(g *conflict.Graph, seed int64, opts mfr.Options, pool *workpool.Pool) Result {
	var removed vertexset.Set
	var heuristic bool
	optimum := 0

	for {
		vertices := g.Vertices()
		if len(vertices) == 0 {
			optimum = 0
			break
		}

		z := mfr.NewTable(vertices, seed)
		base := mfr.NewSolver(g, z, opts)
		s := base.Optima(vertexset.Set{}, mfr.Infinity)
		heuristic = heuristic || base.Heuristic
		optimum = s
		if s == 0 {
			break
		}

		d, dHeuristic := deletionSet(g, z, opts, s, vertices, pool)
		heuristic = heuristic || dHeuristic
		if d.Len() == 0 {
			break
		}
		for _, v := range d.Slice() {
			removed.Add(v)
			g.RemoveVertex(v)
		}
	}

	return Result{Removed: removed, Optimum: optimum, Heuristic: heuristic}
}

// deletionSet computes D = {v : Optima(G, {v}) == s} (spec.md §4.7 step 2).
func deletionSet(g *conflict.Graph, z mfr.Table, opts mfr.Options, s int, vertices []int, pool *workpool.Pool) (vertexset.Set, bool) {
	qualifies := make([]bool, len(vertices))
	var mu sync.Mutex
	var heuristic bool

	fns := make([]func(), len(vertices))
	for i, v := range vertices {
		i, v := i, v
		fns[i] = func() {
			solver := mfr.NewSolver(g, z, opts)
			sv := solver.Optima(vertexset.Of(v), mfr.Infinity)
			qualifies[i] = sv == s
			if solver.Heuristic {
				mu.Lock()
				heuristic = true
				mu.Unlock()
			}
		}
	}
	pool.Run(fns)

	var d vertexset.Set
	for i, v := range vertices {
		if qualifies[i] {
			d.Add(v)
		}
	}
	return d, heuristic
}
