// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragment

import (
	"testing"

	"github.com/kortschak/diploid/conflict"
	"github.com/kortschak/diploid/mfr"
	"github.com/kortschak/diploid/snpmatrix"
	"github.com/kortschak/diploid/workpool"
)

func triangleGraph() *conflict.Graph {
	m := &snpmatrix.Matrix{
		Rows: [][]int8{
			{1, -1, 0},
			{-1, 0, 1},
			{0, 1, -1},
		},
	}
	return conflict.Build(m, nil)
}

func bipartiteGraph() *conflict.Graph {
	m := &snpmatrix.Matrix{
		Rows: [][]int8{
			{1, 1, 1},
			{1, 1, 1},
			{-1, -1, -1},
			{-1, -1, -1},
		},
	}
	return conflict.Build(m, nil)
}

func TestIntersectAlreadyBipartiteRemovesNothing(t *testing.T) {
	g := bipartiteGraph()
	res := Intersect(g, 1, mfr.DefaultOptions(), nil)
	if res.Removed.Len() != 0 {
		t.Fatalf("expected no removals, got %v", res.Removed.Slice())
	}
	if res.Optimum != 0 {
		t.Fatalf("expected Optimum 0, got %d", res.Optimum)
	}
}

func TestIntersectTriangleRemovesOneVertex(t *testing.T) {
	g := triangleGraph()
	res := Intersect(g, 1, mfr.DefaultOptions(), nil)
	if res.Removed.Len() != 1 {
		t.Fatalf("expected exactly one vertex removed from a triangle, got %v", res.Removed.Slice())
	}
	if res.Optimum != 0 {
		t.Fatalf("expected final Optimum 0 once bipartite, got %d", res.Optimum)
	}
	if !res.Removed.Has(0) && !res.Removed.Has(1) && !res.Removed.Has(2) {
		t.Fatalf("removed vertex must be one of the triangle's own vertices")
	}
}

func TestIntersectParallelMatchesSequential(t *testing.T) {
	seqGraph := triangleGraph()
	seqRes := Intersect(seqGraph, 1, mfr.DefaultOptions(), nil)

	parGraph := triangleGraph()
	pool := workpool.New(2)
	defer pool.Close()
	parRes := Intersect(parGraph, 1, mfr.DefaultOptions(), pool)

	if seqRes.Removed.Len() != parRes.Removed.Len() {
		t.Fatalf("sequential and parallel runs removed different counts: %d vs %d",
			seqRes.Removed.Len(), parRes.Removed.Len())
	}
}
