// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conflict

import (
	"reflect"
	"testing"

	"github.com/kortschak/diploid/snpmatrix"
	"github.com/kortschak/diploid/workpool"
)

func TestBuildK22(t *testing.T) {
	m := &snpmatrix.Matrix{
		Rows: [][]int8{
			{1, 1, 1},
			{1, 1, 1},
			{-1, -1, -1},
			{-1, -1, -1},
		},
	}
	g := Build(m, nil)
	if !g.AssertSymmetric() {
		t.Fatal("graph is not symmetric")
	}
	for _, pair := range [][2]int{{0, 2}, {0, 3}, {1, 2}, {1, 3}} {
		if !g.HasEdge(pair[0], pair[1]) {
			t.Errorf("missing edge %v", pair)
		}
	}
	for _, pair := range [][2]int{{0, 1}, {2, 3}} {
		if g.HasEdge(pair[0], pair[1]) {
			t.Errorf("unexpected edge %v", pair)
		}
	}
}

func TestBuildTriangle(t *testing.T) {
	// Three reads disagreeing pairwise at one SNP each: a triangle.
	m := &snpmatrix.Matrix{
		Rows: [][]int8{
			{1, -1, 0},
			{-1, 0, 1},
			{0, 1, -1},
		},
	}
	g := Build(m, nil)
	for _, pair := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
		if !g.HasEdge(pair[0], pair[1]) {
			t.Errorf("missing edge %v", pair)
		}
	}
}

func TestBuildParallelMatchesSequential(t *testing.T) {
	rows := make([][]int8, 0, 40)
	for i := 0; i < 20; i++ {
		rows = append(rows, []int8{1, 1, 1})
		rows = append(rows, []int8{-1, -1, -1})
	}
	m := &snpmatrix.Matrix{Rows: rows}

	seq := Build(m, nil)
	pool := workpool.New(4)
	defer pool.Close()
	par := Build(m, pool)

	if !reflect.DeepEqual(seq.Vertices(), par.Vertices()) {
		t.Fatalf("vertex sets differ: %v vs %v", seq.Vertices(), par.Vertices())
	}
	for _, v := range seq.Vertices() {
		if !reflect.DeepEqual(seq.Neighbors(v), par.Neighbors(v)) {
			t.Fatalf("neighbors of %d differ: %v vs %v", v, seq.Neighbors(v), par.Neighbors(v))
		}
	}
}

func TestIsolatedNoisyReadHasNoEdges(t *testing.T) {
	m := &snpmatrix.Matrix{
		Rows: [][]int8{
			{1, 1, 1},
			{1, 1, 1},
			{-1, -1, -1},
			{-1, -1, -1},
			{0, 0, 0},
		},
	}
	g := Build(m, nil)
	if g.HasVertex(4) {
		t.Fatalf("read with all-zero SNP row should not be a vertex")
	}
}
