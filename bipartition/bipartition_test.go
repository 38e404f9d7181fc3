// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bipartition

import (
	"reflect"
	"testing"

	"github.com/kortschak/diploid/conflict"
	"github.com/kortschak/diploid/snpmatrix"
)

func TestColorK22(t *testing.T) {
	m := &snpmatrix.Matrix{
		Rows: [][]int8{
			{1, 1, 1},
			{1, 1, 1},
			{-1, -1, -1},
			{-1, -1, -1},
		},
	}
	g := conflict.Build(m, nil)
	c, ok := Color(g)
	if !ok {
		t.Fatal("K2,2 is bipartite, coloring must be consistent")
	}
	h0, h1 := Split(c)
	if !reflect.DeepEqual(h0, []int{0, 1}) && !reflect.DeepEqual(h0, []int{2, 3}) {
		t.Fatalf("unexpected H0: %v", h0)
	}
	if !reflect.DeepEqual(h1, []int{0, 1}) && !reflect.DeepEqual(h1, []int{2, 3}) {
		t.Fatalf("unexpected H1: %v", h1)
	}
	if len(h0)+len(h1) != 4 {
		t.Fatalf("expected 4 colored vertices, got %d + %d", len(h0), len(h1))
	}
}

func TestColorIsIdempotent(t *testing.T) {
	m := &snpmatrix.Matrix{
		Rows: [][]int8{
			{1, 1, 1},
			{1, 1, 1},
			{-1, -1, -1},
			{-1, -1, -1},
		},
	}
	g := conflict.Build(m, nil)
	c1, _ := Color(g)
	c2, _ := Color(g)
	h0a, h1a := Split(c1)
	h0b, h1b := Split(c2)
	if !reflect.DeepEqual(h0a, h0b) || !reflect.DeepEqual(h1a, h1b) {
		t.Fatal("re-coloring the same graph must give the same sets")
	}
}

func TestColorDisconnectedComponentsEachRootedLowestID(t *testing.T) {
	m := &snpmatrix.Matrix{
		Rows: [][]int8{
			{1, -1, 0, 0},
			{-1, 1, 0, 0},
			{0, 0, 1, -1},
			{0, 0, -1, 1},
		},
	}
	g := conflict.Build(m, nil)
	c, ok := Color(g)
	if !ok {
		t.Fatal("two disjoint edges are bipartite")
	}
	if c[0] != false || c[2] != false {
		t.Fatalf("lowest-id vertex of each component must be colored H0 (false), got c[0]=%v c[2]=%v", c[0], c[2])
	}
}
