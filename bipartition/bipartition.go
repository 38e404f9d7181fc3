// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bipartition two-colours a bipartite conflict graph into the
// two haplotype sets (spec.md §4.8). It must only be run once fragment
// intersection has certified the graph is free of odd cycles.
package bipartition

import (
	"sort"

	"github.com/kortschak/diploid/conflict"
	"gonum.org/v1/gonum/graph/topo"
)

// Coloring is the two-colouring of a bipartite graph's vertices: color
// false is H0, color true is H1.
type Coloring map[int]bool

// Color two-colours g by BFS/DFS from each connected component's
// lowest-id vertex, coloured false (H0). Grounded on
// cmd/press/press.go's use of topo.ConnectedComponents for component
// discovery, composed with a per-component BFS walk.
//
// Color assumes g is bipartite; if it is not (an odd cycle remains), the
// two-colouring it produces is inconsistent and the caller must treat
// that as an internal invariant violation (spec.md §7).
func Color(g *conflict.Graph) (Coloring, bool) {
	underlying := g.Underlying()
	components := topo.ConnectedComponents(underlying)

	coloring := make(Coloring, g.NumVertices())
	consistent := true

	for _, comp := range components {
		ids := make([]int, len(comp))
		for i, n := range comp {
			ids[i] = int(n.ID())
		}
		sort.Ints(ids)
		root := ids[0]

		coloring[root] = false
		queue := []int{root}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range g.Neighbors(cur) {
				want := !coloring[cur]
				if c, seen := coloring[nb]; seen {
					if c != want {
						consistent = false
					}
					continue
				}
				coloring[nb] = want
				queue = append(queue, nb)
			}
		}
	}

	return coloring, consistent
}

// Split partitions g's vertices into H0 (color false) and H1 (color
// true), each in ascending vertex-id order.
func Split(c Coloring) (h0, h1 []int) {
	for v := range c {
		if c[v] {
			h1 = append(h1, v)
		} else {
			h0 = append(h0, v)
		}
	}
	sort.Ints(h0)
	sort.Ints(h1)
	return h0, h1
}
