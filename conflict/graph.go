// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conflict builds and represents the fragment conflict graph of
// spec.md §3/§4.4: an undirected graph over read ids, with an edge
// between two reads whenever they disagree (one +1, one -1) at some
// heterozygous column.
package conflict

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Graph is the conflict graph G = (V, E). It wraps a gonum
// simple.UndirectedGraph, the way cmd/press's thresholdGraph does, with
// node IDs equal to dense read_id values (spec.md §9's "dense
// vector-of-sets keyed by id").
type Graph struct {
	g *simple.UndirectedGraph
}

// New returns an empty conflict graph.
func New() *Graph {
	return &Graph{g: simple.NewUndirectedGraph()}
}

// AddVertex ensures id is present in the graph, with no adjacency if it is
// new. Spec.md §4.4: vertices with nonzero SNP entries but no edges are
// still stored with empty adjacency.
func (g *Graph) AddVertex(id int) {
	n := int64(id)
	if g.g.Node(n) == nil {
		g.g.AddNode(simple.Node(n))
	}
}

// Connect adds the undirected edge (u, v), adding either endpoint as a
// vertex first if necessary. It is idempotent.
func (g *Graph) Connect(u, v int) {
	if u == v {
		return
	}
	g.AddVertex(u)
	g.AddVertex(v)
	un, vn := int64(u), int64(v)
	if !g.g.HasEdgeBetween(un, vn) {
		g.g.SetEdge(simple.Edge{F: simple.Node(un), T: simple.Node(vn)})
	}
}

// HasVertex reports whether id is a vertex of the graph.
func (g *Graph) HasVertex(id int) bool {
	return g.g.Node(int64(id)) != nil
}

// HasEdge reports whether (u, v) is an edge of the graph.
func (g *Graph) HasEdge(u, v int) bool {
	return g.g.HasEdgeBetween(int64(u), int64(v))
}

// Neighbors returns the sorted neighbours of id. It returns nil if id is
// not a vertex.
func (g *Graph) Neighbors(id int) []int {
	if g.g.Node(int64(id)) == nil {
		return nil
	}
	nodes := graph.NodesOf(g.g.From(int64(id)))
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = int(n.ID())
	}
	sort.Ints(out)
	return out
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id int) int {
	if g.g.Node(int64(id)) == nil {
		return 0
	}
	return g.g.From(int64(id)).Len()
}

// Vertices returns the sorted vertex ids of the graph.
func (g *Graph) Vertices() []int {
	nodes := graph.NodesOf(g.g.Nodes())
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = int(n.ID())
	}
	sort.Ints(out)
	return out
}

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int { return g.g.Nodes().Len() }

// RemoveVertex deletes id and every edge incident to it, preserving
// adjacency symmetry.
func (g *Graph) RemoveVertex(id int) {
	g.g.RemoveNode(int64(id))
}

// Underlying exposes the gonum graph for packages (bipartition) that need
// gonum's traversal/analysis algorithms directly.
func (g *Graph) Underlying() graph.Undirected { return g.g }

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	out := New()
	for _, v := range g.Vertices() {
		out.AddVertex(v)
	}
	for _, v := range g.Vertices() {
		for _, nb := range g.Neighbors(v) {
			if nb > v {
				out.Connect(v, nb)
			}
		}
	}
	return out
}

// checkSymmetric panics via the diploid package's invariant mechanism is
// intentionally not done here: conflict is a leaf package with no
// dependency on diploid's error types. Callers that need the invariant
// check (spec.md §8) use AssertSymmetric.
func (g *Graph) AssertSymmetric() bool {
	for _, u := range g.Vertices() {
		for _, v := range g.Neighbors(u) {
			if !g.HasEdge(v, u) {
				return false
			}
		}
	}
	return true
}
