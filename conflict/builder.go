// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conflict

import (
	"github.com/kortschak/diploid/snpmatrix"
	"github.com/kortschak/diploid/workpool"
)

// edge is a discovered conflicting pair, used only to merge parallel scan
// results back in a deterministic order.
type edge struct{ u, v int }

// Build scans every pair of SNP-matrix rows and connects reads that
// disagree at some heterozygous column (spec.md §4.4). If pool is
// non-nil, the O(N²) pair scan is split into row-range partitions and run
// concurrently; edges are still inserted into the returned Graph in a
// single fixed (i, j) order after all partitions complete, so parallel
// discovery order never leaks into the graph's construction order
// (spec.md §5's ordering guarantee).
func Build(m *snpmatrix.Matrix, pool *workpool.Pool) *Graph {
	g := New()
	for _, id := range m.NonZeroReads() {
		g.AddVertex(id)
	}

	n := len(m.Rows)
	if n < 2 {
		return g
	}

	if pool == nil {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if conflicts(m.Rows[i], m.Rows[j]) {
					g.Connect(i, j)
				}
			}
		}
		return g
	}

	shards := shardRanges(n)
	results := make([][]edge, len(shards))
	var fns []func()
	for s, rng := range shards {
		s, rng := s, rng
		fns = append(fns, func() {
			var local []edge
			for i := rng[0]; i < rng[1]; i++ {
				for j := i + 1; j < n; j++ {
					if conflicts(m.Rows[i], m.Rows[j]) {
						local = append(local, edge{i, j})
					}
				}
			}
			results[s] = local
		})
	}
	pool.Run(fns)

	for _, shard := range results {
		for _, e := range shard {
			g.Connect(e.u, e.v)
		}
	}
	return g
}

// shardRanges splits [0, n) into contiguous row-index ranges, one per
// available CPU-ish shard. A fixed shard count of 8 balances parallelism
// against scheduling overhead for the modest N this core expects (spec.md
// §4.6's "practical graphs are small").
func shardRanges(n int) [][2]int {
	const shardCount = 8
	if n < shardCount {
		return [][2]int{{0, n}}
	}
	var out [][2]int
	size := (n + shardCount - 1) / shardCount
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		out = append(out, [2]int{start, end})
	}
	return out
}

// conflicts reports whether rows a and b disagree at some column: a
// witness k with a[k] + b[k] == 0 and both nonzero. It stops at the first
// witness, per spec.md §4.4's "finding one witness suffices".
func conflicts(a, b []int8) bool {
	for k := range a {
		if a[k] != 0 && a[k]+b[k] == 0 {
			return true
		}
	}
	return false
}
