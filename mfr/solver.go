// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfr

import (
	"time"

	"github.com/kortschak/diploid/oddcycle"
	"github.com/kortschak/diploid/vertexset"
)

// Infinity stands in for the "+∞" bound return of spec.md §4.6's Optima
// pseudocode; it is the largest representable int rather than
// math.MaxInt (absent before Go 1.17) to keep the module buildable under
// this module's go 1.13 floor.
const Infinity = int(^uint(0) >> 1)

// Options bounds the branch-and-bound search (spec.md §4.6's hard cap).
type Options struct {
	MaxBranchDepth int
	Timeout        time.Duration
}

// DefaultOptions returns the thresholds from spec.md §6.
func DefaultOptions() Options {
	return Options{MaxBranchDepth: 64, Timeout: 30 * time.Second}
}

type memoEntry struct {
	r vertexset.Set
	n int
}

type memo map[uint64][]memoEntry

func (m memo) lookup(hash uint64, r vertexset.Set) (int, bool) {
	for _, e := range m[hash] {
		if e.r.Equal(r) {
			return e.n, true
		}
	}
	return 0, false
}

func (m memo) store(hash uint64, r vertexset.Set, n int) {
	m[hash] = append(m[hash], memoEntry{r: r.Clone(), n: n})
}

// Solver runs Optima over a fixed graph and Zobrist table, accumulating a
// memo across calls within one FragmentIntersection invocation (spec.md
// §4.6's memoization scope).
type Solver struct {
	g        oddcycle.Graph
	z        Table
	memo     memo
	opts     Options
	deadline time.Time

	// Heuristic is set once the depth or wall-clock cap is hit, meaning
	// at least one branch returned an unproven incumbent rather than a
	// certified optimum (spec.md §5's cancellation policy).
	Heuristic bool

	// Invocations counts calls to Optima with a non-empty R, exposed so
	// tests can verify the memo is cutting down the search (spec.md §8
	// scenario 5).
	Invocations int
}

// NewSolver constructs a Solver. The deadline starts running immediately;
// construct a Solver right before use.
func NewSolver(g oddcycle.Graph, z Table, opts Options) *Solver {
	return &Solver{
		g:        g,
		z:        z,
		memo:     make(memo),
		opts:     opts,
		deadline: time.Now().Add(opts.Timeout),
	}
}

// Optima implements spec.md §4.6's branch-and-bound recursion, with both
// named source bugs corrected: the hash is always over Zobrist table
// values (never raw ids, enforced by Table.Hash's signature), and the
// memo is looked up and stored under the same pre-branch R — the R
// passed into this call, never a mutated copy from inside the loop.
func (s *Solver) Optima(r vertexset.Set, best int) int {
	if r.Len() > 0 {
		s.Invocations++
	}
	if r.Len() >= best {
		return Infinity
	}
	if r.Len() >= s.opts.MaxBranchDepth || time.Now().After(s.deadline) {
		s.Heuristic = true
		return best
	}

	cycle, found := oddcycle.Find(s.g, r)
	if !found {
		return r.Len()
	}

	hash := s.z.Hash(r)
	if n, ok := s.memo.lookup(hash, r); ok {
		return n
	}

	n := best
	for _, v := range cycle {
		branch := r.Clone()
		branch.Add(v)
		n = min(n, s.Optima(branch, min(n, best)))
	}
	s.memo.store(hash, r, n)
	return n
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
