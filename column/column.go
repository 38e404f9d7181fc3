// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package column computes per-MSA-column base-frequency statistics and
// decides the primary and secondary base at a column, the building block
// for heterozygous-column detection (spec.md §4.2).
package column

// Counts holds non-negative per-base tallies for one MSA column. Gaps are
// not represented here; callers exclude them before counting.
type Counts struct {
	A, C, G, T int
}

// Depth is the total non-gap depth of the column.
func (c Counts) Depth() int { return c.A + c.C + c.G + c.T }

func (c Counts) of(b byte) int {
	switch b {
	case 'A':
		return c.A
	case 'C':
		return c.C
	case 'G':
		return c.G
	case 'T':
		return c.T
	default:
		return 0
	}
}

// priority orders bases from lowest to highest tie-break preference, per
// spec.md §4.2: "ties broken by fixed priority A < T < G < C". On an exact
// count tie the base later in this list wins.
//
// original_source/src/diploid.cpp:40-61 actually breaks ties by taking
// std::max over pair<count,char>, i.e. ASCII ordinal order (A < C < G < T,
// T wins); this follows spec.md's explicit wording instead, which differs
// from that ordering on any tie among C, G and T.
var priority = [4]byte{'A', 'T', 'G', 'C'}

func rank(b byte) int {
	for i, p := range priority {
		if p == b {
			return i
		}
	}
	return -1
}

// argmax returns the base in candidates with the highest count, breaking
// ties using the fixed priority order.
func argmax(c Counts, candidates []byte) byte {
	best := candidates[0]
	bestCount := c.of(best)
	for _, b := range candidates[1:] {
		n := c.of(b)
		if n > bestCount || (n == bestCount && rank(b) > rank(best)) {
			best = b
			bestCount = n
		}
	}
	return best
}

// Info is the per-column statistics summary described in spec.md §3.
type Info struct {
	Primary, Secondary byte
	PrimaryFreq        float64
	SecondaryFreq      float64
	ErrProb            float64
	Depth              int
}

// Analyze computes Info from a column's base counts. If the column has
// zero depth, Primary/Secondary are still assigned deterministically (by
// priority alone) but both frequencies are zero and ErrProb is 1, which
// always fails the MIN_DEPTH threshold (spec.md §4.3).
func Analyze(c Counts) Info {
	all := []byte{'A', 'C', 'G', 'T'}
	primary := argmax(c, all)

	var rest []byte
	for _, b := range all {
		if b != primary {
			rest = append(rest, b)
		}
	}
	secondary := argmax(c, rest)

	depth := c.Depth()
	info := Info{Primary: primary, Secondary: secondary, Depth: depth}
	if depth == 0 {
		info.ErrProb = 1
		return info
	}
	info.PrimaryFreq = float64(c.of(primary)) / float64(depth)
	info.SecondaryFreq = float64(c.of(secondary)) / float64(depth)
	info.ErrProb = 1 - info.PrimaryFreq - info.SecondaryFreq
	return info
}

// Heterozygous reports whether info qualifies as a heterozygous column
// under the given thresholds (spec.md §3's three-threshold predicate).
func Heterozygous(info Info, minDepth int, maxErr, minSecondary float64) bool {
	return info.Depth >= minDepth && info.ErrProb <= maxErr && info.SecondaryFreq >= minSecondary
}
