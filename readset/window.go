// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package readset narrows a candidate read set down to the reads whose
// alignment span overlaps a target genomic window, the shape of input
// the partitioning core expects (spec.md §3: "practical graphs are small
// because reads cover narrow genomic windows"). Grounded on
// cmd/rinse/rinse.go and cmd/press-global/press_global.go's
// interval.IntTree-backed overlap queries, retargeted from GFF repeat
// annotations to read alignment spans.
package readset

import (
	"github.com/biogo/store/interval"
	"github.com/kortschak/diploid"
)

// Span is a read's alignment footprint on a reference sequence.
type Span struct {
	Read       diploid.Read
	Start, End int
}

func (s Span) ID() uintptr { return uintptr(s.Read.ID) }

func (s Span) Range() interval.IntRange {
	return interval.IntRange{Start: s.Start, End: s.End}
}

// Overlap reports half-open interval overlap, matching
// rinse.go/press_global.go's gffInterval.Overlap.
func (s Span) Overlap(b interval.IntRange) bool {
	return s.End > b.Start && s.Start < b.End
}

// Window indexes a set of read spans for fast overlap queries against
// one reference sequence.
type Window struct {
	tree *interval.IntTree
}

// NewWindow builds a Window over spans. Spans must share a reference
// sequence; callers windowing multiple references build one Window per
// sequence, as rinse.go/press_global.go key their tree maps by sequence
// name.
func NewWindow(spans []Span) *Window {
	t := &interval.IntTree{}
	for _, s := range spans {
		t.Insert(s, true)
	}
	t.AdjustRanges()
	return &Window{tree: t}
}

// Reads returns, in ascending read-id order, every read whose span
// overlaps [start, end).
func (w *Window) Reads(start, end int) []diploid.Read {
	hits := w.tree.Get(Span{Start: start, End: end})
	out := make([]diploid.Read, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(Span).Read)
	}
	sortReads(out)
	return out
}

func sortReads(rs []diploid.Read) {
	for i := 1; i < len(rs); i++ {
		for j := i; j > 0 && rs[j].ID < rs[j-1].ID; j-- {
			rs[j], rs[j-1] = rs[j-1], rs[j]
		}
	}
}
