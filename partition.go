// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diploid

import (
	"context"

	"github.com/kortschak/diploid/bipartition"
	"github.com/kortschak/diploid/conflict"
	"github.com/kortschak/diploid/fragment"
	"github.com/kortschak/diploid/mfr"
	"github.com/kortschak/diploid/msa"
	"github.com/kortschak/diploid/oddcycle"
	"github.com/kortschak/diploid/snpmatrix"
	"github.com/kortschak/diploid/vertexset"
	"github.com/kortschak/diploid/workpool"
)

// Partition runs the three-stage pipeline (doc.go) over reads: it builds
// an MSA via eng, derives a SNP matrix and conflict graph, finds a
// minimum fragment removal set, and two-colours what remains into H0 and
// H1. pool is an optional collaborator for the parallel regions of
// spec.md §5 (conflict-graph construction, per-vertex Optima fan-out in
// fragment intersection); it is used only when opts.Parallel is true.
//
// Grounded on original_source/src/diploid.cpp's Partition (phase order
// and log lines) and loopy.go's main (sequential, error-checked steps),
// generalised to return a structured Result/error pair instead of
// exiting the process, and completed past the source's stub return: the
// source's Partition never two-colours its conflict graph (it returns an
// empty DiploidSequences{}); spec.md §4.8 requires finishing that step.
func Partition(ctx context.Context, reads Reads, eng msa.Engine, pool *workpool.Pool, sc msa.Scoring, opts Options) (result Result, err error) {
	defer recoverInvariant(&err)

	if len(reads) == 0 {
		return Result{}, newError(EmptyInput, nil)
	}
	if len(reads) == 1 {
		// A lone read has nothing to be split from: it is all of H0.
		return Result{H0: Reads{reads[0]}}, nil
	}

	opts.logf("[diploid.Partition] aligning sequences")
	rows, alignErr := eng.Align(ctx, reads.sequences(), sc)
	if alignErr != nil {
		return Result{}, newError(MsaFailure, alignErr)
	}
	if len(rows) != len(reads) {
		invariantf("msa engine returned %d rows for %d reads", len(rows), len(reads))
	}

	matrix := snpmatrix.Build(rows, snpmatrix.Options{
		MinDepth:     opts.MinDepth,
		MaxErr:       opts.MaxErr,
		MinSecondary: opts.MinSecondary,
		LogSites:     opts.LogSites,
		Logger:       opts.Logger,
	})
	opts.logf("[diploid.Partition] built SNP matrix")

	if len(matrix.Sites) == 0 {
		return allUnphased(reads), newError(AllColumnsFiltered, nil)
	}

	var cpool *workpool.Pool
	if opts.Parallel {
		cpool = pool
	}

	g := conflict.Build(matrix, cpool)
	opts.logf("[diploid.Partition] building fragment conflict graph")

	if !hasAnyEdge(g) {
		trivial := assemble(reads, nil, nil, vertexset.Set{}, opts)
		trivial.Graph = g
		return trivial, newError(GraphDisconnectedAndTrivial, nil)
	}

	fres := fragment.Intersect(g, opts.Seed, mfr.Options{
		MaxBranchDepth: opts.MaxBranchDepth,
		Timeout:        opts.MFRTimeout,
	}, cpool)
	opts.logf("[diploid.Partition] MFR optimum = %d", fres.Optimum)

	if !g.AssertSymmetric() {
		invariantf("conflict graph adjacency is asymmetric after fragment intersection")
	}
	if cyc, found := oddcycle.Find(g, vertexset.Set{}); found {
		invariantf("conflict graph retains an odd cycle after fragment intersection: %v", cyc)
	}

	coloring, consistent := bipartition.Color(g)
	if !consistent {
		invariantf("two-coloring inconsistent on a graph certified bipartite")
	}
	h0ids, h1ids := bipartition.Split(coloring)

	result = assemble(reads, h0ids, h1ids, fres.Removed, opts)
	result.Optimum = fres.Optimum
	result.Heuristic = fres.Heuristic
	result.Graph = g
	result.Coloring = coloring

	if fres.Heuristic {
		return result, newError(MfrTimeout, nil)
	}
	return result, nil
}

func hasAnyEdge(g *conflict.Graph) bool {
	for _, v := range g.Vertices() {
		if g.Degree(v) > 0 {
			return true
		}
	}
	return false
}

// allUnphased is the hardcoded AllColumnsFiltered outcome (spec.md §7):
// every read is unphased and both haplotype sets are empty, independent
// of Options.UnphasedTo — there is no SNP evidence anywhere to route.
func allUnphased(reads Reads) Result {
	out := make(Reads, len(reads))
	copy(out, reads)
	return Result{Unphased: out}
}

// assemble classifies every read by its fate: removed by fragment
// intersection (Ambiguous), coloured H0/H1, or never entered V
// (routed through opts.UnphasedTo). h0ids and h1ids may be nil, which
// routes every read with SNP evidence through the unphased policy too —
// spec.md §4.8's "no edges ⇒ all reads assigned to H0 (or all
// unphased)" for the disconnected-and-trivial case.
//
// h0ids, h1ids and ambiguous are conflict-graph vertex ids, which are
// positions in reads (the order Align was called with), not Read.ID —
// snpmatrix.Matrix.NonZeroReads documents vertex ids as "indices into the
// row slice", and Read.ID is caller-assigned and need not be dense or
// match its position (e.g. after readset.Window narrows a sparse-ID
// subset). assemble must therefore classify by position and only use
// Read.ID when emitting the read itself.
func assemble(reads Reads, h0ids, h1ids []int, ambiguous vertexset.Set, opts Options) Result {
	h0set := toSet(h0ids)
	h1set := toSet(h1ids)

	var res Result
	for i, r := range reads {
		switch {
		case ambiguous.Has(i):
			res.Ambiguous = append(res.Ambiguous, r)
		case h0set[i]:
			res.H0 = append(res.H0, r)
		case h1set[i]:
			res.H1 = append(res.H1, r)
		default:
			switch opts.UnphasedTo {
			case UnphasedToH0:
				res.H0 = append(res.H0, r)
			case UnphasedToBoth:
				res.H0 = append(res.H0, r)
				res.H1 = append(res.H1, r)
			case UnphasedToNeither:
				res.Unphased = append(res.Unphased, r)
			}
		}
	}
	return res
}

func toSet(ids []int) map[int]bool {
	m := make(map[int]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}
