// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diploid

import (
	"github.com/kortschak/diploid/bipartition"
	"github.com/kortschak/diploid/conflict"
)

// Result is Partition's successful return value. H0, H1, Unphased and
// Ambiguous are pairwise disjoint and their union is exactly the input
// Reads (spec.md §8), except that under UnphasedToBoth a read with no SNP
// evidence is in both H0 and H1. Each sub-slice preserves input order.
type Result struct {
	H0       Reads
	H1       Reads
	Unphased Reads

	// Ambiguous holds reads fragment intersection removed from the
	// conflict graph (spec.md §4.8): they carried conflicting SNP
	// evidence that no bipartition could resolve.
	Ambiguous Reads

	// Optimum is the final MFR objective value (|R| after fragment
	// intersection converges).
	Optimum int

	// Heuristic is true if the MFR solver hit its depth or wall-clock
	// cap on any invocation, meaning Optimum and the partition are not
	// certified minimal (spec.md §5).
	Heuristic bool

	// Graph and Coloring are the conflict graph and two-colouring that
	// produced H0/H1, kept for diagnostics (package debugplot). Both are
	// nil/empty when Partition never reached C4 (EmptyInput, MsaFailure,
	// AllColumnsFiltered).
	Graph    *conflict.Graph
	Coloring bipartition.Coloring
}
