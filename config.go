// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diploid

import (
	"log"
	"time"
)

// UnphasedPolicy controls which output set(s) reads with no SNP evidence
// are assigned to. The source does not settle this choice; spec.md
// documents it as a configuration point defaulting to H0.
type UnphasedPolicy int

const (
	// UnphasedToH0 places unphased reads in H0 (and not in
	// Result.Unphased). This is the default.
	UnphasedToH0 UnphasedPolicy = iota
	// UnphasedToNeither drops unphased reads from both haplotype sets;
	// they are only reported in Result.Unphased.
	UnphasedToNeither
	// UnphasedToBoth places unphased reads in both H0 and H1 (and not in
	// Result.Unphased).
	UnphasedToBoth
)

// Options carries the compile-time-default, overridable thresholds and
// knobs from spec.md §6.
type Options struct {
	// MinDepth is the minimum non-gap depth for a column to be
	// considered heterozygous.
	MinDepth int
	// MaxErr is the maximum error probability (1 - primary - secondary
	// frequency) for a column to be considered heterozygous.
	MaxErr float64
	// MinSecondary is the minimum secondary-base frequency for a column
	// to be considered heterozygous.
	MinSecondary float64

	// MaxBranchDepth caps MFR branch-and-bound recursion depth.
	MaxBranchDepth int
	// MFRTimeout caps MFR solver wall-clock time.
	MFRTimeout time.Duration

	// Seed seeds the Zobrist table's random generator. A fixed seed
	// makes Partition's output reproducible, per spec.md §8's
	// round-trip property.
	Seed int64

	// UnphasedTo selects which output set(s) unphased reads land in.
	UnphasedTo UnphasedPolicy

	// Parallel enables the optional parallel regions in C4 (conflict
	// graph construction) and C7 (per-vertex Optima fan-out) using Pool.
	Parallel bool

	// LogSites restores original_source's per-SNP-site diagnostic line
	// (read index, ungapped offset, base) via Logger.
	LogSites bool

	// DebugPlot records that the caller wants the conflict graph and
	// haplotype calls rendered via package debugplot. Partition does not
	// read it; cmd/diploid-partition sets it and renders the plots itself
	// when its -debug-plot flag is given.
	DebugPlot bool

	// Logger receives the phase progress messages from spec.md §6. A
	// nil Logger disables logging.
	Logger *log.Logger
}

// DefaultOptions returns the compile-time defaults from spec.md §6.
func DefaultOptions() Options {
	return Options{
		MinDepth:       5,
		MaxErr:         0.10,
		MinSecondary:   0.30,
		MaxBranchDepth: 64,
		MFRTimeout:     30 * time.Second,
		Seed:           1,
		UnphasedTo:     UnphasedToH0,
		Logger:         log.Default(),
	}
}

func (o Options) logf(format string, args ...interface{}) {
	if o.Logger == nil {
		return
	}
	o.Logger.Printf(format, args...)
}
