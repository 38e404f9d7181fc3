// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package readsource extracts reads overlapping a reference region from
// a coordinate-sorted BAM file, restoring the BAM-input CLI mode dropped
// from the distilled spec (spec.md §6's host CLI surface is FASTA/read-
// list oriented; original_source/src/main.cpp also accepts alignments).
// Grounded on cmd/reefer/reefer.go and cmd/wring/wring.go's use of
// github.com/biogo/hts/bam and github.com/biogo/hts/sam.
package readsource

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"

	"github.com/kortschak/diploid"
	"github.com/kortschak/diploid/readset"
)

// Region is a half-open reference interval to extract reads from.
type Region struct {
	Chrom      string
	Start, End int
}

// ReadRegion opens the BAM at path and returns every primary, mapped
// alignment record overlapping region, converted to diploid.Read in file
// order, alongside each read's genomic readset.Span. ID is assigned as
// the 0-based index of the record within the returned slice, matching
// spec.md §4.1's "caller-provided order is canonical".
//
// region is a coarse fetch filter, not the exact window Partition
// consumes: callers that want margin for reads whose alignment extends
// past the target window (e.g. to still observe a SNP site straddling
// the boundary) should widen region before calling ReadRegion and then
// narrow precisely with a readset.Window built from the returned spans,
// per spec.md §3's "reads are windowed to a target genomic region before
// MSA consumption".
func ReadRegion(path string, region Region) (diploid.Reads, []readset.Span, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("readsource: %w", err)
	}
	defer f.Close()

	br, err := bam.NewReader(f, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("readsource: %w", err)
	}
	defer br.Close()

	var reads diploid.Reads
	var spans []readset.Span
	for {
		r, err := br.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("readsource: %w", err)
		}
		if r.Flags&sam.Secondary != 0 || r.Flags&sam.Unmapped != 0 {
			continue
		}
		if r.Ref == nil || r.Ref.Name() != region.Chrom {
			continue
		}
		start, end := r.Start(), r.End()
		if !overlaps(start, end, region.Start, region.End) {
			continue
		}
		read := diploid.Read{ID: len(reads), Seq: string(r.Seq.Expand())}
		reads = append(reads, read)
		spans = append(spans, readset.Span{Read: read, Start: start, End: end})
	}
	return reads, spans, nil
}

// overlaps reports whether the half-open interval [start, end) intersects
// [regionStart, regionEnd).
func overlaps(start, end, regionStart, regionEnd int) bool {
	return end > regionStart && start < regionEnd
}
