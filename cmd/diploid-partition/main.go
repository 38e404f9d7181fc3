// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command diploid-partition splits a set of long reads into two haplotype
// sets by multiple sequence alignment, SNP-column detection and minimum
// fragment removal, restoring the -diploid flag's behaviour from
// original_source/src/main.cpp as a standalone tool rather than a mode of
// a full assembler.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/kortschak/diploid"
	"github.com/kortschak/diploid/debugplot"
	"github.com/kortschak/diploid/msa"
	"github.com/kortschak/diploid/readset"
	"github.com/kortschak/diploid/readsource"
	"github.com/kortschak/diploid/workpool"
)

var (
	readsPath = flag.String("reads", "", "input FASTA file of reads (required unless -bam is set)")

	bamPath = flag.String("bam", "", "input coordinate-sorted BAM file (alternative to -reads)")
	chrom   = flag.String("chrom", "", "reference name to extract from -bam")
	start   = flag.Int("start", 0, "0-based region start for -bam")
	end     = flag.Int("end", 0, "0-based region end, exclusive, for -bam")
	flank   = flag.Int("flank", 0, "bp of margin to widen the -bam fetch region by before windowing exactly to -start/-end")

	poaPath = flag.String("poa", "", "path to a spoa-compatible partial-order aligner binary; empty uses an in-process fallback aligner")

	match    = flag.Int("match", 3, "score for matching bases")
	mismatch = flag.Int("mismatch", -5, "score for mismatching bases")
	gap      = flag.Int("gap", -4, "gap penalty (must be negative)")

	minDepth     = flag.Int("min-depth", 5, "minimum non-gap column depth to call a SNP site")
	maxErr       = flag.Float64("max-err", 0.10, "maximum error probability for a SNP site")
	minSecondary = flag.Float64("min-secondary", 0.30, "minimum secondary-base frequency for a SNP site")

	maxBranchDepth = flag.Int("max-branch-depth", 64, "branch-and-bound depth cap for the minimum fragment removal solver")
	mfrTimeout     = flag.Duration("mfr-timeout", 30*time.Second, "wall-clock cap for the minimum fragment removal solver")
	seed           = flag.Int64("seed", 1, "seed for the minimum fragment removal solver's Zobrist table")

	unphasedTo = flag.String("unphased", "h0", "where to place reads with no SNP evidence: h0, neither, or both")

	threads   = flag.Int("threads", 1, "number of goroutines for the parallel conflict-graph and fragment-removal stages")
	logSites  = flag.Bool("log-sites", false, "log each SNP site's read index, offset and base")
	debugPlot = flag.String("debug-plot", "", "if set, render the conflict graph to this image path (format inferred from extension); with -bam, also renders a haplotype ring along the genomic window to the same path with a -ring suffix")

	out = flag.String("out", "", "output file name (default stdout)")
)

func main() {
	flag.Parse()

	if *readsPath == "" && *bamPath == "" {
		fmt.Fprintln(os.Stderr, "invalid argument: one of -reads or -bam is required")
		flag.Usage()
		os.Exit(1)
	}
	if *bamPath != "" && *chrom == "" {
		fmt.Fprintln(os.Stderr, "invalid argument: -bam requires -chrom")
		flag.Usage()
		os.Exit(1)
	}

	policy, err := parseUnphasedPolicy(*unphasedTo)
	if err != nil {
		log.Fatalf("%v", err)
	}

	outStream := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("failed to create out file: %v", err)
		}
		defer f.Close()
		outStream = f
	}

	var reads diploid.Reads
	var spans []readset.Span
	if *bamPath != "" {
		fetchStart, fetchEnd := *start-*flank, *end+*flank
		log.Printf("diploid-partition: reading %q:%d-%d from %q (fetch margin %d)", *chrom, fetchStart, fetchEnd, *bamPath, *flank)
		reads, spans, err = readsource.ReadRegion(*bamPath, readsource.Region{Chrom: *chrom, Start: fetchStart, End: fetchEnd})
		if err == nil {
			reads = readset.NewWindow(spans).Reads(*start, *end)
			log.Printf("diploid-partition: windowed to %d reads over [%d,%d)", len(reads), *start, *end)
		}
	} else {
		log.Printf("diploid-partition: reading reads from %q", *readsPath)
		reads, err = loadFasta(*readsPath)
	}
	if err != nil {
		log.Fatalf("failed to load reads: %v", err)
	}

	var pool *workpool.Pool
	if *threads > 1 {
		pool = workpool.New(*threads)
		defer pool.Close()
	}

	var eng msa.Engine = msa.Naive{}
	if *poaPath != "" {
		eng = msa.POA{Cmd: *poaPath}
	}

	opts := diploid.DefaultOptions()
	opts.MinDepth = *minDepth
	opts.MaxErr = *maxErr
	opts.MinSecondary = *minSecondary
	opts.MaxBranchDepth = *maxBranchDepth
	opts.MFRTimeout = *mfrTimeout
	opts.Seed = *seed
	opts.UnphasedTo = policy
	opts.Parallel = *threads > 1
	opts.LogSites = *logSites
	opts.DebugPlot = *debugPlot != ""

	sc := msa.Scoring{Match: int8(*match), Mismatch: int8(*mismatch), Gap: int8(*gap)}

	log.Printf("diploid-partition: partitioning %d reads", len(reads))
	result, err := diploid.Partition(context.Background(), reads, eng, pool, sc, opts)
	if err != nil {
		var e *diploid.Error
		if !errors.As(err, &e) || e.Kind == diploid.EmptyInput || e.Kind == diploid.MsaFailure || e.Kind == diploid.InternalInvariant {
			log.Fatalf("failed to partition reads: %v", err)
		}
		log.Printf("diploid-partition: %v", err)
	}

	if err := writeResult(outStream, result); err != nil {
		log.Fatalf("failed to write result: %v", err)
	}

	if *debugPlot != "" {
		if result.Graph == nil {
			log.Printf("diploid-partition: skipping debug plot: no conflict graph was built")
		} else if err := debugplot.Render(result.Graph, result.Coloring, *debugPlot); err != nil {
			log.Printf("diploid-partition: debug plot: %v", err)
		}

		if *bamPath != "" {
			windowed := windowedSpans(spans, reads)
			ringPath := ringPlotPath(*debugPlot)
			if err := debugplot.RenderHaplotypeRing(windowed, *start, *end, result, ringPath); err != nil {
				log.Printf("diploid-partition: haplotype ring plot: %v", err)
			}
		}
	}
}

// windowedSpans restricts spans to the reads that survived windowing,
// preserving spans' order, so the haplotype ring only draws reads that
// actually reached Partition.
func windowedSpans(spans []readset.Span, reads diploid.Reads) []readset.Span {
	kept := make(map[int]bool, len(reads))
	for _, r := range reads {
		kept[r.ID] = true
	}
	out := make([]readset.Span, 0, len(reads))
	for _, s := range spans {
		if kept[s.Read.ID] {
			out = append(out, s)
		}
	}
	return out
}

// ringPlotPath derives the haplotype ring's output path from -debug-plot's
// path by inserting a "-ring" suffix before the extension, so both the
// conflict-graph node-link plot and the genomic-coordinate ring are kept
// as separate, non-overwriting images.
func ringPlotPath(debugPlotPath string) string {
	ext := filepath.Ext(debugPlotPath)
	base := strings.TrimSuffix(debugPlotPath, ext)
	return base + "-ring" + ext
}

// loadFasta reads path as FASTA and returns one diploid.Read per record,
// in file order, with ID assigned as the record's 0-based index.
// Grounded on loopy.go's fasta.NewReader/seqio.NewScanner/*linear.Seq
// scanning pattern.
func loadFasta(path string) (diploid.Reads, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA))
	sc := seqio.NewScanner(r)
	var reads diploid.Reads
	for sc.Next() {
		seq := sc.Seq().(*linear.Seq)
		reads = append(reads, diploid.Read{ID: len(reads), Seq: lettersToString(seq.Seq)})
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	return reads, nil
}

// lettersToString converts a biogo alphabet.Letters sequence to a plain
// string; Letters is a named byte slice type and so isn't directly
// convertible with a bare string() cast.
func lettersToString(l alphabet.Letters) string {
	b := make([]byte, len(l))
	for i, c := range l {
		b[i] = byte(c)
	}
	return string(b)
}

func parseUnphasedPolicy(s string) (diploid.UnphasedPolicy, error) {
	switch s {
	case "h0":
		return diploid.UnphasedToH0, nil
	case "neither":
		return diploid.UnphasedToNeither, nil
	case "both":
		return diploid.UnphasedToBoth, nil
	default:
		return 0, fmt.Errorf("invalid -unphased value %q: want h0, neither or both", s)
	}
}

func writeResult(w io.Writer, res diploid.Result) error {
	if err := writeSet(w, "H0", res.H0); err != nil {
		return err
	}
	if err := writeSet(w, "H1", res.H1); err != nil {
		return err
	}
	if err := writeSet(w, "unphased", res.Unphased); err != nil {
		return err
	}
	if err := writeSet(w, "ambiguous", res.Ambiguous); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "# optimum=%d heuristic=%t\n", res.Optimum, res.Heuristic)
	return err
}

func writeSet(w io.Writer, label string, reads diploid.Reads) error {
	for _, r := range reads {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\n", label, r.ID, r.Seq); err != nil {
			return err
		}
	}
	return nil
}
