// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diploid implements the read-partitioning core of a long-read
// genome assembler: given a set of noisy long reads covering a diploid
// genome region, it decides for each read which of the two haplotypes it
// came from.
//
// The pipeline has three coupled stages. A multiple sequence alignment of
// all reads is scanned column by column for heterozygous sites (package
// column), producing a per-read signed indicator vector over those sites
// (package snpmatrix). Reads that disagree at some site are connected in a
// conflict graph (package conflict); the smallest vertex set whose removal
// makes that graph bipartite (packages oddcycle, mfr, fragment) is removed,
// and the remaining two-colouring is the haplotype partition (package
// bipartition).
//
// The MSA engine, the thread pool, sequence file parsing and the
// surrounding assembly pipeline are treated as external collaborators; see
// package msa and package workpool for the narrow interfaces this package
// consumes them through.
package diploid
