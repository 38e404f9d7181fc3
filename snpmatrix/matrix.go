// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snpmatrix builds the per-read signed indicator vector over
// heterozygous MSA columns described in spec.md §3/§4.3.
package snpmatrix

import (
	"fmt"
	"log"

	"github.com/kortschak/diploid/column"
)

// Options controls the heterozygous-column predicate and diagnostics.
type Options struct {
	MinDepth     int
	MaxErr       float64
	MinSecondary float64

	// LogSites restores original_source's per-SNP-site diagnostic line:
	// for every non-zero matrix cell, the read index, its ungapped
	// offset at that column, and the base it carries.
	LogSites bool
	Logger   *log.Logger
}

// Matrix is the SNP matrix of spec.md §3: one row per read, one entry per
// heterozygous column, values in {+1, -1, 0}.
type Matrix struct {
	// Rows[i] is the signed row for rows[i]; all rows have the same
	// length, len(Sites).
	Rows [][]int8
	// Sites[k] is the 0-based MSA column index of the k-th heterozygous
	// column, in column order.
	Sites []int
}

// Build scans rows (an MSA: one equal-length gapped string per read, in
// input order) column by column, applies the heterozygous predicate from
// opts, and emits the signed SNP matrix. Columns that fail the predicate
// contribute nothing, matching diploid.cpp's column loop.
func Build(rows []string, opts Options) *Matrix {
	m := &Matrix{Rows: make([][]int8, len(rows))}
	if len(rows) == 0 {
		return m
	}
	l := len(rows[0])

	offsets := make([]int, len(rows))
	for i := range offsets {
		offsets[i] = -1 // pre-increment to 0 on first non-gap base
	}

	for col := 0; col < l; col++ {
		var counts column.Counts
		for _, row := range rows {
			b := row[col]
			switch b {
			case 'A':
				counts.A++
			case 'C':
				counts.C++
			case 'G':
				counts.G++
			case 'T':
				counts.T++
			}
		}
		for i, row := range rows {
			if row[col] != '-' {
				offsets[i]++
			}
		}

		info := column.Analyze(counts)
		if !column.Heterozygous(info, opts.MinDepth, opts.MaxErr, opts.MinSecondary) {
			continue
		}

		m.Sites = append(m.Sites, col)
		for i, row := range rows {
			b := row[col]
			var v int8
			switch b {
			case info.Primary:
				v = 1
			case info.Secondary:
				v = -1
			default:
				v = 0
			}
			m.Rows[i] = append(m.Rows[i], v)
			if v != 0 && opts.LogSites && opts.Logger != nil {
				opts.Logger.Printf("%d: %d %c", i, offsets[i], b)
			}
		}
	}
	return m
}

// NonZeroReads returns the ids (indices into the row slice Build was
// called with) of rows with at least one non-zero entry: the vertex set V
// of spec.md §3.
func (m *Matrix) NonZeroReads() []int {
	var ids []int
	for i, row := range m.Rows {
		for _, v := range row {
			if v != 0 {
				ids = append(ids, i)
				break
			}
		}
	}
	return ids
}

// String renders a row for debugging.
func (m *Matrix) String() string {
	return fmt.Sprintf("snpmatrix{reads=%d sites=%d}", len(m.Rows), len(m.Sites))
}
