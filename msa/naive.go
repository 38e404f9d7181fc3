// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msa

import "context"

// Naive is an in-process fallback Engine used when no external alignment
// binary is configured (and by tests, so the core is exercisable without a
// subprocess). It builds the multiple sequence alignment the way
// original_source's diploid.cpp drives spoa: by aligning each sequence
// against the accumulated alignment and folding it in, one sequence at a
// time, in input order. Unlike a true partial-order aligner it aligns
// against a single representative row of the growing profile rather than
// against a full POA graph, which is sufficient to satisfy the Engine
// contract (equal-length, gap-padded, row i == seqs[i]) without requiring
// a real alignment-graph implementation.
type Naive struct{}

// Align implements Engine.
func (Naive) Align(ctx context.Context, seqs []string, sc Scoring) ([]string, error) {
	if len(seqs) == 0 {
		return nil, nil
	}
	rows := [][]byte{[]byte(seqs[0])}
	for _, s := range seqs[1:] {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		rows = foldIn(rows, s, sc)
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = string(r)
	}
	return out, nil
}

// foldIn aligns s against the consensus of rows and splices the result
// back into rows, inserting gap columns wherever the alignment calls for a
// new column not yet present in the profile.
func foldIn(rows [][]byte, s string, sc Scoring) [][]byte {
	ref := consensus(rows)
	a, b := needlemanWunsch(ref, []byte(s), sc)

	// a is the (possibly gappier) alignment of ref; every non-gap
	// position in a consumes one original column of ref, in order.
	// Gap positions in a are brand new columns that every existing row
	// must also receive a gap at.
	next := make([][]byte, len(rows))
	for i := range rows {
		next[i] = make([]byte, 0, len(a))
	}
	col := 0
	for _, c := range a {
		if c == '-' {
			for i := range rows {
				next[i] = append(next[i], '-')
			}
			continue
		}
		for i, row := range rows {
			next[i] = append(next[i], row[col])
		}
		col++
	}
	next = append(next, b)
	return next
}

// consensus returns, for each column of rows, the most frequent base
// (gaps excluded unless a column is all gaps).
func consensus(rows [][]byte) []byte {
	if len(rows) == 0 {
		return nil
	}
	l := len(rows[0])
	out := make([]byte, l)
	var counts [256]int
	for col := 0; col < l; col++ {
		for i := range counts {
			counts[i] = 0
		}
		for _, row := range rows {
			counts[row[col]]++
		}
		best := byte('-')
		bestN := -1
		for b, n := range counts {
			if b == '-' {
				continue
			}
			if n > bestN {
				bestN = n
				best = byte(b)
			}
		}
		if bestN <= 0 {
			best = '-'
		}
		out[col] = best
	}
	return out
}

// needlemanWunsch returns a global alignment of a and b under sc, as two
// equal-length byte slices with '-' standing for a gap.
func needlemanWunsch(a, b []byte, sc Scoring) ([]byte, []byte) {
	n, m := len(a), len(b)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = dp[i-1][0] + int(sc.Gap)
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = dp[0][j-1] + int(sc.Gap)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			sub := int(sc.Mismatch)
			if a[i-1] == b[j-1] {
				sub = int(sc.Match)
			}
			best := dp[i-1][j-1] + sub
			if v := dp[i-1][j] + int(sc.Gap); v > best {
				best = v
			}
			if v := dp[i][j-1] + int(sc.Gap); v > best {
				best = v
			}
			dp[i][j] = best
		}
	}

	var ra, rb []byte
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && dp[i][j] == dp[i-1][j-1]+subScore(a[i-1], b[j-1], sc):
			ra = append(ra, a[i-1])
			rb = append(rb, b[j-1])
			i--
			j--
		case i > 0 && dp[i][j] == dp[i-1][j]+int(sc.Gap):
			ra = append(ra, a[i-1])
			rb = append(rb, '-')
			i--
		default:
			ra = append(ra, '-')
			rb = append(rb, b[j-1])
			j--
		}
	}
	reverse(ra)
	reverse(rb)
	return ra, rb
}

func subScore(x, y byte, sc Scoring) int {
	if x == y {
		return int(sc.Match)
	}
	return int(sc.Mismatch)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
