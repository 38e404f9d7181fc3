// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import "testing"

func TestAnalyzeFrequencies(t *testing.T) {
	for _, test := range []struct {
		name    string
		counts  Counts
		primary byte
		secBase byte
		depth   int
	}{
		{"balanced two-of-each", Counts{A: 2, T: 2}, 'T', 'A', 4},
		{"all homozygous A", Counts{A: 10}, 'A', 'C', 10},
		{"zero depth", Counts{}, 'C', 'G', 0},
	} {
		t.Run(test.name, func(t *testing.T) {
			info := Analyze(test.counts)
			if info.Primary != test.primary {
				t.Errorf("primary = %c, want %c", info.Primary, test.primary)
			}
			if info.Secondary != test.secBase {
				t.Errorf("secondary = %c, want %c", info.Secondary, test.secBase)
			}
			if info.Depth != test.depth {
				t.Errorf("depth = %d, want %d", info.Depth, test.depth)
			}
		})
	}
}

func TestAnalyzeZeroDepth(t *testing.T) {
	info := Analyze(Counts{})
	if info.ErrProb != 1 {
		t.Errorf("ErrProb = %v, want 1", info.ErrProb)
	}
	if info.PrimaryFreq != 0 || info.SecondaryFreq != 0 {
		t.Errorf("frequencies = %v/%v, want 0/0", info.PrimaryFreq, info.SecondaryFreq)
	}
}

func TestTieBreakPriority(t *testing.T) {
	// All four bases tied: spec.md's fixed priority A < T < G < C means
	// C wins an unqualified four-way tie, and when C is excluded
	// (secondary selection) G wins.
	info := Analyze(Counts{A: 3, C: 3, G: 3, T: 3})
	if info.Primary != 'C' {
		t.Errorf("primary = %c, want C", info.Primary)
	}
	if info.Secondary != 'G' {
		t.Errorf("secondary = %c, want G", info.Secondary)
	}
}

func TestHeterozygousPredicate(t *testing.T) {
	info := Analyze(Counts{A: 5, T: 5})
	if !Heterozygous(info, 5, 0.10, 0.30) {
		t.Errorf("expected balanced column to be heterozygous: %+v", info)
	}

	lowDepth := Analyze(Counts{A: 2, T: 2})
	if Heterozygous(lowDepth, 5, 0.10, 0.30) {
		t.Errorf("expected low-depth column to fail MIN_DEPTH: %+v", lowDepth)
	}

	noisy := Analyze(Counts{A: 4, T: 4, G: 2})
	if Heterozygous(noisy, 5, 0.10, 0.30) {
		t.Errorf("expected high-error column to fail MAX_ERR: %+v", noisy)
	}

	skewed := Analyze(Counts{A: 9, T: 1})
	if Heterozygous(skewed, 5, 0.10, 0.30) {
		t.Errorf("expected skewed column to fail MIN_SECONDARY: %+v", skewed)
	}
}
