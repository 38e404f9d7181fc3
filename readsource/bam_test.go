// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package readsource

import "testing"

func TestOverlaps(t *testing.T) {
	cases := []struct {
		start, end, rStart, rEnd int
		want                     bool
	}{
		{0, 100, 50, 150, true},
		{0, 10, 10, 20, false},
		{10, 20, 0, 10, false},
		{0, 10, 0, 10, true},
		{200, 300, 0, 100, false},
	}
	for _, c := range cases {
		got := overlaps(c.start, c.end, c.rStart, c.rEnd)
		if got != c.want {
			t.Errorf("overlaps(%d,%d,%d,%d) = %v, want %v", c.start, c.end, c.rStart, c.rEnd, got, c.want)
		}
	}
}
