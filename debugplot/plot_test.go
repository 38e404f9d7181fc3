// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package debugplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kortschak/diploid/bipartition"
	"github.com/kortschak/diploid/conflict"
	"github.com/kortschak/diploid/snpmatrix"
)

func TestRenderWritesFile(t *testing.T) {
	m := &snpmatrix.Matrix{
		Rows: [][]int8{
			{1, 1, 1},
			{1, 1, 1},
			{-1, -1, -1},
			{-1, -1, -1},
		},
	}
	g := conflict.Build(m, nil)
	coloring, _ := bipartition.Color(g)

	out := filepath.Join(t.TempDir(), "conflict.svg")
	if err := Render(g, coloring, out); err != nil {
		t.Fatalf("Render: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty plot output")
	}
}
