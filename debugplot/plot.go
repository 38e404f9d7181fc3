// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package debugplot renders the conflict graph and the resulting
// haplotype call as an image, gated behind cmd/diploid-partition's
// -debug-plot flag (spec.md
// §6's CLI surface is silent on diagnostics beyond logging). Render draws
// the conflict graph itself as a node-link diagram, since its vertices
// are fragment ids with no coordinate axis to hang a rings.Set on.
// RenderHaplotypeRing (ring.go), used only when reads come from a BAM
// region and so carry genomic coordinates, restores SPEC_FULL.md §3's
// per-read-haplotype-along-window ring the way cmd/carta/carta.go renders
// a rings.Ring track.
package debugplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/kortschak/diploid/bipartition"
	"github.com/kortschak/diploid/conflict"
)

// nodeLink draws the conflict graph as vertices evenly spaced on a
// circle, coloured by haplotype call, with edges drawn as chords.
// Grounded on cmd/carta/carta.go's pattern of a hand-rolled plot.Plotter
// feeding a plot.Plot built with plot.New/p.Add/p.Save.
type nodeLink struct {
	positions map[int]vg.Point
	edges     [][2]int
	colors    map[int]color.Color
}

func (n nodeLink) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)

	lineStyle := draw.LineStyle{Color: color.Gray{128}, Width: vg.Points(0.5)}
	for _, e := range n.edges {
		a, okA := n.positions[e[0]]
		b, okB := n.positions[e[1]]
		if !okA || !okB {
			continue
		}
		c.StrokeLine2(lineStyle, trX(a.X), trY(a.Y), trX(b.X), trY(b.Y))
	}

	for v, pos := range n.positions {
		col, ok := n.colors[v]
		if !ok {
			col = color.Gray{200}
		}
		pt := vg.Point{X: trX(pos.X), Y: trY(pos.Y)}
		var path vg.Path
		path.Move(vg.Point{X: pt.X + vg.Points(3), Y: pt.Y})
		path.Arc(pt, vg.Points(3), 0, 2*math.Pi)
		path.Close()
		c.SetColor(col)
		c.Fill(path)
	}
}

// Render draws g's conflict structure, with vertices coloured by coloring
// (H0/H1) where present, to path (format inferred from its extension, as
// with plot.Plot.Save). Vertices of g not present in coloring are drawn
// in neutral gray; vertices already removed from g by fragment
// intersection are not drawn at all.
func Render(g *conflict.Graph, coloring bipartition.Coloring, path string) error {
	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("debugplot: %w", err)
	}
	p.Title.Text = "conflict graph"
	p.HideAxes()

	vertices := g.Vertices()
	n := len(vertices)
	positions := make(map[int]vg.Point, n)
	for i, v := range vertices {
		theta := 2 * math.Pi * float64(i) / math.Max(1, float64(n))
		positions[v] = vg.Point{
			X: vg.Length(math.Cos(theta)),
			Y: vg.Length(math.Sin(theta)),
		}
	}

	var edges [][2]int
	for _, u := range vertices {
		for _, v := range g.Neighbors(u) {
			if v > u {
				edges = append(edges, [2]int{u, v})
			}
		}
	}

	colors := make(map[int]color.Color, n)
	for v, hap := range coloring {
		if hap {
			colors[v] = color.RGBA{R: 200, G: 60, B: 60, A: 255}
		} else {
			colors[v] = color.RGBA{R: 60, G: 90, B: 200, A: 255}
		}
	}

	p.Add(nodeLink{positions: positions, edges: edges, colors: colors})

	if err := p.Save(12*vg.Centimeter, 12*vg.Centimeter, path); err != nil {
		return fmt.Errorf("debugplot: %w", err)
	}
	return nil
}
