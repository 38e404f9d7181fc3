// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package debugplot

import (
	"fmt"
	"image/color"

	"github.com/biogo/biogo/feat"
	"github.com/biogo/graphics/rings"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/kortschak/diploid"
	"github.com/kortschak/diploid/readset"
)

// window stands in for cmd/carta's *genome.Chromosome: a single axis
// feature the ring's blocks are positioned against. There is no parent
// coordinate system above a read extraction window, so Location is nil,
// the same way carta's top-level chromosome features report nil.
type window struct {
	start, end int
}

func (w window) Start() int          { return w.start }
func (w window) End() int            { return w.end }
func (w window) Len() int            { return w.end - w.start }
func (w window) Name() string        { return "window" }
func (w window) Description() string { return "read extraction window" }
func (w window) Location() feat.Feature { return nil }

// readBlock positions one read's alignment span on the ring, coloured by
// haplotype call. Grounded on cmd/carta/carta.go's colorBand, which pairs
// a feat.Feature with FillColor and LineStyle to let rings.NewBlocks draw
// a coloured karyotype band; here the band is a read instead of a
// cytogenetic band and the colour is H0/H1/ambiguous/unphased instead of
// Giemsa stain.
type readBlock struct {
	span readset.Span
	axis feat.Feature
	fill color.Color
}

func (b readBlock) Start() int          { return b.span.Start }
func (b readBlock) End() int            { return b.span.End }
func (b readBlock) Len() int            { return b.span.End - b.span.Start }
func (b readBlock) Name() string        { return fmt.Sprintf("read %d", b.span.Read.ID) }
func (b readBlock) Description() string { return "read" }
func (b readBlock) Location() feat.Feature { return b.axis }
func (b readBlock) FillColor() color.Color { return b.fill }
func (b readBlock) LineStyle() draw.LineStyle {
	return draw.LineStyle{Color: color.Gray{0}, Width: vg.Points(0.25)}
}

var (
	colorH0        = color.RGBA{R: 60, G: 90, B: 200, A: 255}
	colorH1        = color.RGBA{R: 200, G: 60, B: 60, A: 255}
	colorAmbiguous = color.Gray{128}
	colorUnphased  = color.Gray{200}
)

// RenderHaplotypeRing draws spans along the half-open genomic window
// [start, end) as a single-axis rings plot, each read's block coloured by
// which of result's sets it landed in, to path. This restores
// SPEC_FULL.md §3's per-read-haplotype-along-window ring, built the way
// cmd/carta/carta.go's tracks builds a karyotype ring: rings.NewGappedBlocks
// lays out the axis, rings.NewBlocks positions the coloured segments
// against it.
func RenderHaplotypeRing(spans []readset.Span, start, end int, result diploid.Result, path string) error {
	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("debugplot: %w", err)
	}
	p.Title.Text = "haplotype calls"
	p.HideAxes()

	axis := window{start: start, end: end}
	radius := 6 * vg.Centimeter
	gap := 0.005

	axisRing, err := rings.NewGappedBlocks(
		[]feat.Feature{axis},
		rings.Arc{rings.Complete / 4 * rings.CounterClockwise, rings.Complete * rings.Clockwise},
		radius*0.90, radius, gap,
	)
	if err != nil {
		return fmt.Errorf("debugplot: %w", err)
	}

	labels := classify(result)
	blocks := make([]feat.Feature, len(spans))
	for i, s := range spans {
		blocks[i] = readBlock{span: s, axis: axis, fill: colorFor(labels[s.Read.ID])}
	}
	readRing, err := rings.NewBlocks(blocks, axisRing, radius*0.60, radius*0.85)
	if err != nil {
		return fmt.Errorf("debugplot: %w", err)
	}

	p.Add(axisRing, readRing)

	if err := p.Save(2*radius, 2*radius, path); err != nil {
		return fmt.Errorf("debugplot: %w", err)
	}
	return nil
}

// colorFor maps a classify label to the RGBA used for H0/H1/ambiguous/
// unphased, matching Render's existing H0/H1 palette.
func colorFor(label string) color.Color {
	switch label {
	case "H0":
		return colorH0
	case "H1":
		return colorH1
	case "ambiguous":
		return colorAmbiguous
	default:
		return colorUnphased
	}
}

// classify maps each read id in result to the set it landed in.
func classify(result diploid.Result) map[int]string {
	labels := make(map[int]string, len(result.H0)+len(result.H1)+len(result.Unphased)+len(result.Ambiguous))
	for _, r := range result.H0 {
		labels[r.ID] = "H0"
	}
	for _, r := range result.H1 {
		labels[r.ID] = "H1"
	}
	for _, r := range result.Ambiguous {
		labels[r.ID] = "ambiguous"
	}
	for _, r := range result.Unphased {
		labels[r.ID] = "unphased"
	}
	return labels
}
