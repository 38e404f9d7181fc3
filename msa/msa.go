// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msa drives an external multiple sequence alignment engine and
// collects its row-major aligned output. The engine is a narrow,
// swappable collaborator: the core only ever needs one equal-length gapped
// row per input sequence, built incrementally in input order.
package msa

import "context"

// Scoring carries the MSA engine's match, mismatch and gap scores. The
// core passes these through without interpreting them (spec.md §1).
type Scoring struct {
	Match    int8
	Mismatch int8
	Gap      int8
}

// Engine aligns sequences and returns their row-major multiple sequence
// alignment: one gapped string per input sequence, all of equal length,
// row i corresponding to seqs[i]. Implementations must not reorder rows;
// the MSA engine is order-dependent and the caller's input order is
// canonical (spec.md §4.1).
type Engine interface {
	Align(ctx context.Context, seqs []string, sc Scoring) ([]string, error)
}

// Func adapts a plain function to the Engine interface.
type Func func(ctx context.Context, seqs []string, sc Scoring) ([]string, error)

// Align implements Engine.
func (f Func) Align(ctx context.Context, seqs []string, sc Scoring) ([]string, error) {
	return f(ctx, seqs, sc)
}
