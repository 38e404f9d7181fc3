// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diploid

// Read is the core's narrow view of a caller-owned sequence: a
// caller-assigned, non-negative identifier and its original base string.
// ID need not be dense or match the read's position in a Reads slice
// (readset.Window, for one, narrows a larger extraction down to a sparse
// subset); callers that need a dense identifier must assign one
// themselves. The core never reorders or mutates a Read; it only ever
// borrows ID and Seq to build an MSA, a SNP matrix and a conflict graph.
type Read struct {
	ID  int
	Seq string
}

// Reads is an ordered collection of Read, always consumed and emitted in
// input order.
type Reads []Read

func (r Reads) sequences() []string {
	seqs := make([]string, len(r))
	for i, read := range r {
		seqs[i] = read.Seq
	}
	return seqs
}
