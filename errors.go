// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diploid

import "fmt"

// Kind identifies the category of a partitioning failure.
type Kind int

const (
	// EmptyInput indicates the caller provided zero sequences.
	EmptyInput Kind = iota
	// MsaFailure indicates the MSA engine returned an error.
	MsaFailure
	// AllColumnsFiltered indicates no column of the alignment qualified
	// as heterozygous.
	AllColumnsFiltered
	// GraphDisconnectedAndTrivial indicates the conflict graph has no
	// edges: there is no haplotype signal to partition on.
	GraphDisconnectedAndTrivial
	// MfrTimeout indicates the MFR solver hit its depth or wall-clock
	// budget before proving optimality.
	MfrTimeout
	// InternalInvariant indicates a broken invariant (adjacency
	// symmetry, graph/SNP consistency, or similar); it is always a bug.
	InternalInvariant
)

func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case MsaFailure:
		return "MsaFailure"
	case AllColumnsFiltered:
		return "AllColumnsFiltered"
	case GraphDisconnectedAndTrivial:
		return "GraphDisconnectedAndTrivial"
	case MfrTimeout:
		return "MfrTimeout"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the error type returned by Partition. AllColumnsFiltered,
// GraphDisconnectedAndTrivial and MfrTimeout are not fatal: Partition
// returns a usable Result alongside an Error of that Kind; for MfrTimeout
// Result.Heuristic is also set. EmptyInput, MsaFailure and
// InternalInvariant leave Result zero.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(k Kind, err error) *Error {
	return &Error{Kind: k, Err: err}
}

// invariantPanic is the typed value recovered by Partition at the package
// boundary and turned into an InternalInvariant Error. It is never
// recovered locally: an invariant violation always aborts the call.
type invariantPanic struct {
	msg string
}

func (p invariantPanic) String() string { return p.msg }

func invariantf(format string, args ...interface{}) {
	panic(invariantPanic{msg: fmt.Sprintf(format, args...)})
}

// recoverInvariant recovers an invariantPanic into an InternalInvariant
// Error, re-panicking anything else. It is deferred at the Partition
// boundary, mirroring loopy.go's handlePanic.
func recoverInvariant(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if p, ok := r.(invariantPanic); ok {
		*err = newError(InternalInvariant, fmt.Errorf("%s", p.msg))
		return
	}
	panic(r)
}
