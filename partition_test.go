// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diploid

import (
	"context"
	"errors"
	"testing"

	"github.com/kortschak/diploid/msa"
)

func identityEngine() msa.Engine {
	return msa.Func(func(_ context.Context, seqs []string, _ msa.Scoring) ([]string, error) {
		out := make([]string, len(seqs))
		copy(out, seqs)
		return out, nil
	})
}

func testOptions() Options {
	o := DefaultOptions()
	o.Logger = nil
	o.MinDepth = 2
	return o
}

func TestPartitionEmptyInput(t *testing.T) {
	_, err := Partition(context.Background(), nil, identityEngine(), nil, msa.Scoring{Match: 1, Mismatch: -1, Gap: -1}, testOptions())
	var e *Error
	if !errors.As(err, &e) || e.Kind != EmptyInput {
		t.Fatalf("expected EmptyInput, got %v", err)
	}
}

func TestPartitionSingleSequence(t *testing.T) {
	reads := Reads{{ID: 0, Seq: "AAAA"}}
	res, err := Partition(context.Background(), reads, identityEngine(), nil, msa.Scoring{}, testOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.H1) != 0 {
		t.Fatalf("expected H1 empty for a single read, got %v", res.H1)
	}
	if len(res.H0)+len(res.Unphased) != 1 {
		t.Fatalf("expected the single read accounted for, got H0=%v unphased=%v", res.H0, res.Unphased)
	}
}

func TestPartitionAllIdenticalSequencesAreUnphased(t *testing.T) {
	reads := Reads{
		{ID: 0, Seq: "AAAAAAAA"},
		{ID: 1, Seq: "AAAAAAAA"},
		{ID: 2, Seq: "AAAAAAAA"},
	}
	res, err := Partition(context.Background(), reads, identityEngine(), nil, msa.Scoring{}, testOptions())
	var e *Error
	if !errors.As(err, &e) || e.Kind != AllColumnsFiltered {
		t.Fatalf("expected AllColumnsFiltered, got %v", err)
	}
	if len(res.H0) != 0 || len(res.H1) != 0 {
		t.Fatalf("expected empty H0/H1 when all columns are filtered, got H0=%v H1=%v", res.H0, res.H1)
	}
	if len(res.Unphased) != len(reads) {
		t.Fatalf("expected all reads unphased, got %v", res.Unphased)
	}
}

func TestPartitionTwoIdenticalSequencesSameSet(t *testing.T) {
	reads := Reads{
		{ID: 0, Seq: "AAAAAAAA"},
		{ID: 1, Seq: "AAAAAAAA"},
	}
	res, err := Partition(context.Background(), reads, identityEngine(), nil, msa.Scoring{}, testOptions())
	if err != nil {
		var e *Error
		if !errors.As(err, &e) || e.Kind != AllColumnsFiltered {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	inH0 := map[int]bool{}
	for _, r := range res.H0 {
		inH0[r.ID] = true
	}
	inH1 := map[int]bool{}
	for _, r := range res.H1 {
		inH1[r.ID] = true
	}
	together := (inH0[0] && inH0[1]) || (inH1[0] && inH1[1]) ||
		(len(res.Unphased) == 2)
	if !together {
		t.Fatalf("two identical sequences must land in the same set: H0=%v H1=%v unphased=%v", res.H0, res.H1, res.Unphased)
	}
}

func TestPartitionCleanDiploidSplitsIntoTwoHaplotypes(t *testing.T) {
	reads := Reads{
		{ID: 0, Seq: "AAAA"},
		{ID: 1, Seq: "AAAA"},
		{ID: 2, Seq: "TTTT"},
		{ID: 3, Seq: "TTTT"},
	}
	opts := testOptions()
	opts.MinDepth = 4
	res, err := Partition(context.Background(), reads, identityEngine(), nil, msa.Scoring{}, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.H0) != 2 || len(res.H1) != 2 {
		t.Fatalf("expected a 2/2 split, got H0=%v H1=%v", res.H0, res.H1)
	}
	h0 := map[int]bool{res.H0[0].ID: true, res.H0[1].ID: true}
	if h0[0] != h0[1] || h0[2] != h0[3] || h0[0] == h0[2] {
		t.Fatalf("expected {0,1} and {2,3} in opposite sets, got H0=%v H1=%v", res.H0, res.H1)
	}
}

func noisyReadFixture(noisy string) Reads {
	reads := make(Reads, 0, 11)
	id := 0
	for i := 0; i < 5; i++ {
		reads = append(reads, Read{ID: id, Seq: "AAAA"})
		id++
	}
	for i := 0; i < 5; i++ {
		reads = append(reads, Read{ID: id, Seq: "TTTT"})
		id++
	}
	reads = append(reads, Read{ID: id, Seq: noisy})
	return reads
}

func TestPartitionIsolatedNoisyReadGoesUnphasedOrH0(t *testing.T) {
	reads := noisyReadFixture("CCCC")
	noisyID := reads[len(reads)-1].ID
	opts := testOptions()
	opts.MinDepth = 4
	res, err := Partition(context.Background(), reads, identityEngine(), nil, msa.Scoring{}, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range res.H1 {
		if r.ID == noisyID {
			t.Fatal("noisy read should never be assigned a haplotype by H0/H1 disagreement evidence it doesn't have")
		}
	}
	placed := false
	for _, r := range append(append(Reads(nil), res.H0...), res.Unphased...) {
		if r.ID == noisyID {
			placed = true
		}
	}
	if !placed {
		t.Fatalf("noisy read must land in H0 or unphased: H0=%v unphased=%v", res.H0, res.Unphased)
	}
}

func TestPartitionDisjointResultSets(t *testing.T) {
	reads := noisyReadFixture("GGGG")
	opts := testOptions()
	opts.MinDepth = 4
	res, err := Partition(context.Background(), reads, identityEngine(), nil, msa.Scoring{}, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := map[int]int{}
	for _, r := range res.H0 {
		seen[r.ID]++
	}
	for _, r := range res.H1 {
		seen[r.ID]++
	}
	for _, r := range res.Unphased {
		seen[r.ID]++
	}
	for _, r := range res.Ambiguous {
		seen[r.ID]++
	}
	for _, r := range reads {
		if seen[r.ID] != 1 {
			t.Fatalf("read %d appeared in %d output sets, want exactly 1", r.ID, seen[r.ID])
		}
	}
}

func TestPartitionMsaFailurePropagates(t *testing.T) {
	wantErr := errors.New("engine exploded")
	failing := msa.Func(func(_ context.Context, seqs []string, _ msa.Scoring) ([]string, error) {
		return nil, wantErr
	})
	reads := Reads{{ID: 0, Seq: "AAAA"}, {ID: 1, Seq: "TTTT"}}
	_, err := Partition(context.Background(), reads, failing, nil, msa.Scoring{}, testOptions())
	var e *Error
	if !errors.As(err, &e) || e.Kind != MsaFailure {
		t.Fatalf("expected MsaFailure, got %v", err)
	}
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped engine error, got %v", err)
	}
}
