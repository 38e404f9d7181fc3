// Copyright ©2026 The Diploid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msa

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/biogo/external"
)

// ErrMissingRequired is returned by POA.BuildCommand when Reads is unset.
var ErrMissingRequired = errors.New("msa: missing required argument")

// POA wraps an external partial-order-alignment engine (any spoa-compatible
// CLI: reads a FASTA file, writes an MSA FASTA file on -o). It is built the
// same way blasr.BLASR is: a struct of buildarg-tagged fields assembled by
// github.com/biogo/external into an *exec.Cmd.
type POA struct {
	// Cmd is the path to the poa binary; "spoa" is used if empty.
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}spoa{{end}}"`

	Reads string `buildarg:"{{.}}"` // input FASTA of reads to align

	Out string `buildarg:"{{if .}}-r{{split}}1{{split}}-o{{split}}{{.}}{{end}}"` // MSA output FASTA

	Match    int8 `buildarg:"{{if .}}-m{{split}}{{.}}{{end}}"` // match score
	Mismatch int8 `buildarg:"{{if .}}-n{{split}}{{.}}{{end}}"` // mismatch score, passed through as given
	Gap      int8 `buildarg:"{{if .}}-g{{split}}{{.}}{{end}}"` // gap penalty
}

// BuildCommand returns an exec.Cmd built from the parameters in p.
func (p POA) BuildCommand() (*exec.Cmd, error) {
	if p.Reads == "" || p.Out == "" {
		return nil, ErrMissingRequired
	}
	cl := external.Must(external.Build(p, nil))
	return exec.Command(cl[0], cl[1:]...), nil
}

// Align implements Engine by writing seqs to a temporary FASTA file,
// invoking the external engine, and parsing its MSA FASTA output back into
// row-major gapped strings in input order.
func (p POA) Align(ctx context.Context, seqs []string, sc Scoring) ([]string, error) {
	if len(seqs) == 0 {
		return nil, nil
	}

	in, err := os.CreateTemp("", "diploid-poa-in-*.fa")
	if err != nil {
		return nil, err
	}
	defer os.Remove(in.Name())
	for i, s := range seqs {
		if _, err := fmt.Fprintf(in, ">%d\n%s\n", i, s); err != nil {
			in.Close()
			return nil, err
		}
	}
	if err := in.Close(); err != nil {
		return nil, err
	}

	out, err := os.CreateTemp("", "diploid-poa-out-*.fa")
	if err != nil {
		return nil, err
	}
	outName := out.Name()
	out.Close()
	defer os.Remove(outName)

	p.Reads = in.Name()
	p.Out = outName
	p.Match, p.Mismatch, p.Gap = sc.Match, sc.Mismatch, sc.Gap

	cmd, err := p.BuildCommand()
	if err != nil {
		return nil, err
	}
	cmd.Stderr = os.Stderr
	if err := runContext(ctx, cmd); err != nil {
		return nil, err
	}

	return readMsaFasta(outName, len(seqs))
}

// runContext runs cmd, killing it if ctx is cancelled before completion.
func runContext(ctx context.Context, cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
		return ctx.Err()
	case err := <-done:
		return err
	}
}

// readMsaFasta reads a FASTA file of n aligned rows, keyed ">0".."n-1",
// and returns them ordered by that numeric index.
func readMsaFasta(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows := make([]string, n)
	seen := make([]bool, n)

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var idx = -1
	for sc.Scan() {
		line := sc.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			i, err := strconv.Atoi(line[1:])
			if err != nil || i < 0 || i >= n {
				return nil, fmt.Errorf("msa: unexpected record name %q", line)
			}
			idx = i
			seen[idx] = true
			continue
		}
		if idx < 0 {
			return nil, fmt.Errorf("msa: sequence data before header")
		}
		rows[idx] += line
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("msa: missing row %d in engine output", i)
		}
	}
	return rows, nil
}
