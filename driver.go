// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"rsc.io/tmp/mulbench/internal/cputime"
	"rsc.io/tmp/mulbench/internal/mul"
)

type trial struct {
	mnemonic string
	fn       func() int64
}

type section struct {
	factor int
	trials []trial
}

// sections returns the trials in the order they run.
//
// The ×5 section times Mul1 and Mul2, the ×2 functions, under ×5 labels.
// The C program this replaces did the same, and its numbers are only
// comparable if we do too. With fix5 the section uses Mul5 and Mul6.
func sections(fix5 bool) []section {
	five := []trial{
		{"imul", mul.Mul1},
		{"lea", mul.Mul2},
	}
	if fix5 {
		five = []trial{
			{"imul", mul.Mul5},
			{"lea", mul.Mul6},
		}
	}
	return []section{
		{2, []trial{
			{"imul", mul.Mul1},
			{"mov, add", mul.Mul2},
			{"shl", mul.Mul3},
			{"lea", mul.Mul4},
		}},
		{5, five},
	}
}

type config struct {
	n     int64
	clock cputime.Clock
	fix5  bool
	bench bool
}

// A printer formats the progress and results of a run.
type printer interface {
	section(factor int)
	label(id int, t trial)
	result(id int, t trial, elapsed time.Duration)
}

// run runs every trial and writes the results to w.
func run(w io.Writer, cfg config) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	bw := bufio.NewWriter(w)
	var p printer = &textPrinter{w: bw}
	if cfg.bench {
		p = newBenchPrinter(bw, cfg)
	}

	id := 0
	for _, s := range sections(cfg.fix5) {
		p.section(s.factor)
		for _, t := range s.trials {
			id++
			p.label(id, t)
			bw.Flush()
			elapsed, err := timeTrial(cfg.clock, t.fn, cfg.n)
			if err != nil {
				return fmt.Errorf("MUL %d: %w", id, err)
			}
			p.result(id, t, elapsed)
			bw.Flush()
		}
	}
	return bw.Flush()
}

// timeTrial reports the time c measures for n calls of f.
func timeTrial(c cputime.Clock, f func() int64, n int64) (time.Duration, error) {
	start, err := c.Now()
	if err != nil {
		return 0, err
	}
	for i := int64(0); i < n; i++ {
		f()
	}
	end, err := c.Now()
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

type textPrinter struct {
	w io.Writer
}

func (p *textPrinter) section(factor int) {
	fmt.Fprintf(p.w, "====MULTIPLICATION BY %d=========\n", factor)
}

func (p *textPrinter) label(id int, t trial) {
	fmt.Fprintf(p.w, "[MUL %d] Use '%s' instruction\n", id, t.mnemonic)
}

func (p *textPrinter) result(id int, t trial, elapsed time.Duration) {
	fmt.Fprintf(p.w, "[MUL %d] Time : %f\n", id, elapsed.Seconds())
}

// benchPrinter writes results in the Go benchmark format read by benchstat.
type benchPrinter struct {
	w io.Writer
	n int64
}

func newBenchPrinter(w io.Writer, cfg config) *benchPrinter {
	fmt.Fprintf(w, "goos: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "goarch: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "pkg: rsc.io/tmp/mulbench\n")
	fmt.Fprintf(w, "clock: %s\n", cfg.clock.Name())
	return &benchPrinter{w: w, n: cfg.n}
}

func (p *benchPrinter) section(factor int) {}

func (p *benchPrinter) label(id int, t trial) {}

var benchNameReplacer = strings.NewReplacer(", ", "-", ",", "-", " ", "-")

func (p *benchPrinter) result(id int, t trial, elapsed time.Duration) {
	var ns float64
	if p.n > 0 {
		ns = float64(elapsed.Nanoseconds()) / float64(p.n)
	}
	fmt.Fprintf(p.w, "BenchmarkMul%d/%s\t%d\t%.4f ns/op\n", id, benchNameReplacer.Replace(t.mnemonic), p.n, ns)
}
