// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cputime provides the clocks used to time benchmark trials.
package cputime

import (
	"fmt"
	"time"
)

// A Clock reports time elapsed since some fixed origin.
// Only differences between two readings of the same Clock are meaningful.
type Clock interface {
	Name() string
	Now() (time.Duration, error)
}

// Wall is the monotonic wall clock.
var Wall Clock = wallClock{}

var origin = time.Now()

type wallClock struct{}

func (wallClock) Name() string { return "wall" }

func (wallClock) Now() (time.Duration, error) {
	return time.Since(origin), nil
}

// Names lists the names accepted by Lookup.
var Names = []string{"cpu", "wall"}

// Lookup returns the clock with the given name.
func Lookup(name string) (Clock, error) {
	switch name {
	case "cpu":
		return CPU, nil
	case "wall":
		return Wall, nil
	}
	return nil, fmt.Errorf("unknown clock %q", name)
}
