// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux || darwin || freebsd

package cputime

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// CPU is the CPU time consumed by the process,
// the same measure as C's clock().
var CPU Clock = cpuClock{}

type cpuClock struct{}

func (cpuClock) Name() string { return "cpu" }

func (cpuClock) Now() (time.Duration, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		return 0, fmt.Errorf("clock_gettime: %w", err)
	}
	return time.Duration(ts.Nano()), nil
}
