// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(linux || darwin || freebsd)

package cputime

// CPU falls back to the wall clock where no process CPU clock is available.
// Its Name is "wall", so results are labeled with what was measured.
var CPU Clock = Wall
