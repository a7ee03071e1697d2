// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !purego

package mul

// Mul1 returns X*2 using IMULQ.
func Mul1() int64

// Mul2 returns X*2 using MOVQ and ADDQ.
func Mul2() int64

// Mul3 returns X*2 using SHLQ.
func Mul3() int64

// Mul4 returns X*2 using LEAQ.
func Mul4() int64

// Mul5 returns X*5 using IMULQ.
func Mul5() int64

// Mul6 returns X*5 using LEAQ with a scale of 4.
func Mul6() int64
