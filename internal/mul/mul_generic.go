// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !amd64 || purego

package mul

// x is a variable so that the compiler cannot fold the products into constants.
var x int64 = X

//go:noinline
func Mul1() int64 { return x * 2 }

//go:noinline
func Mul2() int64 { return x + x }

//go:noinline
func Mul3() int64 { return x << 1 }

//go:noinline
func Mul4() int64 { return x + x*1 }

//go:noinline
func Mul5() int64 { return x * 5 }

//go:noinline
func Mul6() int64 { return x + x<<2 }
