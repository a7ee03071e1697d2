// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mul implements fixed multiplications by 2 and 5,
// each using a different x86-64 instruction sequence.
//
// On amd64 the functions are written in assembly, so each one
// executes exactly the instructions its mnemonic names.
// On other architectures, or when built with -tags purego,
// they are ordinary Go functions and the compiler picks the instructions.
package mul

// X is the operand every variant multiplies.
// The assembly versions load it as an immediate.
const X = 1234567

// A Variant describes one multiplication function.
type Variant struct {
	Name     string // Mul1 through Mul6
	Factor   int64
	Mnemonic string // instructions used on amd64
	Func     func() int64
}

// Variants lists all six functions in order.
var Variants = []Variant{
	{"Mul1", 2, "imul", Mul1},
	{"Mul2", 2, "mov, add", Mul2},
	{"Mul3", 2, "shl", Mul3},
	{"Mul4", 2, "lea", Mul4},
	{"Mul5", 5, "imul", Mul5},
	{"Mul6", 5, "lea", Mul6},
}
