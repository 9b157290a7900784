// Copyright (c) 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wide provides the 64x64->128 wide-multiply and carrying-add
// primitives that the field package's Multiply and Square build on. Every
// function here is a thin wrapper around math/bits, which on amd64 and
// arm64 lowers to a single widening-multiply instruction whose latency does
// not depend on the operand values, and on other platforms falls back to
// the classic four-way 32x32->64 decomposition. Either way the result does
// not depend on a data-dependent branch.
package wide

import "math/bits"

// Uint128 holds the 128-bit result of a widening multiplication as a
// (Hi, Lo) pair of 64-bit halves: the represented value is Hi*2^64 + Lo.
type Uint128 struct {
	Hi, Lo uint64
}

// Mul64 returns the full 128-bit product of x and y.
func Mul64(x, y uint64) Uint128 {
	hi, lo := bits.Mul64(x, y)
	return Uint128{Hi: hi, Lo: lo}
}

// Add64 returns the sum x + y + carry and the carry out of the 64th bit.
// carry must be 0 or 1; the returned carryOut is always 0 or 1.
func Add64(x, y, carry uint64) (sum, carryOut uint64) {
	return bits.Add64(x, y, carry)
}

// AddMul64 returns acc + x*y as a 128-bit value. It never loses bits: the
// multiplication column sums in field.Element.Multiply and Square rely on
// chaining several AddMul64 calls without intermediate truncation.
func AddMul64(acc Uint128, x, y uint64) Uint128 {
	p := Mul64(x, y)
	lo, c := bits.Add64(p.Lo, acc.Lo, 0)
	hi, _ := bits.Add64(p.Hi, acc.Hi, c)
	return Uint128{Hi: hi, Lo: lo}
}
