// Copyright (c) 2017 George Tankersley. All rights reserved.
// Copyright (c) 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "codeberg.org/DeviPrasad/c25519/internal/wide"

// Multiply sets v = x * y, and returns v.
//
// Limb multiplication works like pen-and-paper columnar multiplication, but
// with 51-bit limbs instead of digits:
//
//	                      x4   x3   x2   x1   x0  x
//	                      y4   y3   y2   y1   y0  =
//	                     ------------------------
//	                    x4y0 x3y0 x2y0 x1y0 x0y0  +
//	               x4y1 x3y1 x2y1 x1y1 x0y1       +
//	          x4y2 x3y2 x2y2 x1y2 x0y2            +
//	     x4y3 x3y3 x2y3 x1y3 x0y3                 +
//	x4y4 x3y4 x2y4 x1y4 x0y4                      =
//	-----------------------------------------------
//	  r8   r7   r6   r5   r4   r3   r2   r1   r0
//
// Columns r5..r8 don't fit in the five-limb representation, so the
// reduction identity 2^255 = 19 (mod p) folds each of them into the column
// five positions lower, multiplied by 19, while the column is summed:
//
//	        x4y0    x3y0    x2y0    x1y0    x0y0  +
//	        x3y1    x2y1    x1y1    x0y1 19*x4y1  +
//	        x2y2    x1y2    x0y2 19*x4y2 19*x3y2  +
//	        x1y3    x0y3 19*x4y3 19*x3y3 19*x2y3  +
//	        x0y4 19*x4y4 19*x3y4 19*x2y4 19*x1y4  =
//	       ------------------------------------
//	          r4      r3      r2      r1      r0
func (v *Element) Multiply(x, y *Element) *Element {
	x0, x1, x2, x3, x4 := x.l0, x.l1, x.l2, x.l3, x.l4
	y0, y1, y2, y3, y4 := y.l0, y.l1, y.l2, y.l3, y.l4

	x1_19 := x1 * 19
	x2_19 := x2 * 19
	x3_19 := x3 * 19
	x4_19 := x4 * 19

	// r0 = x0*y0 + 19*(x1*y4 + x2*y3 + x3*y2 + x4*y1)
	r0 := wide.Mul64(x0, y0)
	r0 = wide.AddMul64(r0, x1_19, y4)
	r0 = wide.AddMul64(r0, x2_19, y3)
	r0 = wide.AddMul64(r0, x3_19, y2)
	r0 = wide.AddMul64(r0, x4_19, y1)

	// r1 = x0*y1 + x1*y0 + 19*(x2*y4 + x3*y3 + x4*y2)
	r1 := wide.Mul64(x0, y1)
	r1 = wide.AddMul64(r1, x1, y0)
	r1 = wide.AddMul64(r1, x2_19, y4)
	r1 = wide.AddMul64(r1, x3_19, y3)
	r1 = wide.AddMul64(r1, x4_19, y2)

	// r2 = x0*y2 + x1*y1 + x2*y0 + 19*(x3*y4 + x4*y3)
	r2 := wide.Mul64(x0, y2)
	r2 = wide.AddMul64(r2, x1, y1)
	r2 = wide.AddMul64(r2, x2, y0)
	r2 = wide.AddMul64(r2, x3_19, y4)
	r2 = wide.AddMul64(r2, x4_19, y3)

	// r3 = x0*y3 + x1*y2 + x2*y1 + x3*y0 + 19*x4*y4
	r3 := wide.Mul64(x0, y3)
	r3 = wide.AddMul64(r3, x1, y2)
	r3 = wide.AddMul64(r3, x2, y1)
	r3 = wide.AddMul64(r3, x3, y0)
	r3 = wide.AddMul64(r3, x4_19, y4)

	// r4 = x0*y4 + x1*y3 + x2*y2 + x3*y1 + x4*y0
	r4 := wide.Mul64(x0, y4)
	r4 = wide.AddMul64(r4, x1, y3)
	r4 = wide.AddMul64(r4, x2, y2)
	r4 = wide.AddMul64(r4, x3, y1)
	r4 = wide.AddMul64(r4, x4, y0)

	v.reduceColumns(r0, r1, r2, r3, r4)
	return v
}

// Square sets v = x * x, and returns v. Squaring works exactly like
// Multiply above, but symmetry lets several terms be grouped: with
// precomputed 2x, 19x, and 38x forms, each column needs only one Mul64 and
// two AddMul64 (three products) instead of five products.
func (v *Element) Square(x *Element) *Element {
	l0, l1, l2, l3, l4 := x.l0, x.l1, x.l2, x.l3, x.l4

	l0_2 := l0 * 2
	l1_2 := l1 * 2

	l1_38 := l1 * 38
	l2_38 := l2 * 38
	l3_38 := l3 * 38

	l3_19 := l3 * 19
	l4_19 := l4 * 19

	// r0 = l0^2 + 38*(l1*l4 + l2*l3)
	r0 := wide.Mul64(l0, l0)
	r0 = wide.AddMul64(r0, l1_38, l4)
	r0 = wide.AddMul64(r0, l2_38, l3)

	// r1 = 2*l0*l1 + 38*l2*l4 + 19*l3^2
	r1 := wide.Mul64(l0_2, l1)
	r1 = wide.AddMul64(r1, l2_38, l4)
	r1 = wide.AddMul64(r1, l3_19, l3)

	// r2 = 2*l0*l2 + l1^2 + 38*l3*l4
	r2 := wide.Mul64(l0_2, l2)
	r2 = wide.AddMul64(r2, l1, l1)
	r2 = wide.AddMul64(r2, l3_38, l4)

	// r3 = 2*l0*l3 + 2*l1*l2 + 19*l4^2
	r3 := wide.Mul64(l0_2, l3)
	r3 = wide.AddMul64(r3, l1_2, l2)
	r3 = wide.AddMul64(r3, l4_19, l4)

	// r4 = 2*l0*l4 + 2*l1*l3 + l2^2
	r4 := wide.Mul64(l0_2, l4)
	r4 = wide.AddMul64(r4, l1_2, l3)
	r4 = wide.AddMul64(r4, l2, l2)

	v.reduceColumns(r0, r1, r2, r3, r4)
	return v
}

// reduceColumns folds five wide multiplication columns back into the
// five-limb representation. r0 is at most 111 bits and r4 at most 107 bits,
// so every carry fits in a uint64.
func (v *Element) reduceColumns(r0, r1, r2, r3, r4 wide.Uint128) {
	c0 := (r0.Hi << 13) | (r0.Lo >> 51)
	c1 := (r1.Hi << 13) | (r1.Lo >> 51)
	c2 := (r2.Hi << 13) | (r2.Lo >> 51)
	c3 := (r3.Hi << 13) | (r3.Lo >> 51)
	c4 := (r4.Hi << 13) | (r4.Lo >> 51)

	v.l0 = (r0.Lo & maskLow51Bits) + 19*c4
	v.l1 = (r1.Lo & maskLow51Bits) + c0
	v.l2 = (r2.Lo & maskLow51Bits) + c1
	v.l3 = (r3.Lo & maskLow51Bits) + c2
	v.l4 = (r4.Lo & maskLow51Bits) + c3

	v.carryPropagate1().carryPropagate2()
}

// mul51 returns (lo, hi) such that lo + hi*2^51 = a*b, for a 51-bit limb a
// and a 32-bit multiplier b.
func mul51(a uint64, b uint32) (lo, hi uint64) {
	p := wide.Mul64(a, uint64(b))
	lo = p.Lo & maskLow51Bits
	hi = (p.Hi << 13) | (p.Lo >> 51)
	return
}

// Mult32 sets v = x * y, for a 32-bit y, and returns v.
func (v *Element) Mult32(x *Element, y uint32) *Element {
	x0lo, x0hi := mul51(x.l0, y)
	x1lo, x1hi := mul51(x.l1, y)
	x2lo, x2hi := mul51(x.l2, y)
	x3lo, x3hi := mul51(x.l3, y)
	x4lo, x4hi := mul51(x.l4, y)

	// The hi portions are only 32 bits wide plus whatever excess the input
	// limb carried, so a single carry-propagation pass suffices.
	v.l0 = x0lo + 19*x4hi
	v.l1 = x1lo + x0hi
	v.l2 = x2lo + x1hi
	v.l3 = x3lo + x2hi
	v.l4 = x4lo + x3hi
	return v.carryPropagate1().carryPropagate2()
}
