// Copyright (c) 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "errors"

// This file contains additional functionality beyond the core field engine
// named by the X25519 wire format.

// SetWideBytes sets v to x, where x is a 64-byte little-endian encoding,
// reduced modulo the field order. If x is not 64 bytes, SetWideBytes
// returns nil and an error: unlike SetBytes, the 64-byte width is a
// protocol-level input (e.g. a wide random seed) rather than a fixed wire
// size, so a length mismatch here is treated as recoverable.
//
// SetWideBytes is not necessary to select a uniformly distributed value,
// and is only provided for callers that already have 64 bytes of entropy on
// hand: SetBytes can be used instead as the chance of bias is less than
// 2^-250.
func (v *Element) SetWideBytes(x []byte) (*Element, error) {
	if len(x) != 64 {
		return nil, errors.New("field: invalid SetWideBytes input size")
	}

	// Split the 64 bytes into two elements, and extract the most significant
	// bit of each, which is ignored by SetBytes.
	lo := new(Element).SetBytes(x[:32])
	loMSB := uint64(x[31] >> 7)
	hi := new(Element).SetBytes(x[32:])
	hiMSB := uint64(x[63] >> 7)

	// The output we want is
	//
	//   v = lo + loMSB * 2^255 + hi * 2^256 + hiMSB * 2^511
	//
	// which applying the reduction identity comes out to
	//
	//   v = lo + loMSB * 19 + hi * 2 * 19 + hiMSB * 2 * 19^2
	carry := &Element{l0: loMSB*19 + hiMSB*2*19*19}
	lo.Add(lo, carry)
	hi.Mult32(hi, 2*19)
	v.Add(lo, hi)

	return v, nil
}
