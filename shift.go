// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import "math/big"

// roundingRightShift computes, in sign-magnitude terms, the integer closest
// to x / 2**k with ties resolved away from zero: it is the one
// rounding primitive every operator in this package funnels through.
//
// A zero shift is the identity. The algorithm, spelled out on magnitudes:
//
//	|x| >> (k-1), +1 if any bit below position k-1 is set or bit k-1 itself
//	is set, then >> 1, then reapply sign.
//
// The tie-break is half-away-from-zero on magnitudes, not banker's
// rounding: the guard-bit canonicalization in CompareCanonical and Hash
// depends on this specific rule.
func roundingRightShift(x *big.Int, k uint) *big.Int {
	if k == 0 {
		return new(big.Int).Set(x)
	}
	neg := x.Sign() < 0
	mag := new(big.Int).Abs(x)

	// floor((mag + 2**(k-1)) / 2**k) is round-half-up on the magnitude: the
	// added half-unit pushes any remainder >= half across the next power of
	// two, and ties (remainder == exactly half) round up. Arithmetically
	// identical to the bit-level "shift by k-1, bump on the new LSB, shift
	// once more" recipe, without the intermediate half-shifted value.
	half := new(big.Int).Lsh(big.NewInt(1), k-1)
	result := new(big.Int).Add(mag, half)
	result.Rsh(result, k)

	if neg && result.Sign() != 0 {
		result.Neg(result)
	}
	return result
}

// roundingRightShiftSize is roundingRightShift's size-tracking variant: it
// returns the rounded result together with its bit-length,
// incrementing the caller-supplied pre-shift bit-length by one when the
// round carries past the previous most-significant bit (e.g. rounding
// 0b111...1 up rolls over into a new, wider power of two). Callers that
// already know |x|'s bit-length can pass it as prevLen to avoid a second
// BitLen() scan; passing -1 makes this recompute it.
func roundingRightShiftSize(x *big.Int, k uint, prevLen int) (*big.Int, int) {
	if prevLen < 0 {
		prevLen = new(big.Int).Abs(x).BitLen()
	}
	result := roundingRightShift(x, k)
	size := result.BitLen()
	want := prevLen - int(k)
	if want < 0 {
		want = 0
	}
	if size > want {
		// the round carried a bit past the pre-shift MSB.
		size = want + 1
	}
	return result, size
}

// wouldRoundUp reports whether roundingRightShift(v, k) differs from
// truncatingRightShift(v, k), i.e. whether rounding moved the magnitude up
// (bit k-1 of |v| is set). It is
// used to decide whether a value
// straddles a power-of-two boundary and therefore needs an exponent bump
// after rounding, without materializing the rounded result when the caller
// only needs the boolean.
func wouldRoundUp(v *big.Int, k uint) bool {
	if k == 0 {
		return false
	}
	mag := new(big.Int).Abs(v)
	return mag.Bit(int(k)-1) == 1
}

// truncatingRightShift returns x / 2**k, truncated toward zero, over
// sign-magnitude (as opposed to big.Int.Rsh, which implements an
// arithmetic shift that floors toward -infinity for negative x; every shift
// in this package works on the magnitude and reapplies the sign).
func truncatingRightShift(x *big.Int, k uint) *big.Int {
	if k == 0 {
		return new(big.Int).Set(x)
	}
	neg := x.Sign() < 0
	mag := new(big.Int).Abs(x)
	mag.Rsh(mag, k)
	if neg && mag.Sign() != 0 {
		mag.Neg(mag)
	}
	return mag
}
