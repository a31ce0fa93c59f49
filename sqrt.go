// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import "math/big"

// Sqrt returns the square root of x, computed to wantedPrecision working
// bits. x must be non-negative; Sqrt(0, _) is 0, and a negative
// x is a DomainError. wantedPrecision below 1 is treated as 1 (there is no
// useful zero-bit working precision to ask for).
//
// The driver: find the total useful
// bit count T = S + (Z-G), left-shift the mantissa so the value being
// square-rooted has exactly 2*wantedPrecision working bits with T+shift
// even (the reason GuardBits must itself be even), hand the shifted integer
// to integerSqrt (bigint.go, wrapping math/big.Int.Sqrt), and re-wrap the
// integer root at scale ceil(T/2) - wantedPrecision.
func (x BFloat) Sqrt(wantedPrecision int) (BFloat, error) {
	if x.IsZero() {
		return ZeroWithAccuracy(x.Accuracy()), nil
	}
	if x.mant.Sign() < 0 {
		return BFloat{}, &DomainError{Op: "Sqrt", Detail: "argument must be non-negative"}
	}
	if wantedPrecision < 1 {
		wantedPrecision = 1
	}

	workingBits := int64(x.size - GuardBits)
	t := int64(x.scale) + workingBits
	parity := ((t % 2) + 2) % 2 // t mod 2, normalized to {0, 1} for negative t

	k := 2*int64(wantedPrecision) - workingBits - parity
	shift := k + GuardBits

	var mag *big.Int
	if shift >= 0 {
		mag = new(big.Int).Lsh(&x.mant, uint(shift))
	} else {
		mag = new(big.Int).Rsh(&x.mant, uint(-shift))
	}
	root := integerSqrt(mag)

	resultScale := int32(floorDivInt64(t+1, 2) - int64(wantedPrecision))
	return raw(root, resultScale), nil
}

// floorDivInt64 returns floor(a/b) for b > 0, matching Euclidean flooring
// rather than Go's truncate-toward-zero integer division (needed since the
// caller above computes a ceiling division on a value, t, that can be
// negative for very small x).
func floorDivInt64(a, b int64) int64 {
	q := a / b
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q
}
