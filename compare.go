// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import (
	"hash/maphash"
	"math/big"
)

var hashSeed = maphash.MakeSeed()

// canonicalMagAndScale returns the canonical form of x's magnitude: the
// guard region is rounded off, and any trailing zero bits of the result
// (whether left over from a rounding carry or present in the encoding all
// along) are folded back into the scale, so that two differently-padded
// encodings of the same value always canonicalize to the same
// (mantissa, scale) pair. x is assumed to not be IsZero(); callers
// special-case zero separately.
func canonicalMagAndScale(x BFloat) (*big.Int, int32) {
	mag := new(big.Int).Abs(&x.mant)
	scale := x.scale

	var rounded *big.Int
	if !wouldRoundUp(mag, GuardBits) {
		// no carry out of the guard region; a plain truncating shift is
		// the rounded value, without materializing an intermediate copy.
		rounded = new(big.Int).Rsh(mag, GuardBits)
	} else {
		rounded, _ = roundingRightShiftSize(mag, GuardBits, x.size)
	}
	if rounded.Sign() == 0 {
		return rounded, scale
	}
	if tz := rounded.TrailingZeroBits(); tz > 0 {
		rounded = new(big.Int).Rsh(rounded, tz)
		scale += int32(tz)
	}
	return rounded, scale
}

// CompareCanonical is the default BFloat comparison: it rounds off the
// guard region before comparing, so that values differing only within
// their guard slack compare equal. It underlies ==, <, <= and
// Hash.
func (x BFloat) CompareCanonical(y BFloat) int {
	xz, yz := x.IsZero(), y.IsZero()
	if xz && yz {
		return 0
	}
	if xz {
		return -y.mant.Sign()
	}
	if yz {
		return x.mant.Sign()
	}

	sx, sy := x.mant.Sign(), y.mant.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}

	// fast exit: exponents far enough apart that rounding off the guard
	// region cannot flip the ordering.
	bex, bey := x.BinaryExponent(), y.BinaryExponent()
	if d := bex - bey; d >= 2 || d <= -2 {
		c := 1
		if bex < bey {
			c = -1
		}
		if sx < 0 {
			c = -c
		}
		return c
	}

	cmx, csx := canonicalMagAndScale(x)
	cmy, csy := canonicalMagAndScale(y)

	var c int
	switch {
	case csx > csy:
		a := new(big.Int).Lsh(cmx, uint(csx-csy))
		c = a.CmpAbs(cmy)
	case csx < csy:
		b := new(big.Int).Lsh(cmy, uint(csy-csx))
		c = cmx.CmpAbs(b)
	default:
		c = cmx.CmpAbs(cmy)
	}
	if sx < 0 {
		c = -c
	}
	return c
}

// CompareTotalOrderBitwise is a strict total order over the raw (M, S)
// encoding, with no guard-bit rounding: primary key is sign, secondary is
// the effective exponent S+Z, tertiary is the aligned magnitude, and the
// final tie-break is raw S then raw M. It returns 0 only when (M, S) match
// bit-for-bit.
func (x BFloat) CompareTotalOrderBitwise(y BFloat) int {
	sx, sy := x.mant.Sign(), y.mant.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}

	ex, ey := int64(x.scale)+int64(x.size), int64(y.scale)+int64(y.size)
	if ex != ey {
		c := 1
		if ex < ey {
			c = -1
		}
		if sx < 0 {
			c = -c
		}
		return c
	}

	common := x.scale
	if y.scale < common {
		common = y.scale
	}
	mx := new(big.Int).Lsh(new(big.Int).Abs(&x.mant), uint(x.scale-common))
	my := new(big.Int).Lsh(new(big.Int).Abs(&y.mant), uint(y.scale-common))
	if c := mx.Cmp(my); c != 0 {
		if sx < 0 {
			return -c
		}
		return c
	}

	if x.scale != y.scale {
		if x.scale < y.scale {
			return -1
		}
		return 1
	}
	return x.mant.Cmp(&y.mant)
}

// CompareTotalPreorder agrees with CompareTotalOrderBitwise through the
// effective exponent, but at equal exponent it right-shifts the wider
// mantissa down to the narrower width before comparing, so that
// zero-extended encodings of the same value tie.
func (x BFloat) CompareTotalPreorder(y BFloat) int {
	sx, sy := x.mant.Sign(), y.mant.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}

	ex, ey := int64(x.scale)+int64(x.size), int64(y.scale)+int64(y.size)
	if ex != ey {
		c := 1
		if ex < ey {
			c = -1
		}
		if sx < 0 {
			c = -c
		}
		return c
	}

	mx := new(big.Int).Abs(&x.mant)
	my := new(big.Int).Abs(&y.mant)
	switch {
	case x.size > y.size:
		mx = truncatingRightShift(mx, uint(x.size-y.size))
	case y.size > x.size:
		my = truncatingRightShift(my, uint(y.size-x.size))
	}
	c := mx.Cmp(my)
	if c != 0 && sx < 0 {
		c = -c
	}
	return c
}

// CompareUlp aligns x and y's scales (rounding-right-shift on the
// lower-scale operand), then right-shifts their absolute difference by
// tolerance bits (plus GuardBits-1 more unless includeGuard is set), and
// reports the sign of what remains: 0 if x and y are within the requested
// tolerance of each other.
func (x BFloat) CompareUlp(y BFloat, tolerance uint, includeGuard bool) int {
	d := int64(x.scale) - int64(y.scale)
	var mx, my *big.Int
	switch {
	case d > 0:
		mx, my = &x.mant, roundingRightShift(&y.mant, uint(d))
	case d < 0:
		mx, my = roundingRightShift(&x.mant, uint(-d)), &y.mant
	default:
		mx, my = &x.mant, &y.mant
	}
	diff := new(big.Int).Sub(mx, my)
	shiftAmt := tolerance
	if !includeGuard {
		shiftAmt += GuardBits - 1
	}
	return truncatingRightShift(diff, shiftAmt).Sign()
}

// CompareUlpFast is CompareUlp with a fixed 4-bit tolerance window and the
// guard region excluded, for hot numerical-tolerance paths that do not need
// a configurable window.
func (x BFloat) CompareUlpFast(y BFloat) int {
	return x.CompareUlp(y, 4, false)
}

// EqualsBitwise reports whether x and y have identical (M, S), with no
// rounding and no zero-extension.
func (x BFloat) EqualsBitwise(y BFloat) bool {
	return x.scale == y.scale && x.mant.Cmp(&y.mant) == 0
}

// EqualsZeroExtended reports whether x and y represent the same value once
// the shorter mantissa is conceptually zero-extended to the width of the
// longer one: "2.5" and "2.50" compare equal.
func (x BFloat) EqualsZeroExtended(y BFloat) bool {
	return x.CompareTotalPreorder(y) == 0
}

// Equals reports whether x and y are canonically equal (x == y).
func (x BFloat) Equals(y BFloat) bool { return x.CompareCanonical(y) == 0 }

// Less reports whether x < y canonically.
func (x BFloat) Less(y BFloat) bool { return x.CompareCanonical(y) < 0 }

// LessOrEqual reports whether x <= y canonically.
func (x BFloat) LessOrEqual(y BFloat) bool { return x.CompareCanonical(y) <= 0 }

// Greater reports whether x > y canonically.
func (x BFloat) Greater(y BFloat) bool { return x.CompareCanonical(y) > 0 }

// GreaterOrEqual reports whether x >= y canonically.
func (x BFloat) GreaterOrEqual(y BFloat) bool { return x.CompareCanonical(y) >= 0 }

// NotEquals reports whether x and y are not canonically equal.
func (x BFloat) NotEquals(y BFloat) bool { return x.CompareCanonical(y) != 0 }

// Hash returns a hash code consistent with CompareCanonical: canonically
// equal BFloats always hash equal. It is built from the canonical
// (mantissa, scale) pair, never from the raw representation.
func (x BFloat) Hash() uint64 {
	if x.IsZero() {
		return maphash.Bytes(hashSeed, []byte{0})
	}
	cm, cs := canonicalMagAndScale(x)
	buf := cm.Bytes()
	buf = append(buf, byte(cs), byte(cs>>8), byte(cs>>16), byte(cs>>24))
	if x.mant.Sign() < 0 {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	return maphash.Bytes(hashSeed, buf)
}
