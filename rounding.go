// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import "math/big"

// onesPlace returns the bit position within M of the unit ("ones") place:
// the position p such that p + S - G == 0, i.e. p = G - S.
func (x BFloat) onesPlace() int {
	return int(GuardBits) - int(x.scale)
}

// Truncate drops the working-precision fractional bits of x (those
// strictly below the unit place and above the guard region), rounding
// toward zero, and preserves x's scale.
func (x BFloat) Truncate() BFloat {
	p := x.onesPlace()
	if p <= 0 {
		return x
	}
	if p >= x.size {
		return ZeroWithAccuracy(x.Accuracy())
	}
	m := truncatingRightShift(&x.mant, uint(p))
	m.Lsh(m, uint(p))
	return raw(m, x.scale)
}

// FractionalPart returns the fractional bits of x (below the unit place),
// keeping x's scale and recomputing the size from the fractional magnitude. Truncate(x) and FractionalPart(x) always recombine, bit for bit,
// to x's original mantissa.
func (x BFloat) FractionalPart() BFloat {
	p := x.onesPlace()
	if p <= 0 {
		return ZeroWithAccuracy(x.Accuracy())
	}
	mag := new(big.Int).Abs(&x.mant)
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(p)), big.NewInt(1))
	frac := mag.And(mag, mask)
	if x.mant.Sign() < 0 {
		frac.Neg(frac)
	}
	return raw(frac, x.scale)
}

// hasWorkingFraction reports whether x has any fractional bit strictly
// above the guard region (i.e. a fractional bit that is not merely
// sub-precision slack).
func (x BFloat) hasWorkingFraction() bool {
	p := x.onesPlace()
	if p <= GuardBits {
		return false
	}
	bits := p - GuardBits
	mag := new(big.Int).Abs(&x.mant)
	mag.Rsh(mag, GuardBits)
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bits)), big.NewInt(1))
	mag.And(mag, mask)
	return mag.Sign() != 0
}

// Ceiling returns the smallest integer value >= x, preserving x's scale. If
// x has no working-precision fraction bits (its fractional part, if any,
// lives entirely in the guard region), it is returned unchanged, so that
// guard-only noise never perturbs an already-integral value.
func (x BFloat) Ceiling() BFloat {
	if !x.hasWorkingFraction() {
		return x
	}
	t := x.Truncate()
	if x.mant.Sign() > 0 {
		return t.Inc()
	}
	return t
}

// Floor returns the largest integer value <= x, preserving x's scale.
// Floor(x) = -Ceiling(-x).
func (x BFloat) Floor() BFloat {
	return x.Neg().Ceiling().Neg()
}

// toIntegerScaled re-expresses an already-integral x with scale 0, for the
// integer-scaled flavors of Floor/Ceiling (the plain flavors preserve the
// caller's accuracy instead).
func (x BFloat) toIntegerScaled() BFloat {
	if x.scale == 0 {
		return x
	}
	var m *big.Int
	if x.scale >= 0 {
		m = new(big.Int).Lsh(&x.mant, uint(x.scale))
	} else {
		m = truncatingRightShift(&x.mant, uint(-x.scale))
	}
	return raw(m, 0)
}

// FloorInt is Floor, re-scaled so the result has S == 0.
func (x BFloat) FloorInt() BFloat { return x.Floor().toIntegerScaled() }

// CeilingInt is Ceiling, re-scaled so the result has S == 0.
func (x BFloat) CeilingInt() BFloat { return x.Ceiling().toIntegerScaled() }

// padBits pads x with n low-order zero bits, increasing its accuracy
// without changing its value.
func padBits(x BFloat, n uint) BFloat {
	if n == 0 {
		return x
	}
	m := new(big.Int).Lsh(&x.mant, n)
	return raw(m, x.scale-int32(n))
}

// dropBitsTruncate drops the n lowest-order bits of x without rounding,
// truncating toward zero.
func dropBitsTruncate(x BFloat, n uint) BFloat {
	if n == 0 {
		return x
	}
	m := truncatingRightShift(&x.mant, n)
	return raw(m, x.scale+int32(n))
}

// dropBitsRound drops the n lowest-order bits of x with round-half-away-
// from-zero.
func dropBitsRound(x BFloat, n uint) BFloat {
	if n == 0 {
		return x
	}
	m := roundingRightShift(&x.mant, n)
	return raw(m, x.scale+int32(n))
}

// AdjustPrecision pads x with delta zero bits (delta > 0, increasing
// accuracy without changing value) or truncates delta bits without
// rounding (delta < 0). delta == 0 is the identity.
func (x BFloat) AdjustPrecision(delta int32) BFloat {
	switch {
	case delta > 0:
		return padBits(x, uint(delta))
	case delta < 0:
		return dropBitsTruncate(x, uint(-delta))
	default:
		return x
	}
}

// ExtendPrecision is AdjustPrecision restricted to delta >= 0; a negative
// delta is an InvalidArgumentError.
func (x BFloat) ExtendPrecision(delta int32) (BFloat, error) {
	if delta < 0 {
		return BFloat{}, &InvalidArgumentError{Op: "ExtendPrecision", Detail: "delta must be non-negative"}
	}
	return padBits(x, uint(delta)), nil
}

// ReducePrecision drops delta bits from x without rounding. A negative
// delta extends precision instead (it is AdjustPrecision's mirror image).
func (x BFloat) ReducePrecision(delta int32) BFloat {
	return x.AdjustPrecision(-delta)
}

// SetPrecision pads or truncates (without rounding) x so that its working
// precision (Precision()) equals target bits.
func (x BFloat) SetPrecision(target int) BFloat {
	delta := (target + GuardBits) - x.size
	return x.AdjustPrecision(int32(delta))
}

// SetPrecisionWithRound is SetPrecision, but uses rounding-right-shift
// (round half away from zero) rather than plain truncation when shrinking.
func (x BFloat) SetPrecisionWithRound(target int) BFloat {
	delta := (target + GuardBits) - x.size
	if delta >= 0 {
		return padBits(x, uint(delta))
	}
	return dropBitsRound(x, uint(-delta))
}

// TruncateByAndRound drops the low `bits` bits of x with round-half-away-
// from-zero. bits must be non-negative.
func (x BFloat) TruncateByAndRound(bits int32) (BFloat, error) {
	if bits < 0 {
		return BFloat{}, &InvalidArgumentError{Op: "TruncateByAndRound", Detail: "bits must be non-negative"}
	}
	return dropBitsRound(x, uint(bits)), nil
}

// BitIncrement returns x plus one ULP of its working precision (one unit
// at the first bit above the guard region).
func (x BFloat) BitIncrement() BFloat { return x.addRaw(1, GuardBits) }

// BitDecrement returns x minus one ULP of its working precision.
func (x BFloat) BitDecrement() BFloat { return x.addRaw(-1, GuardBits) }

// GuardBitIncrement returns x plus the smallest representable step (one
// unit at bit 0 of the mantissa, inside the guard region).
func (x BFloat) GuardBitIncrement() BFloat { return x.addRaw(1, 0) }

// GuardBitDecrement returns x minus the smallest representable step.
func (x BFloat) GuardBitDecrement() BFloat { return x.addRaw(-1, 0) }

func (x BFloat) addRaw(sign int, bitPos uint) BFloat {
	delta := new(big.Int).Lsh(big.NewInt(1), bitPos)
	if sign < 0 {
		delta.Neg(delta)
	}
	m := new(big.Int).Add(&x.mant, delta)
	return raw(m, x.scale)
}
