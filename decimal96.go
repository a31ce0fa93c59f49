// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import (
	"math"
	"math/big"
)

// Decimal96 is a fixed-point 96-bit decimal value: sign-magnitude, with the
// magnitude held as three 32-bit words (Lo, Mid, Hi, least significant
// first) and a base-10 Scale in [0, 28] — the wire shape of .NET's
// System.Decimal. The represented value is
//
//	(-1)**Neg * (Hi*2**64 + Mid*2**32 + Lo) * 10**-Scale
//
// Conversion to and from BFloat goes through math/big.Int as the packing
// boundary; no arithmetic is done on the split words directly.
type Decimal96 struct {
	Lo, Mid, Hi uint32
	Scale       byte
	Neg         bool
}

// decimal96MaxScale is the largest representable base-10 scale.
const decimal96MaxScale = 28

// BigInt returns d's signed coefficient as an unscaled big.Int (i.e.
// without dividing by 10**d.Scale).
func (d Decimal96) BigInt() *big.Int {
	v := new(big.Int).SetUint64(uint64(d.Hi))
	v.Lsh(v, 32)
	v.Or(v, new(big.Int).SetUint64(uint64(d.Mid)))
	v.Lsh(v, 32)
	v.Or(v, new(big.Int).SetUint64(uint64(d.Lo)))
	if d.Neg {
		v.Neg(v)
	}
	return v
}

// decimal96FromBigInt packs v (which must fit in 96 bits) into a Decimal96
// at the given scale.
func decimal96FromBigInt(v *big.Int, scale byte) (Decimal96, error) {
	if v.BitLen() > 96 {
		return Decimal96{}, &RangeError{Op: "ToDecimal96", Detail: "value exceeds 96 bits"}
	}
	neg := v.Sign() < 0
	mag := new(big.Int).Abs(v)
	mask32 := new(big.Int).SetUint64(1<<32 - 1)
	lo := new(big.Int).And(mag, mask32).Uint64()
	mid := new(big.Int).And(new(big.Int).Rsh(mag, 32), mask32).Uint64()
	hi := new(big.Int).And(new(big.Int).Rsh(mag, 64), mask32).Uint64()
	return Decimal96{Lo: uint32(lo), Mid: uint32(mid), Hi: uint32(hi), Scale: scale, Neg: neg}, nil
}

func pow10(n int) *big.Int {
	if n <= 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func pow5(n int) *big.Int {
	if n <= 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(n)), nil)
}

// ToDecimal96 converts x to a Decimal96 at the given base-10 scale (0..28),
// rounding to the nearest representable value, ties away from zero. It
// returns an InvalidArgumentError if scale is out of range and a RangeError
// if the scaled coefficient does not fit in 96 bits.
//
// The coefficient is built on x's full mantissa (x.mant * 10**scale, then
// one rounding shift down to an integer), so no working precision is lost
// on the way to the decimal side.
func (x BFloat) ToDecimal96(scale int) (Decimal96, error) {
	if scale < 0 || scale > decimal96MaxScale {
		return Decimal96{}, &InvalidArgumentError{Op: "ToDecimal96", Detail: "scale must be in [0, 28]"}
	}
	m := new(big.Int).Mul(&x.mant, pow10(scale))
	coeff := roundToIntegerBigInt(raw(m, x.scale))
	return decimal96FromBigInt(coeff, byte(scale))
}

// ToDecimal96Nearest converts x to a Decimal96, choosing the decimal scale
// itself: the starting point is ceil(Accuracy() * log10(2)) — just enough
// decimal digits to cover x's binary fraction — clamped to [0, 28], then
// shrunk one digit at a time while the coefficient overflows 96 bits. A
// value whose integer part alone exceeds 96 bits is a RangeError.
func (x BFloat) ToDecimal96Nearest() (Decimal96, error) {
	if x.IsZero() {
		return Decimal96{}, nil
	}
	scale := 0
	if acc := x.Accuracy(); acc > 0 {
		scale = int(math.Ceil(float64(acc) * math.Log10(2)))
		if scale > decimal96MaxScale {
			scale = decimal96MaxScale
		}
	}
	for {
		d, err := x.ToDecimal96(scale)
		if err == nil {
			return d, nil
		}
		if scale == 0 {
			return Decimal96{}, err
		}
		scale--
	}
}

// FromDecimal96 converts d to a BFloat. 10**-scale factors as
// 5**-scale * 2**-scale: the power of two folds into the result scale
// exactly, and only the power of five requires a division — the coefficient
// is pre-shifted left far enough that the quotient retains the
// coefficient's full precision plus the guard region.
func FromDecimal96(d Decimal96) (BFloat, error) {
	coeff := d.BigInt()
	if d.Scale == 0 {
		return IntWithAccuracy(coeff, 0), nil
	}
	five := pow5(int(d.Scale))
	shiftBits := five.BitLen() + GuardBits
	num := new(big.Int).Lsh(coeff, uint(shiftBits))
	q := num.Quo(num, five) // sign of the coefficient carries through Quo
	scale := -int32(d.Scale) - int32(shiftBits) + GuardBits
	return raw(q, scale), nil
}

// NewFromDecimal96 is FromDecimal96 with the same optional binary scaler
// and added-precision budget the other constructor families take: the
// result is d's value times 2**binaryScaler, carrying addedPrecision extra
// zero bits below the guard region.
func NewFromDecimal96(d Decimal96, binaryScaler int32, addedPrecision int32) (BFloat, error) {
	v, err := FromDecimal96(d)
	if err != nil {
		return BFloat{}, err
	}
	if addedPrecision > 0 {
		v = padBits(v, uint(addedPrecision))
	}
	return v.Shl(binaryScaler), nil
}

// roundToIntegerBigInt returns the integer (scale-0) value nearest to x,
// ties away from zero, as a plain big.Int.
func roundToIntegerBigInt(x BFloat) *big.Int {
	if x.mant.Sign() == 0 {
		return big.NewInt(0)
	}
	p := x.onesPlace()
	if p <= 0 {
		return new(big.Int).Lsh(&x.mant, uint(-p))
	}
	return roundingRightShift(&x.mant, uint(p))
}
