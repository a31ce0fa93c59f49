// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import (
	"math"
	"math/big"
)

// ToFloat64 returns the float64 nearest to x, via math/big.Float. A
// magnitude beyond math.MaxFloat64 rounds to +/-Inf, matching big.Float's
// own overflow behavior; there is no error return because every BFloat has
// some nearest float64 (possibly infinite). Values below the subnormal
// range underflow to a signed zero the same way.
func (x BFloat) ToFloat64() float64 {
	if x.mant.Sign() == 0 {
		return 0
	}
	f := x.bigFloat()
	v, _ := f.Float64()
	return v
}

// ToFloat32 is ToFloat64's binary32 counterpart.
func (x BFloat) ToFloat32() float32 {
	if x.mant.Sign() == 0 {
		return 0
	}
	f := x.bigFloat()
	v, _ := f.Float32()
	return v
}

// bigFloat returns x as an exact *big.Float (the mantissa fits the chosen
// precision, so no rounding happens here; it is deferred to Float64/Float32).
func (x BFloat) bigFloat() *big.Float {
	prec := uint(x.size)
	if prec < 64 {
		prec = 64
	}
	f := new(big.Float).SetPrec(prec).SetInt(&x.mant)
	f.SetMantExp(f, int(x.scale)-GuardBits)
	return f
}

// FromFloat64 constructs the exact BFloat equal to f. NaN and +/-Inf have
// no BFloat representation and are reported as RangeErrors.
//
// The 53-bit significand (52 stored bits plus the implicit leading one for
// normals; subnormals come out of math.Frexp pre-normalized) becomes the
// working precision, and the unbiased exponent folds into the scale.
func FromFloat64(f float64) (BFloat, error) {
	if math.IsNaN(f) {
		return BFloat{}, &RangeError{Op: "FromFloat64", Detail: "NaN has no BFloat representation"}
	}
	if math.IsInf(f, 0) {
		return BFloat{}, &RangeError{Op: "FromFloat64", Detail: "infinite values have no BFloat representation"}
	}
	if f == 0 {
		return Zero, nil
	}

	neg := math.Signbit(f)
	fmant, exp2 := math.Frexp(f) // f == fmant * 2**exp2, 0.5 <= |fmant| < 1
	bits := math.Float64bits(math.Abs(fmant))
	frac := bits & (1<<52 - 1)
	m53 := uint64(1)<<52 | frac // fmant * 2**53 as an exact 53-bit integer

	m := new(big.Int).SetUint64(m53)
	if neg {
		m.Neg(m)
	}
	return IntWithAccuracy(m, 0).Shl(int32(exp2) - 53), nil
}

// FromFloat32 is FromFloat64(float64(f)); the widening is exact, so no
// precision is gained or lost.
func FromFloat32(f float32) (BFloat, error) {
	v, err := FromFloat64(float64(f))
	if err != nil {
		err.(*RangeError).Op = "FromFloat32"
	}
	return v, err
}

// NewFromFloat64 is FromFloat64 with the same optional binary scaler and
// added-precision budget the integer constructors take: the result is
// f * 2**binaryScaler, carrying addedPrecision extra zero bits below the
// guard region.
func NewFromFloat64(f float64, binaryScaler int32, addedPrecision int32) (BFloat, error) {
	v, err := FromFloat64(f)
	if err != nil {
		return BFloat{}, err
	}
	if addedPrecision > 0 {
		v = padBits(v, uint(addedPrecision))
	}
	return v.Shl(binaryScaler), nil
}

// NewFromFloat32 is NewFromFloat64 over an exactly-widened binary32 value.
func NewFromFloat32(f float32, binaryScaler int32, addedPrecision int32) (BFloat, error) {
	v, err := NewFromFloat64(float64(f), binaryScaler, addedPrecision)
	if err != nil {
		err.(*RangeError).Op = "FromFloat32"
	}
	return v, err
}

// integerPart returns x truncated toward zero as a plain big.Int.
func (x BFloat) integerPart() *big.Int {
	t := x.Truncate()
	p := t.onesPlace()
	if p <= 0 {
		return new(big.Int).Lsh(&t.mant, uint(-p))
	}
	return truncatingRightShift(&t.mant, uint(p))
}

var (
	maxInt64Big  = big.NewInt(math.MaxInt64)
	minInt64Big  = big.NewInt(math.MinInt64)
	maxUint64Big = new(big.Int).SetUint64(math.MaxUint64)
)

// ToInt64Truncating returns x's integer part (truncated toward zero) as an
// int64, or a RangeError if it does not fit.
func (x BFloat) ToInt64Truncating() (int64, error) {
	ib := x.integerPart()
	if ib.Cmp(maxInt64Big) > 0 || ib.Cmp(minInt64Big) < 0 {
		return 0, &RangeError{Op: "ToInt64Truncating", Detail: "value out of int64 range"}
	}
	return ib.Int64(), nil
}

// ToInt64Saturating is ToInt64Truncating, clamped to
// [math.MinInt64, math.MaxInt64] instead of erroring.
func (x BFloat) ToInt64Saturating() int64 {
	ib := x.integerPart()
	if ib.Cmp(maxInt64Big) > 0 {
		return math.MaxInt64
	}
	if ib.Cmp(minInt64Big) < 0 {
		return math.MinInt64
	}
	return ib.Int64()
}

// ToInt64Checked is ToInt64Truncating, but additionally requires x to be an
// integer (IsInteger()); a fractional x is a RangeError.
func (x BFloat) ToInt64Checked() (int64, error) {
	if !x.IsInteger() {
		return 0, &RangeError{Op: "ToInt64Checked", Detail: "value is not an exact integer"}
	}
	return x.ToInt64Truncating()
}

// ToUint64Truncating is ToInt64Truncating's unsigned counterpart; a
// negative x is a RangeError.
func (x BFloat) ToUint64Truncating() (uint64, error) {
	if x.mant.Sign() < 0 {
		return 0, &RangeError{Op: "ToUint64Truncating", Detail: "negative value"}
	}
	ib := x.integerPart()
	if ib.Cmp(maxUint64Big) > 0 {
		return 0, &RangeError{Op: "ToUint64Truncating", Detail: "value out of uint64 range"}
	}
	return ib.Uint64(), nil
}

// ToUint64Saturating is ToUint64Truncating, clamped to [0, math.MaxUint64]
// instead of erroring.
func (x BFloat) ToUint64Saturating() uint64 {
	if x.mant.Sign() < 0 {
		return 0
	}
	ib := x.integerPart()
	if ib.Cmp(maxUint64Big) > 0 {
		return math.MaxUint64
	}
	return ib.Uint64()
}

// ToUint64Checked is ToUint64Truncating, requiring x to be an integer.
func (x BFloat) ToUint64Checked() (uint64, error) {
	if !x.IsInteger() {
		return 0, &RangeError{Op: "ToUint64Checked", Detail: "value is not an exact integer"}
	}
	return x.ToUint64Truncating()
}

// ToInt32Truncating narrows ToInt64Truncating to int32 bounds.
func (x BFloat) ToInt32Truncating() (int32, error) {
	v, err := x.ToInt64Truncating()
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, &RangeError{Op: "ToInt32Truncating", Detail: "value out of int32 range"}
	}
	return int32(v), nil
}

// ToInt32Saturating is ToInt64Saturating clamped to int32 bounds.
func (x BFloat) ToInt32Saturating() int32 {
	v := x.ToInt64Saturating()
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

// ToInt32Checked requires x to be an integer within int32 bounds.
func (x BFloat) ToInt32Checked() (int32, error) {
	if !x.IsInteger() {
		return 0, &RangeError{Op: "ToInt32Checked", Detail: "value is not an exact integer"}
	}
	return x.ToInt32Truncating()
}

// ToUint32Truncating narrows ToUint64Truncating to uint32 bounds.
func (x BFloat) ToUint32Truncating() (uint32, error) {
	v, err := x.ToUint64Truncating()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, &RangeError{Op: "ToUint32Truncating", Detail: "value out of uint32 range"}
	}
	return uint32(v), nil
}

// ToUint32Saturating is ToUint64Saturating clamped to uint32 bounds.
func (x BFloat) ToUint32Saturating() uint32 {
	v := x.ToUint64Saturating()
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

// ToUint32Checked requires x to be an integer within uint32 bounds.
func (x BFloat) ToUint32Checked() (uint32, error) {
	if !x.IsInteger() {
		return 0, &RangeError{Op: "ToUint32Checked", Detail: "value is not an exact integer"}
	}
	return x.ToUint32Truncating()
}
