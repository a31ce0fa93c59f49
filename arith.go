// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import "math/big"

// smallAlignBound and keepExtraBits are the tuning constants behind Mul's
// pre-shift decision: operands whose sizes differ by less than
// smallAlignBound bits are multiplied straight; otherwise the larger
// operand is shaved down to keepExtraBits beyond the smaller one before the
// multiply, since those extra bits would be rounded away regardless. These
// are performance knobs, not semantic ones.
const (
	smallAlignBound = 32
	keepExtraBits   = 16
)

// Add returns x + y.
func (x BFloat) Add(y BFloat) BFloat {
	if x.mant.Sign() == 0 {
		return y
	}
	if y.mant.Sign() == 0 {
		return x
	}

	d := int64(x.scale) - int64(y.scale)
	if d > 0 && d > int64(y.size) {
		return x
	}
	if d < 0 && -d > int64(x.size) {
		return y
	}

	var ma, mb *big.Int
	var scale int32
	switch {
	case d > 0:
		ma = &x.mant
		mb = roundingRightShift(&y.mant, uint(d))
		scale = x.scale
	case d < 0:
		ma = roundingRightShift(&x.mant, uint(-d))
		mb = &y.mant
		scale = y.scale
	default:
		ma, mb = &x.mant, &y.mant
		scale = x.scale
	}

	sum := new(big.Int).Add(ma, mb)
	return raw(sum, scale)
}

// Sub returns x - y.
func (x BFloat) Sub(y BFloat) BFloat {
	return x.Add(y.Neg())
}

// Neg returns -x. (S, Z) are preserved; only the mantissa's sign flips.
func (x BFloat) Neg() BFloat {
	z := BFloat{scale: x.scale, size: x.size}
	z.mant.Neg(&x.mant)
	return z
}

// Abs returns |x|.
func (x BFloat) Abs() BFloat {
	if x.mant.Sign() >= 0 {
		return x
	}
	return x.Neg()
}

// Mul returns x * y, with the output mantissa sized to the smaller
// operand's total bit-length.
func (x BFloat) Mul(y BFloat) BFloat {
	if x.mant.Sign() == 0 || y.mant.Sign() == 0 {
		return BFloat{scale: x.scale + y.scale - GuardBits}
	}

	target := x.size
	if y.size < target {
		target = y.size
	}

	ma, mb := &x.mant, &y.mant
	var preShift int32
	if diff := absInt(x.size - y.size); diff >= smallAlignBound {
		if x.size > y.size {
			preShift = int32(diff - keepExtraBits)
			if preShift < 0 {
				preShift = 0
			}
			ma = roundingRightShift(&x.mant, uint(preShift))
		} else {
			preShift = int32(diff - keepExtraBits)
			if preShift < 0 {
				preShift = 0
			}
			mb = roundingRightShift(&y.mant, uint(preShift))
		}
	}

	product := new(big.Int).Mul(ma, mb)
	zr := product.BitLen()
	shrink := zr - target
	if shrink < 0 {
		shrink = 0
	}
	mr := roundingRightShift(product, uint(shrink))
	sr := x.scale + y.scale + int32(shrink) + preShift - GuardBits
	return raw(mr, sr)
}

// PowerOf2 returns x * x, sized with squared-size accounting.
func (x BFloat) PowerOf2() BFloat {
	return x.Mul(x)
}

// PowerOf2Bounded is like PowerOf2 but pre-shrinks x so that the squared
// result never exceeds maxSize bits, avoiding quadratic blow-up when the
// caller only needs maxSize bits of the answer.
func (x BFloat) PowerOf2Bounded(maxSize int) BFloat {
	if x.size*2 <= maxSize || x.size == 0 {
		return x.PowerOf2()
	}
	needed := (maxSize + 1) / 2
	shrink := x.size - needed
	if shrink <= 0 {
		return x.PowerOf2()
	}
	m := roundingRightShift(&x.mant, uint(shrink))
	shrunk := raw(m, x.scale+int32(shrink))
	return shrunk.PowerOf2()
}

// Quo returns x / y. It returns
// DivisionByZeroError when y is strictly zero, and
// zero-with-accuracy-of-the-divisor when x is strictly zero.
func (x BFloat) Quo(y BFloat) (BFloat, error) {
	if y.mant.Sign() == 0 {
		return BFloat{}, &DivisionByZeroError{Op: "Quo"}
	}
	if x.mant.Sign() == 0 {
		return ZeroWithAccuracy(y.Accuracy()), nil
	}

	precN, precD := x.Precision(), y.Precision()
	outSize := precN
	if precD < outSize {
		outSize = precD
	}

	// The quotient's leading bit lands one place lower when the MSB-aligned
	// numerator magnitude is below the divisor's.
	absN := new(big.Int).Abs(&x.mant)
	absD := new(big.Int).Abs(&y.mant)
	alignedN, alignedD := absN, absD
	switch {
	case x.size < y.size:
		alignedN = new(big.Int).Lsh(absN, uint(y.size-x.size))
	case y.size < x.size:
		alignedD = new(big.Int).Lsh(absD, uint(x.size-y.size))
	}
	if alignedN.CmpAbs(alignedD) < 0 {
		outSize--
	}

	wantedSize := y.size + outSize + GuardBits
	leftShift := wantedSize - x.size

	var shiftedN *big.Int
	if leftShift >= 0 {
		shiftedN = new(big.Int).Lsh(absN, uint(leftShift))
	} else {
		shiftedN = new(big.Int).Rsh(absN, uint(-leftShift))
	}

	quotient := new(big.Int).Quo(shiftedN, absD)
	sr := x.scale - y.scale - int32(leftShift) + GuardBits

	if x.mant.Sign()*y.mant.Sign() < 0 {
		quotient.Neg(quotient)
	}
	return raw(quotient, sr), nil
}

// alignForRemainder brings x and y's mantissas to a common scale (the
// smaller of the two scales) so that a plain big.Int remainder/addition on
// the aligned magnitudes is meaningful.
func alignForRemainder(x, y BFloat) (ma, mb *big.Int, common int32) {
	common = x.scale
	if y.scale < common {
		common = y.scale
	}
	ma = shiftToScaleMant(x, common)
	mb = shiftToScaleMant(y, common)
	return
}

func shiftToScaleMant(x BFloat, target int32) *big.Int {
	if x.scale == target {
		return new(big.Int).Set(&x.mant)
	}
	return new(big.Int).Lsh(&x.mant, uint(x.scale-target))
}

// Rem returns the remainder of x / y, with the sign of x (the dividend),
// and scale min(x.Scale(), y.Scale()).
func (x BFloat) Rem(y BFloat) (BFloat, error) {
	if y.mant.Sign() == 0 {
		return BFloat{}, &DivisionByZeroError{Op: "Rem"}
	}
	ma, mb, common := alignForRemainder(x, y)
	r := new(big.Int).Rem(ma, mb)
	return raw(r, common), nil
}

// Mod returns x modulo y: like Rem, but the result takes the sign
// convention of Euclidean modulo, adding the aligned divisor's magnitude
// back in whenever the remainder is negative, so the result is never
// negative.
func (x BFloat) Mod(y BFloat) (BFloat, error) {
	if y.mant.Sign() == 0 {
		return BFloat{}, &DivisionByZeroError{Op: "Mod"}
	}
	ma, mb, common := alignForRemainder(x, y)
	r := new(big.Int).Rem(ma, mb)
	if r.Sign() < 0 {
		r.Add(r, new(big.Int).Abs(mb))
	}
	return raw(r, common), nil
}

// Inc returns x + 1, locating the "ones place" at bit G - S of the
// mantissa. If that bit position would fall below the mantissa's stored
// bits (the representation is coarser than a single unit), Inc is a no-op.
func (x BFloat) Inc() BFloat {
	return x.addUnit(1)
}

// Dec returns x - 1, under the same rule as Inc.
func (x BFloat) Dec() BFloat {
	return x.addUnit(-1)
}

func (x BFloat) addUnit(sign int) BFloat {
	onesPlace := int(GuardBits) - int(x.scale)
	if onesPlace < 0 {
		return x
	}
	unit := new(big.Int).Lsh(big.NewInt(1), uint(onesPlace))
	if sign < 0 {
		unit.Neg(unit)
	}
	sum := new(big.Int).Add(&x.mant, unit)
	return raw(sum, x.scale)
}

// Not returns the bitwise complement of x's magnitude within [0, Z): every
// bit of |M| below the current size is flipped, S is preserved, and Z
// necessarily shrinks by at least one bit (the original top bit, always 1,
// is always cleared by the flip).
func (x BFloat) Not() BFloat {
	if x.size == 0 {
		return x
	}
	mag := new(big.Int).Abs(&x.mant)
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(x.size)), big.NewInt(1))
	flipped := new(big.Int).Xor(mag, mask)
	if x.mant.Sign() < 0 {
		flipped.Neg(flipped)
	}
	return raw(flipped, x.scale)
}

// Shl returns x with its scale increased by k bits; the mantissa and size
// are untouched (shifts by a constant are precision-preserving metadata
// operations).
func (x BFloat) Shl(k int32) BFloat {
	z := BFloat{scale: x.scale + k, size: x.size}
	z.mant.Set(&x.mant)
	return z
}

// Shr returns x with its scale decreased by k bits.
func (x BFloat) Shr(k int32) BFloat {
	return x.Shl(-k)
}

func (x BFloat) shiftConst(k int32) BFloat { return x.Shl(k) }

// MulInt returns x * n for a machine integer n, renormalized to x's total
// size so that multiplying by an exact scalar does not manufacture extra
// working precision.
func (x BFloat) MulInt(n int64) BFloat {
	if n == 0 || x.mant.Sign() == 0 {
		return BFloat{scale: x.scale}
	}
	mag := new(big.Int).Abs(&x.mant)
	mag.Mul(mag, big.NewInt(absInt64(n)))
	zr := mag.BitLen()
	shrink := zr - x.size
	if shrink < 0 {
		shrink = 0
	}
	mr := roundingRightShift(mag, uint(shrink))
	sr := x.scale + int32(shrink)
	if (x.mant.Sign() < 0) != (n < 0) {
		mr.Neg(mr)
	}
	return raw(mr, sr)
}

// DivInt returns x / n for a machine integer n. Powers of two are handled
// as a bare scale shift; otherwise the dividend's magnitude is scaled up by
// GuardBits+2 bits, divided, rounded half-up against the remainder, and
// renormalized back down to x's own working size, with the sign applied
// last.
func (x BFloat) DivInt(n int64) (BFloat, error) {
	if n == 0 {
		return BFloat{}, &DivisionByZeroError{Op: "DivInt"}
	}
	if x.mant.Sign() == 0 {
		return x, nil
	}
	if k, ok := log2PowerOfTwo(n); ok {
		r := x.Shr(int32(k))
		if n < 0 {
			r = r.Neg()
		}
		return r, nil
	}

	const extra = GuardBits + 2
	absN := big.NewInt(absInt64(n))
	mag := new(big.Int).Abs(&x.mant)
	mag.Lsh(mag, extra)

	q, r := new(big.Int).QuoRem(mag, absN, new(big.Int))
	twiceR := new(big.Int).Lsh(r, 1)
	if twiceR.CmpAbs(absN) >= 0 {
		q.Add(q, big.NewInt(1))
	}

	sr := x.scale - extra
	zr := q.BitLen()
	if shrink := zr - x.size; shrink > 0 {
		q = roundingRightShift(q, uint(shrink))
		sr += int32(shrink)
	}
	if (x.mant.Sign() < 0) != (n < 0) {
		q.Neg(q)
	}
	return raw(q, sr), nil
}

func log2PowerOfTwo(n int64) (uint, bool) {
	if n == 0 {
		return 0, false
	}
	u := n
	if u < 0 {
		u = -u
	}
	if u&(u-1) != 0 {
		return 0, false
	}
	k := uint(0)
	for u > 1 {
		u >>= 1
		k++
	}
	return k, true
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func absInt64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
