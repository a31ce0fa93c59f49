// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Pi, Ln and Exp. Pi runs the Gauss-Legendre AGM iteration; Ln uses the
// Salamin AGM identity ln(s) ~= pi / (2*agm(1, 4/s)) for large s, shifting
// the argument up by a power of two and correcting with ln(2) afterwards;
// Exp sums the Taylor series with a term-against-epsilon convergence test.
// All three work the argument at an explicit precision and rely on Shl/Shr
// and MulInt (which preserve the operand's own mantissa width) rather than
// general Mul against narrow constants, so a constant like 1/2 or 4 never
// clamps the running precision.
package bfloat

import "math/big"

// oneAt returns 1 carrying prec bits of zero accuracy below the unit place,
// the common starting operand for the fixed-precision iterations below.
func oneAt(prec int) BFloat {
	return IntWithAccuracy(big.NewInt(1), int32(prec))
}

// agm computes the arithmetic-geometric mean of a and b to within 2**-prec.
func agm(a, b BFloat, prec int) (BFloat, error) {
	epsilon := One.Shr(int32(prec))
	for {
		diff := a.Sub(b).Abs()
		if diff.LessOrEqual(epsilon) {
			return a, nil
		}
		suma := a.Add(b).Shr(1)
		prod := a.Mul(b)
		sq, err := prod.Sqrt(prec)
		if err != nil {
			return BFloat{}, err
		}
		a, b = suma, sq
	}
}

var (
	piCache     BFloat
	piCachePrec int
)

// Pi returns the value of pi, accurate to prec bits, via the Gauss-Legendre
// iteration: pi = (a+b)**2 / (4t) at the fixed point of
// a' = (a+b)/2, b' = sqrt(a*b), with t tracking the accumulated error term.
//
// The highest-precision value computed so far is cached in a package-level
// variable with no locking; callers that need Pi from multiple goroutines
// should prime the cache (call Pi once at the desired precision) before
// starting them.
func Pi(prec int) (BFloat, error) {
	if prec <= piCachePrec && piCachePrec > 0 {
		return piCache.SetPrecisionWithRound(prec), nil
	}

	a := oneAt(prec)
	sqrt2, err := NewFromInt64(2, 0, int32(prec)).Sqrt(prec)
	if err != nil {
		return BFloat{}, err
	}
	b, err := oneAt(prec).Quo(sqrt2)
	if err != nil {
		return BFloat{}, err
	}
	t := oneAt(prec).Shr(2)
	pShift := int32(0) // p = 2**pShift

	epsilon := One.Shr(int32(prec))
	for {
		diffAB := a.Sub(b).Abs()
		if diffAB.LessOrEqual(epsilon) {
			break
		}
		suma := a.Add(b).Shr(1)
		prod := a.Mul(b)
		sq, err := prod.Sqrt(prec)
		if err != nil {
			return BFloat{}, err
		}
		prevA := a
		a, b = suma, sq
		delta := a.Sub(prevA)
		t = t.Sub(delta.Mul(delta).Shl(pShift))
		pShift++
	}

	sum := a.Add(b)
	numerator := sum.Mul(sum)
	denom := t.Shl(2)
	result, err := numerator.Quo(denom)
	if err != nil {
		return BFloat{}, err
	}
	piCache, piCachePrec = result, prec
	return result, nil
}

// lnRaw returns ln(s) via pi / (2*agm(1, 4/s)), valid once s is large
// enough (around 2**(prec/2)) for the identity's O(1/s**2) error term to
// fall below the requested precision.
func lnRaw(s BFloat, prec int) (BFloat, error) {
	fourOverS, err := NewFromInt64(4, 0, int32(prec)).Quo(s)
	if err != nil {
		return BFloat{}, err
	}
	pi, err := Pi(prec)
	if err != nil {
		return BFloat{}, err
	}
	m, err := agm(oneAt(prec), fourOverS, prec)
	if err != nil {
		return BFloat{}, err
	}
	return pi.Quo(m.Shl(1))
}

var (
	ln2Cache     BFloat
	ln2CachePrec int
)

// ln2 returns ln(2) to prec bits. 2**(2**k) is an exact power of two, so
// lnRaw applied to it needs no correction term at all; a final Shr(k)
// recovers ln(2) = ln(2**(2**k)) / 2**k.
func ln2(prec int) (BFloat, error) {
	if prec <= ln2CachePrec && ln2CachePrec > 0 {
		return ln2Cache.SetPrecisionWithRound(prec), nil
	}
	k := 1
	for (1 << uint(k)) <= prec/2+2 {
		k++
	}
	s := oneAt(prec).Shl(int32(int64(1) << uint(k)))
	raw, err := lnRaw(s, prec)
	if err != nil {
		return BFloat{}, err
	}
	result := raw.Shr(int32(k))
	ln2Cache, ln2CachePrec = result, prec
	return result, nil
}

// Ln returns the natural logarithm of x, accurate to roughly x's own
// working precision. x must be strictly positive.
func (x BFloat) Ln() (BFloat, error) {
	if x.mant.Sign() <= 0 || x.IsZero() {
		return BFloat{}, &DomainError{Op: "Ln", Detail: "argument must be positive"}
	}
	prec := x.Size()
	if prec < 16 {
		prec = 16
	}
	if x.CompareCanonical(One) == 0 {
		return ZeroWithAccuracy(int32(prec)), nil
	}

	work := x
	if pad := prec + GuardBits - x.SizeWithGuardBits(); pad > 0 {
		work = padBits(x, uint(pad))
	}

	// Shift x up until it is large enough for lnRaw, then subtract the
	// m*ln(2) the shift introduced.
	m := int32(prec/2+4) - x.BinaryExponent()
	if m < 0 {
		m = 0
	}
	s := work.Shl(m)

	raw, err := lnRaw(s, prec)
	if err != nil {
		return BFloat{}, err
	}
	if m == 0 {
		return raw, nil
	}
	l2, err := ln2(prec)
	if err != nil {
		return BFloat{}, err
	}
	return raw.Sub(l2.MulInt(int64(m))), nil
}

// Exp returns e**x, accurate to roughly x's own working precision, by
// summing the Taylor series term-by-term (term' = term * x / i) until a
// term falls below 2**-prec.
func (x BFloat) Exp() (BFloat, error) {
	if x.IsZero() {
		return OneWithAccuracy(x.Accuracy()), nil
	}

	prec := x.Size()
	if prec < 16 {
		prec = 16
	}
	epsilon := One.Shr(int32(prec))

	work := x
	if pad := prec + GuardBits - x.SizeWithGuardBits(); pad > 0 {
		work = padBits(x, uint(pad))
	}

	sum := oneAt(prec).Add(work)
	term := work
	for i := int64(2); ; i++ {
		t, err := term.Mul(work).DivInt(i)
		if err != nil {
			return BFloat{}, err
		}
		term = t
		sum = sum.Add(term)
		if term.Abs().LessOrEqual(epsilon) {
			break
		}
		if i > int64(prec)*4+64 {
			// Convergence backstop for pathological inputs; the series
			// reaches epsilon long before this for any x that fits the
			// precision it was asked for.
			break
		}
	}
	return sum, nil
}
