// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Pow, NthRoot, Log2 and Inverse: the part of the math surface that is
// driven by integer exponents and Newton iterations over the core
// operators, rather than by its own big-integer primitive the way Sqrt is.
package bfloat

import "math"

// powFloatMaxPrec is the widest input working precision for which Pow takes
// the float64 fast path: a float64 holds 53 mantissa bits, so an operand
// with at most that many working bits round-trips through it without loss.
const powFloatMaxPrec = 53

// powFloatMaxExp bounds |n| on the float64 fast path so that the
// exponent-stripped base (in [1, 2)) raised to n cannot leave float64's
// exponent range.
const powFloatMaxExp = 512

// Pow returns x**n for an integer exponent n. Pow(0, 0) is a DomainError;
// Pow(0, n) for n < 0 is a DivisionByZeroError.
//
// Exponents 0, +/-1 and +/-2 resolve directly. For small operands (working
// precision that fits a float64 significand, |n| bounded so the intermediate cannot leave
// float64 range) the computation is delegated to math.Pow on the
// exponent-stripped mantissa, which guarantees float64-equivalent rounding;
// everything else runs binary exponentiation by repeated squaring,
// multiplying the base in for every set bit of |n| and inverting at the end
// when n < 0.
func (x BFloat) Pow(n int) (BFloat, error) {
	switch n {
	case 0:
		if x.mant.Sign() == 0 {
			return BFloat{}, &DomainError{Op: "Pow", Detail: "0**0 is undefined"}
		}
		return OneWithAccuracy(x.Accuracy()), nil
	case 1:
		return x, nil
	case -1:
		return x.Inverse()
	case 2:
		return x.PowerOf2(), nil
	case -2:
		return x.PowerOf2().Inverse()
	}

	if x.mant.Sign() == 0 {
		if n < 0 {
			return BFloat{}, &DivisionByZeroError{Op: "Pow"}
		}
		return ZeroWithAccuracy(x.Accuracy()), nil
	}

	e := n
	neg := e < 0
	if neg {
		e = -e
	}

	if x.Size() <= powFloatMaxPrec && e <= powFloatMaxExp {
		return x.powFloat(n)
	}

	// Repeated squaring, consuming |e| LSB first. result starts as the
	// base's power at the first set bit rather than as 1, so the running
	// product's mantissa width is always governed by the base itself.
	base := x
	var result BFloat
	started := false
	for e > 0 {
		if e&1 == 1 {
			if !started {
				result = base
				started = true
			} else {
				result = result.Mul(base)
			}
		}
		e >>= 1
		if e > 0 {
			base = base.PowerOf2()
		}
	}

	if neg {
		return result.Inverse()
	}
	return result, nil
}

// powFloat computes x**n by stripping x's binary exponent, raising the
// remaining mantissa-in-[1,2) through math.Pow, and reapplying the exponent
// n-fold. Precondition: x is nonzero, x.Size() <= powFloatMaxPrec and
// |n| <= powFloatMaxExp.
func (x BFloat) powFloat(n int) (BFloat, error) {
	expo := x.BinaryExponent()
	m := x.Shl(-expo) // |m| in [1, 2)
	r := math.Pow(m.ToFloat64(), float64(n))
	v, err := FromFloat64(r)
	if err != nil {
		return BFloat{}, err
	}
	return v.Shl(expo * int32(n)), nil
}

// NthRoot returns the n-th root of x (n > 0) via Newton's method. n == 2
// defers to the integer-square-root driver in Sqrt. An even n with a
// negative x is a DomainError.
func (x BFloat) NthRoot(n int) (BFloat, error) {
	if n <= 0 {
		return BFloat{}, &InvalidArgumentError{Op: "NthRoot", Detail: "n must be positive"}
	}
	if n == 1 {
		return x, nil
	}
	if n == 2 {
		prec := x.Size()
		if prec < 1 {
			prec = 1
		}
		return x.Sqrt(prec)
	}
	if x.mant.Sign() < 0 && n%2 == 0 {
		return BFloat{}, &DomainError{Op: "NthRoot", Detail: "even root of a negative number"}
	}
	if x.IsZero() {
		return ZeroWithAccuracy(x.Accuracy()), nil
	}

	neg := x.mant.Sign() < 0
	base := x.Abs()

	prec := base.Size()
	if prec < 8 {
		prec = 8
	}

	guessExp := base.BinaryExponent() / int32(n)
	guess := OneWithAccuracy(int32(prec)).Shl(guessExp)

	// Newton's method for x**(1/n) converges quadratically from a
	// power-of-two guess within a factor of two of the root; the iteration
	// count is a generous linear overshoot of the doubling schedule.
	iterations := bitLenInt(prec) + 8

	nBF := NewFromInt64(int64(n), 0, int32(prec))
	n1 := int64(n - 1)

	r := guess
	for i := 0; i < iterations; i++ {
		rPow, err := r.Pow(n - 1)
		if err != nil {
			return BFloat{}, err
		}
		q, err := base.Quo(rPow)
		if err != nil {
			return BFloat{}, err
		}
		num := r.MulInt(n1).Add(q)
		r, err = num.Quo(nBF)
		if err != nil {
			return BFloat{}, err
		}
	}
	if neg {
		r = r.Neg()
	}
	return r, nil
}

func bitLenInt(n int) int {
	k := 0
	for n > 0 {
		n >>= 1
		k++
	}
	return k
}

// CubeRoot is NthRoot(3).
func (x BFloat) CubeRoot() (BFloat, error) { return x.NthRoot(3) }

// Log2Int returns floor(log2(|x|)), the position of x's most significant
// working-precision bit relative to the unit place. x must be nonzero.
func (x BFloat) Log2Int() (int32, error) {
	if x.IsZero() {
		return 0, &DomainError{Op: "Log2Int", Detail: "argument must be nonzero"}
	}
	return x.BinaryExponent(), nil
}

// Log2 returns log2(x) as a float64: the binary exponent plus math.Log2 of
// the exponent-stripped mantissa in [1, 2). x must be strictly positive.
// Callers that need more than float64 precision should use Ln and divide by
// ln(2).
func (x BFloat) Log2() (float64, error) {
	if x.mant.Sign() <= 0 || x.IsZero() {
		return 0, &DomainError{Op: "Log2", Detail: "argument must be positive"}
	}
	expo := x.BinaryExponent()
	m := x.Shl(-expo) // in [1, 2)
	return float64(expo) + math.Log2(m.ToFloat64()), nil
}

// Inverse returns 1/x, to x's own working precision, via the shifted
// integer reciprocal: q = floor(2**k / |M|) with k sized so q carries the
// working precision plus the guard region, then 2**k and the operand's own
// scale fold back into the result scale.
func (x BFloat) Inverse() (BFloat, error) {
	if x.mant.Sign() == 0 {
		return BFloat{}, &DivisionByZeroError{Op: "Inverse"}
	}
	prec := x.Size()
	if prec < 1 {
		prec = 1
	}
	k := uint(x.size + prec + GuardBits - 1)
	q := integerInverse(&x.mant, k)
	sr := 2*GuardBits - x.scale - int32(k)
	if x.mant.Sign() < 0 {
		q.Neg(q)
	}
	return raw(q, sr), nil
}
