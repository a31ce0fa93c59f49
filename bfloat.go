// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bfloat implements an arbitrary-precision binary floating-point
// number type.
//
// A BFloat represents a signed real value as a big-integer mantissa
// (including a fixed tail of sub-precision guard bits) paired with a base-2
// scale. Unlike math/big.Float and similar multi-precision types, a BFloat
// is an immutable value: every operator takes its operands by value and
// returns a new BFloat rather than writing into a result receiver, so
// values can be shared freely across goroutines without copying or
// locking.
//
// The zero value of BFloat is ready to use and represents 0 with zero
// accuracy:
//
//	var x bfloat.BFloat // x == Zero
//
// Guard bits: every BFloat keeps a fixed-width tail of its mantissa (G bits,
// GuardBits in this build) that is not considered part of the working
// precision. Arithmetic operators carry bits through the guard region
// instead of rounding at every step, which is what lets
//
//	1.3*2 - 2.6
//
// compare equal to zero even though the mantissa is not bit-for-bit zero.
package bfloat

import (
	"math/big"
)

// GuardBits is the build-time guard width G: the number of low-order bits of
// the mantissa that are carried as sub-precision slack rather than treated
// as working precision. It must be a positive, even integer (evenness is
// required by the integer-square-root driver behind Sqrt); this is asserted
// once, below, rather than checked on every call.
//
// G is fixed for the entire process; there is deliberately no per-BFloat
// override.
const GuardBits = 32

func init() {
	if GuardBits <= 0 || GuardBits%2 != 0 {
		panic(&InvalidArgumentError{Op: "init", Detail: "GuardBits must be a positive even integer"})
	}
}

const debugBFloat = false // flip on while debugging; raw then asserts Z = bitlen(|M|) on every value it builds

// BFloat is an arbitrary-precision signed binary floating-point value:
//
//	sign(mant) * |mant| * 2**(scale - GuardBits)
//
// The zero value is 0 with scale 0. There is no NaN, no infinity, and no
// signed zero; the sign of a BFloat is always the sign of its mantissa.
//
// BFloat is comparable with == only in the degenerate sense that Go structs
// are always comparable; use CompareCanonical, CompareTotalOrderBitwise,
// EqualsBitwise or EqualsZeroExtended instead of == to compare values (see
// compare.go).
type BFloat struct {
	mant big.Int // M: includes the GuardBits-wide guard tail
	scale int32  // S
	size  int    // Z = bitlen(|mant|), or 0 iff mant == 0
}

// Zero is the BFloat value 0 with zero accuracy.
var Zero = BFloat{}

// One is the BFloat value 1, represented with GuardBits guard bits and no
// extra precision above them.
var One = IntWithAccuracy(big.NewInt(1), 0)

// NegativeOne is the BFloat value -1.
var NegativeOne = IntWithAccuracy(big.NewInt(-1), 0)

// ZeroWithAccuracy returns the BFloat 0 whose scale records k bits of
// accuracy to the right of the unit place (Accuracy() == k): a zero BFloat
// still carries a meaningful scale recording its least-bit position.
func ZeroWithAccuracy(k int32) BFloat {
	return BFloat{scale: -k}
}

// OneWithAccuracy returns the BFloat 1 extended with k bits of additional
// zero precision below the guard region (Accuracy() == k).
func OneWithAccuracy(k int32) BFloat {
	return IntWithAccuracy(big.NewInt(1), k)
}

// normalize recomputes z.size from z.mant. It is the one place that
// re-establishes invariant 1 (Z = bitlen(|M|)).
func (z *BFloat) normalize() {
	z.size = z.mant.BitLen()
}

// raw builds a BFloat from a mantissa and scale, copying m into the result
// and recomputing the size from it. Used internally by every operator as the
// single choke point that (re-)establishes invariant 1.
func raw(m *big.Int, scale int32) BFloat {
	z := BFloat{scale: scale}
	z.mant.Set(m)
	z.normalize()
	z.validate()
	return z
}

// FromBits constructs a BFloat directly from a raw triple, without any
// further interpretation: the returned value is mant * 2**(scale -
// GuardBits). The bit-length is recomputed from mant, never trusted from
// the caller.
func FromBits(mant *big.Int, scale int32) BFloat {
	if mant == nil {
		return BFloat{scale: scale}
	}
	return raw(mant, scale)
}

// IntWithAccuracy builds a BFloat whose value is the integer n, extended
// with accuracyBits of additional zero precision below the guard region.
// Accuracy below -(GuardBits+bitlen(n)) collapses to
// zero-with-that-accuracy, since every significant bit of n would then fall
// below the represented window.
func IntWithAccuracy(n *big.Int, accuracyBits int32) BFloat {
	if n.Sign() == 0 {
		return ZeroWithAccuracy(accuracyBits)
	}
	bl := n.BitLen()
	if int64(accuracyBits) < -int64(GuardBits)-int64(bl) {
		return ZeroWithAccuracy(accuracyBits)
	}
	m := new(big.Int).Lsh(n, uint(GuardBits)+uint(accuracyBits))
	return raw(m, -accuracyBits)
}

// NewFromInt64 constructs a BFloat from a signed machine integer, optionally
// scaled by 2**binaryScaler and extended with addedPrecision bits of zero
// precision below the guard region.
func NewFromInt64(n int64, binaryScaler int32, addedPrecision int32) BFloat {
	return IntWithAccuracy(big.NewInt(n), addedPrecision).shiftConst(binaryScaler)
}

// NewFromUint64 is the unsigned counterpart of NewFromInt64.
func NewFromUint64(n uint64, binaryScaler int32, addedPrecision int32) BFloat {
	return IntWithAccuracy(new(big.Int).SetUint64(n), addedPrecision).shiftConst(binaryScaler)
}

// Bits returns the raw (mantissa, scale) pair behind x, the mirror image of
// FromBits: FromBits(x.Bits()) reconstructs x exactly. It is the escape
// hatch for callers that need the raw mantissa and exponent without going
// through a full accessor chain.
func (x BFloat) Bits() (mant *big.Int, scale int32) {
	return new(big.Int).Set(&x.mant), x.scale
}

// Mantissa returns a copy of the BFloat's signed mantissa M, guard bits
// included.
func (x BFloat) Mantissa() *big.Int { return new(big.Int).Set(&x.mant) }

// Scale returns the BFloat's scale S.
func (x BFloat) Scale() int32 { return x.scale }

// Size returns the working-precision bit-length Z - GuardBits (clamped to 0
// when out of precision). For the raw mantissa bit-length including guard
// bits, see SizeWithGuardBits.
func (x BFloat) Size() int {
	if x.size <= GuardBits {
		return 0
	}
	return x.size - GuardBits
}

// SizeWithGuardBits returns Z, the bit-length of |M| (0 when M == 0).
func (x BFloat) SizeWithGuardBits() int { return x.size }

// Precision returns Z - GuardBits, which may be negative when the value has
// no working precision left (all significant bits live in the guard
// region).
func (x BFloat) Precision() int { return x.size - GuardBits }

// Accuracy returns -S, the number of bits to the right of the unit place
// retained in the mantissa.
func (x BFloat) Accuracy() int32 { return -x.scale }

// BinaryExponent returns S + Z - G - 1, the position of the MSB of the
// working precision relative to the unit place. It is only meaningful for
// nonzero values.
func (x BFloat) BinaryExponent() int32 {
	return x.scale + int32(x.size) - GuardBits - 1
}

// Sign returns -1, 0 or +1 depending on the sign of x's mantissa.
func (x BFloat) Sign() int { return x.mant.Sign() }

// IsPositive reports whether x is strictly positive (not sticky-zero).
func (x BFloat) IsPositive() bool { return !x.IsZero() && x.mant.Sign() > 0 }

// IsNegative reports whether x is strictly negative (not sticky-zero).
func (x BFloat) IsNegative() bool { return !x.IsZero() && x.mant.Sign() < 0 }

// IsStrictZero reports whether x's mantissa is exactly zero, ignoring the
// guard-region stickiness that IsZero applies.
func (x BFloat) IsStrictZero() bool { return x.mant.Sign() == 0 }

// IsZero reports whether x is zero in the sticky sense: either the
// mantissa is exactly zero, or the entire mantissa sits within the
// guard region (Z < G and Z+S < G), meaning no working-precision bit is
// set.
func (x BFloat) IsZero() bool {
	if x.mant.Sign() == 0 {
		return true
	}
	return x.size < GuardBits && int32(x.size)+x.scale < GuardBits
}

// IsOutOfPrecision reports whether x has no working-precision bits left
// (Precision() <= 0) while still being nonzero at the raw-mantissa level.
func (x BFloat) IsOutOfPrecision() bool {
	return !x.IsStrictZero() && x.Precision() <= 0
}

// IsInteger reports whether x represents an integer value, with a slop
// window of one guard-ULP: a number whose fractional bits (guard region
// included) are uniformly 0, or uniformly 1 (i.e. it is exactly one unit of
// mantissa bit 0 below the next integer), is treated as an integer. Any
// other fractional bit pattern, including a single set guard bit above an
// integer, is not.
func (x BFloat) IsInteger() bool {
	if x.IsZero() {
		return true
	}
	onesPlace := int(GuardBits) - int(x.scale)
	if onesPlace <= 0 {
		return true // entirely integral; no fractional bits stored at all
	}
	if onesPlace >= x.size {
		return false // entirely fractional
	}
	frac := new(big.Int).Abs(&x.mant)
	mask := new(big.Int).Lsh(big.NewInt(1), uint(onesPlace))
	mask.Sub(mask, big.NewInt(1))
	frac.And(frac, mask)
	if frac.Sign() == 0 {
		return true
	}
	return frac.Cmp(mask) == 0
}

// IsOneBitFollowedByZeroBits reports whether |M| is an exact power of two
// (a single set bit), i.e. x is +/- 2**k for some k.
func (x BFloat) IsOneBitFollowedByZeroBits() bool {
	if x.mant.Sign() == 0 {
		return false
	}
	abs := new(big.Int).Abs(&x.mant)
	return abs.BitLen() > 0 && new(big.Int).And(abs, new(big.Int).Sub(abs, big.NewInt(1))).Sign() == 0
}

// Lowest64Bits returns the low 64 working-precision bits of |M| (guard bits
// stripped), as an unsigned integer.
func (x BFloat) Lowest64Bits() uint64 {
	return lowBits(&x.mant, GuardBits, 64)
}

// Lowest64BitsWithGuardBits returns the low 64 bits of |M|, guard bits
// included.
func (x BFloat) Lowest64BitsWithGuardBits() uint64 {
	return lowBits(&x.mant, 0, 64)
}

// Highest64Bits returns the top 64 bits of |M| (the most significant word of
// the working precision), zero-padded on the right if Z < 64.
func (x BFloat) Highest64Bits() uint64 {
	return highBits(&x.mant, x.size, 64)
}

// Highest128Bits returns the top 128 bits of |M| as two uint64 words, most
// significant first.
func (x BFloat) Highest128Bits() (hi, lo uint64) {
	b := highBitsBig(&x.mant, x.size, 128)
	mask64 := new(big.Int).SetUint64(^uint64(0))
	loPart := new(big.Int).And(b, mask64)
	hiPart := new(big.Int).Rsh(b, 64)
	hiPart.And(hiPart, mask64)
	return hiPart.Uint64(), loPart.Uint64()
}

func lowBits(x *big.Int, skip, bits int) uint64 {
	abs := new(big.Int).Abs(x)
	if skip > 0 {
		abs.Rsh(abs, uint(skip))
	}
	mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	mask.Sub(mask, big.NewInt(1))
	abs.And(abs, mask)
	return abs.Uint64()
}

// highBitsBig returns the top `bits` bits of |x| (whose bit-length is size),
// left-justified within `bits` (zero-padded on the right when size < bits).
func highBitsBig(x *big.Int, size, bits int) *big.Int {
	abs := new(big.Int).Abs(x)
	if size <= bits {
		return abs.Lsh(abs, uint(bits-size))
	}
	return abs.Rsh(abs, uint(size-bits))
}

func highBits(x *big.Int, size, bits int) uint64 {
	return highBitsBig(x, size, bits).Uint64()
}

// validate asserts BFloat's representation invariant. It is a no-op unless
// debugBFloat is true.
func (x BFloat) validate() {
	if !debugBFloat {
		return
	}
	if x.mant.Sign() == 0 {
		if x.size != 0 {
			panic("bfloat: invariant violated: zero mantissa with nonzero size")
		}
		return
	}
	if x.size != x.mant.BitLen() {
		panic("bfloat: invariant violated: size != bitlen(mant)")
	}
}
