// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Big-integer helpers every other component funnels through. Bit-length
// and Karatsuba/Burnikel-Ziegler multiplication/division are not
// reimplemented here: math/big.Int already provides both and selects the
// right algorithm past its own internal size thresholds, so the operators
// in this package call Mul/Quo directly and let it choose.
package bfloat

import "math/big"

// integerSqrt returns floor(sqrt(u)) for u >= 0. math/big.Int.Sqrt runs a
// Newton's-method integer square root with the asymptotics the Sqrt driver
// needs, so no hand-rolled root finder is kept alongside it.
func integerSqrt(u *big.Int) *big.Int {
	return new(big.Int).Sqrt(u)
}

// integerInverse returns floor(2**shift / |d|) for a nonzero d: the shifted
// integer reciprocal behind Inverse. The caller picks shift large enough
// that the quotient carries the precision it needs, and reapplies the sign
// itself.
func integerInverse(d *big.Int, shift uint) *big.Int {
	num := new(big.Int).Lsh(big.NewInt(1), shift)
	return num.Quo(num, new(big.Int).Abs(d))
}
