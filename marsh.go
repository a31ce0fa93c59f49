// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Encoding and decoding of BFloats. The gob framing is a version byte, a
// flags byte, then the varying-length payload. Text marshaling routes
// through math/big.Rat — BFloat has no digit-string scanner of its own,
// and big.Rat already parses and prints decimal text exactly.
package bfloat

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

const bfloatGobVersion byte = 1

// GobEncode implements gob.GobEncoder. The scale and the full mantissa
// (guard bits included) are marshaled; the receiving side reconstructs size
// via normalize.
func (x BFloat) GobEncode() ([]byte, error) {
	mb := x.mant.Bytes() // magnitude only; sign carried in the flags byte
	buf := make([]byte, 6+len(mb))
	buf[0] = bfloatGobVersion
	if x.mant.Sign() < 0 {
		buf[1] = 1
	}
	binary.BigEndian.PutUint32(buf[2:], uint32(x.scale))
	copy(buf[6:], mb)
	return buf, nil
}

// GobDecode implements gob.GobDecoder.
func (z *BFloat) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// empty buffer is the zero value
		*z = BFloat{}
		return nil
	}
	if len(buf) < 6 {
		return fmt.Errorf("bfloat: GobDecode: short buffer")
	}
	if buf[0] != bfloatGobVersion {
		return fmt.Errorf("bfloat: GobDecode: encoding version %d not supported", buf[0])
	}
	neg := buf[1]&1 != 0
	scale := int32(binary.BigEndian.Uint32(buf[2:]))
	m := new(big.Int).SetBytes(buf[6:])
	if neg {
		m.Neg(m)
	}
	*z = raw(m, scale)
	return nil
}

// Rat returns the exact rational value of x.
func (x BFloat) Rat() *big.Rat {
	r := new(big.Rat).SetInt(&x.mant)
	shift := int64(x.scale) - GuardBits
	if shift >= 0 {
		r.Mul(r, new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(shift))))
	} else {
		denom := new(big.Int).Lsh(big.NewInt(1), uint(-shift))
		r.Quo(r, new(big.Rat).SetInt(denom))
	}
	return r
}

// RatToBFloat converts an exact rational into a BFloat, with working
// precision taken from the numerator and denominator's own bit lengths (via
// Quo).
func RatToBFloat(r *big.Rat) (BFloat, error) {
	num := IntWithAccuracy(r.Num(), 0)
	den := IntWithAccuracy(r.Denom(), 0)
	return num.Quo(den)
}

// decimalDigits estimates how many decimal digits are needed to display x's
// working precision without losing information (log10(2) ~= 0.30103).
func (x BFloat) decimalDigits() int {
	n := x.Size()
	if n < 1 {
		n = 1
	}
	return int(float64(n)*0.30103) + 2
}

// String returns a decimal rendering of x, accurate to its own working
// precision.
func (x BFloat) String() string {
	if x.mant.Sign() == 0 {
		return "0"
	}
	return x.Rat().FloatString(x.decimalDigits())
}

// MarshalText implements encoding.TextMarshaler.
func (x BFloat) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing decimal or
// fractional text via math/big.Rat.
func (z *BFloat) UnmarshalText(text []byte) error {
	r, ok := new(big.Rat).SetString(string(text))
	if !ok {
		return fmt.Errorf("bfloat: cannot unmarshal %q into a bfloat.BFloat", text)
	}
	v, err := RatToBFloat(r)
	if err != nil {
		return err
	}
	*z = v
	return nil
}
