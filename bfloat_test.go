// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import (
	"math/big"
	"testing"
)

func TestZero(t *testing.T) {
	var z BFloat
	if !z.IsZero() {
		t.Fatalf("zero value: IsZero() = false, want true")
	}
	if !z.IsStrictZero() {
		t.Fatalf("zero value: IsStrictZero() = false, want true")
	}
	if z.Sign() != 0 {
		t.Fatalf("zero value: Sign() = %d, want 0", z.Sign())
	}
}

func TestIntWithAccuracy(t *testing.T) {
	x := IntWithAccuracy(big.NewInt(42), 10)
	if x.Accuracy() != 10 {
		t.Fatalf("Accuracy() = %d, want 10", x.Accuracy())
	}
	got, err := x.ToInt64Checked()
	if err != nil {
		t.Fatalf("ToInt64Checked: %v", err)
	}
	if got != 42 {
		t.Fatalf("ToInt64Checked() = %d, want 42", got)
	}
}

func TestIntWithAccuracyCollapsesToZero(t *testing.T) {
	// accuracy far below -(G+bitlen(n)) must collapse to zero, not to a
	// nonzero mantissa with a huge negative scale.
	x := IntWithAccuracy(big.NewInt(1), -1000)
	if !x.IsZero() {
		t.Fatalf("IntWithAccuracy(1, -1000): IsZero() = false, want true")
	}
}

func TestSign(t *testing.T) {
	cases := []struct {
		x    BFloat
		want int
	}{
		{One, 1},
		{NegativeOne, -1},
		{Zero, 0},
	}
	for _, c := range cases {
		if got := c.x.Sign(); got != c.want {
			t.Errorf("Sign() = %d, want %d", got, c.want)
		}
	}
}

func TestIsOneBitFollowedByZeroBits(t *testing.T) {
	two := NewFromInt64(2, 0, 0)
	three := NewFromInt64(3, 0, 0)
	if !two.IsOneBitFollowedByZeroBits() {
		t.Errorf("2 is a power of two but IsOneBitFollowedByZeroBits() = false")
	}
	if three.IsOneBitFollowedByZeroBits() {
		t.Errorf("3 is not a power of two but IsOneBitFollowedByZeroBits() = true")
	}
}

func TestBitsFromBitsRoundTrip(t *testing.T) {
	x := NewFromInt64(1234, -5, 16)
	mant, scale := x.Bits()
	back := FromBits(mant, scale)
	if !back.EqualsBitwise(x) {
		t.Fatalf("FromBits(x.Bits()) = %s, want %s (bitwise)", back.String(), x.String())
	}
}

func TestIsInteger(t *testing.T) {
	half := One.Shr(1)
	if half.IsInteger() {
		t.Errorf("0.5 reported as integer")
	}
	three := NewFromInt64(3, 0, 0)
	if !three.IsInteger() {
		t.Errorf("3 not reported as integer")
	}
}
