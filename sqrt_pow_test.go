// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import (
	"math"
	"testing"
)

func TestSqrtPerfectSquare(t *testing.T) {
	nine := NewFromInt64(9, 0, 32)
	root, err := nine.Sqrt(nine.Size())
	if err != nil {
		t.Fatalf("Sqrt(9): %v", err)
	}
	if got, _ := root.ToInt64Checked(); got != 3 {
		t.Fatalf("Sqrt(9) = %s, want 3", root.String())
	}
}

func TestSqrtOfZero(t *testing.T) {
	root, err := ZeroWithAccuracy(16).Sqrt(16)
	if err != nil {
		t.Fatalf("Sqrt(0): %v", err)
	}
	if !root.IsZero() {
		t.Fatalf("Sqrt(0) = %s, want 0", root.String())
	}
}

func TestSqrtNegativeIsDomainError(t *testing.T) {
	negOne := NewFromInt64(-1, 0, 0)
	if _, err := negOne.Sqrt(32); err == nil {
		t.Fatalf("Sqrt(-1): want error, got nil")
	}
}

func TestSqrtRoundTrip(t *testing.T) {
	two := NewFromInt64(2, 0, 64)
	root, err := two.Sqrt(two.Size())
	if err != nil {
		t.Fatalf("Sqrt(2): %v", err)
	}
	squared := root.PowerOf2()
	// sqrt(2)**2 should land within a handful of working-precision ULPs of 2.
	if squared.CompareUlp(two, 4, false) != 0 {
		t.Fatalf("sqrt(2)**2 = %s, want approximately 2", squared.String())
	}
}

// Sqrt(2, 200) squared must land back on 2, within a generous ULP
// tolerance at the requested precision.
func TestSqrtOfTwoAt200BitPrecision(t *testing.T) {
	two := NewFromInt64(2, 0, 0)
	root, err := two.Sqrt(200)
	if err != nil {
		t.Fatalf("Sqrt(2, 200): %v", err)
	}
	if root.Precision() < 190 {
		t.Fatalf("Sqrt(2, 200) precision = %d, want close to 200", root.Precision())
	}
	squared := root.PowerOf2()
	if squared.CompareUlp(two, 4, false) != 0 {
		t.Fatalf("Sqrt(2, 200)**2 = %s, want approximately 2", squared.String())
	}
}

func TestPowIntegerExponent(t *testing.T) {
	two := NewFromInt64(2, 0, 0)
	cubed, err := two.Pow(3)
	if err != nil {
		t.Fatalf("Pow(2,3): %v", err)
	}
	if got, _ := cubed.ToInt64Checked(); got != 8 {
		t.Fatalf("2**3 = %s, want 8", cubed.String())
	}
}

func TestPowNegativeExponent(t *testing.T) {
	two := NewFromInt64(2, 0, 32)
	inv, err := two.Pow(-1)
	if err != nil {
		t.Fatalf("Pow(2,-1): %v", err)
	}
	want := One.Shr(1)
	if inv.CompareCanonical(want) != 0 {
		t.Fatalf("2**-1 = %s, want 0.5", inv.String())
	}
}

func TestPowZeroZeroIsDomainError(t *testing.T) {
	if _, err := Zero.Pow(0); err == nil {
		t.Fatalf("Pow(0,0): want error, got nil")
	}
}

func TestPowZeroNegativeIsDivisionByZero(t *testing.T) {
	if _, err := Zero.Pow(-1); err == nil {
		t.Fatalf("Pow(0,-1): want error, got nil")
	}
}

func TestCubeRoot(t *testing.T) {
	twentySeven := NewFromInt64(27, 0, 48)
	root, err := twentySeven.CubeRoot()
	if err != nil {
		t.Fatalf("CubeRoot(27): %v", err)
	}
	if root.CompareUlp(NewFromInt64(3, 0, 0), 8, false) != 0 {
		t.Fatalf("CubeRoot(27) = %s, want approximately 3", root.String())
	}
}

func TestNthRootEvenNegativeIsDomainError(t *testing.T) {
	negFour := NewFromInt64(-4, 0, 0)
	if _, err := negFour.NthRoot(2); err == nil {
		t.Fatalf("NthRoot(-4, 2): want error, got nil")
	}
}

func TestLog2Int(t *testing.T) {
	eight := NewFromInt64(8, 0, 0)
	got, err := eight.Log2Int()
	if err != nil {
		t.Fatalf("Log2Int(8): %v", err)
	}
	if got != 3 {
		t.Fatalf("Log2Int(8) = %d, want 3", got)
	}
}

func TestLog2IntZeroIsDomainError(t *testing.T) {
	if _, err := Zero.Log2Int(); err == nil {
		t.Fatalf("Log2Int(0): want error, got nil")
	}
}

func TestLog2OfPowerOfTwo(t *testing.T) {
	sixteen := NewFromInt64(16, 0, 32)
	got, err := sixteen.Log2()
	if err != nil {
		t.Fatalf("Log2(16): %v", err)
	}
	if got != 4 {
		t.Fatalf("Log2(16) = %v, want 4", got)
	}
}

func TestLog2NonPositiveIsDomainError(t *testing.T) {
	if _, err := Zero.Log2(); err == nil {
		t.Fatalf("Log2(0): want error, got nil")
	}
	if _, err := NewFromInt64(-2, 0, 0).Log2(); err == nil {
		t.Fatalf("Log2(-2): want error, got nil")
	}
}

func TestInverse(t *testing.T) {
	four := NewFromInt64(4, 0, 32)
	inv, err := four.Inverse()
	if err != nil {
		t.Fatalf("Inverse(4): %v", err)
	}
	want := One.Shr(2)
	if inv.CompareCanonical(want) != 0 {
		t.Fatalf("Inverse(4) = %s, want 0.25", inv.String())
	}
}

// For small operands Pow delegates to math.Pow after stripping the binary
// exponent, so the result must track the float64 computation to within a
// working-precision ULP.
func TestPowFloatFallback(t *testing.T) {
	base, err := NewFromFloat64(1.5, 0, 0)
	if err != nil {
		t.Fatalf("NewFromFloat64: %v", err)
	}
	got, err := base.Pow(40)
	if err != nil {
		t.Fatalf("Pow(1.5, 40): %v", err)
	}
	want, err := FromFloat64(math.Pow(1.5, 40))
	if err != nil {
		t.Fatalf("FromFloat64: %v", err)
	}
	if got.CompareUlp(want, 1, false) != 0 {
		t.Fatalf("Pow(1.5, 40) = %s, want %s", got.String(), want.String())
	}
}

func TestPowLargeOperandUsesSquaring(t *testing.T) {
	base := NewFromInt64(3, 0, 64) // 66 working bits, past the float path
	got, err := base.Pow(5)
	if err != nil {
		t.Fatalf("Pow(3, 5): %v", err)
	}
	if got.CompareCanonical(NewFromInt64(243, 0, 0)) != 0 {
		t.Fatalf("3**5 = %s, want 243", got.String())
	}
}

func TestPowOne(t *testing.T) {
	x := NewFromInt64(7, -1, 16)
	got, err := x.Pow(1)
	if err != nil {
		t.Fatalf("Pow(x, 1): %v", err)
	}
	if !got.EqualsBitwise(x) {
		t.Fatalf("Pow(x, 1) must return x unchanged")
	}
}
