// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import (
	"math/big"
	"testing"
)

func TestRoundingRightShiftTiesAwayFromZero(t *testing.T) {
	// 3 >> 1 with a tie at the half bit: (3+1)>>1 == 2, away from zero.
	got := roundingRightShift(big.NewInt(3), 1)
	if got.Int64() != 2 {
		t.Fatalf("roundingRightShift(3, 1) = %d, want 2", got.Int64())
	}
	got = roundingRightShift(big.NewInt(-3), 1)
	if got.Int64() != -2 {
		t.Fatalf("roundingRightShift(-3, 1) = %d, want -2", got.Int64())
	}
}

func TestRoundingRightShiftZeroShift(t *testing.T) {
	got := roundingRightShift(big.NewInt(5), 0)
	if got.Int64() != 5 {
		t.Fatalf("roundingRightShift(5, 0) = %d, want 5", got.Int64())
	}
}

func TestWouldRoundUp(t *testing.T) {
	// 0b10 >> 1 rounds to 1 either way (bit 0 is 0): no round-up.
	if wouldRoundUp(big.NewInt(0b10), 1) {
		t.Fatalf("wouldRoundUp(0b10, 1) = true, want false")
	}
	// 0b11 >> 1: bit 0 is 1, ties away from zero, rounds up.
	if !wouldRoundUp(big.NewInt(0b11), 1) {
		t.Fatalf("wouldRoundUp(0b11, 1) = false, want true")
	}
	if wouldRoundUp(big.NewInt(5), 0) {
		t.Fatalf("wouldRoundUp(x, 0) must be false: zero shift is the identity")
	}
}

func TestRoundingRightShiftSizeCarriesPastMSB(t *testing.T) {
	// 0b111 (size 3) >> 1 rounds half-up to 0b100 (size 3): no carry past
	// the pre-shift size of 3.
	v, size := roundingRightShiftSize(big.NewInt(0b111), 1, 3)
	if v.Int64() != 0b100 || size != 3 {
		t.Fatalf("roundingRightShiftSize(0b111, 1, 3) = (%d, %d), want (4, 3)", v.Int64(), size)
	}
	// 0b1111 (size 4) >> 2 rounds half-up to 0b100 = 4, which needs only 3
	// bits post-shift (pre-shift size 4, shift 2 -> expected width 2, but
	// the round carries one bit past that).
	v, size = roundingRightShiftSize(big.NewInt(0b1111), 2, 4)
	if v.Int64() != 0b100 || size != 3 {
		t.Fatalf("roundingRightShiftSize(0b1111, 2, 4) = (%d, %d), want (4, 3)", v.Int64(), size)
	}
}

func TestTruncatingRightShiftTowardZero(t *testing.T) {
	got := truncatingRightShift(big.NewInt(-3), 1)
	if got.Int64() != -1 {
		t.Fatalf("truncatingRightShift(-3, 1) = %d, want -1 (toward zero, not floor)", got.Int64())
	}
	got = truncatingRightShift(big.NewInt(3), 1)
	if got.Int64() != 1 {
		t.Fatalf("truncatingRightShift(3, 1) = %d, want 1", got.Int64())
	}
}
