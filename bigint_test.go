// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import (
	"math/big"
	"testing"
)

func TestIntegerSqrt(t *testing.T) {
	cases := []struct {
		u, want int64
	}{
		{0, 0},
		{1, 1},
		{4, 2},
		{15, 3},
		{16, 4},
		{99, 9},
	}
	for _, c := range cases {
		got := integerSqrt(big.NewInt(c.u))
		if got.Int64() != c.want {
			t.Errorf("integerSqrt(%d) = %d, want %d", c.u, got.Int64(), c.want)
		}
	}
}

func TestIntegerInverse(t *testing.T) {
	cases := []struct {
		d     int64
		shift uint
		want  int64
	}{
		{1, 8, 256},
		{3, 8, 85},  // floor(256/3)
		{-3, 8, 85}, // magnitude only; callers reapply sign
		{7, 10, 146},
	}
	for _, c := range cases {
		got := integerInverse(big.NewInt(c.d), c.shift)
		if got.Int64() != c.want {
			t.Errorf("integerInverse(%d, %d) = %d, want %d", c.d, c.shift, got.Int64(), c.want)
		}
	}
}
