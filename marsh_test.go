// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import "testing"

func TestGobRoundTrip(t *testing.T) {
	for _, x := range []BFloat{Zero, One, NegativeOne, NewFromInt64(12345, -7, 16)} {
		buf, err := x.GobEncode()
		if err != nil {
			t.Fatalf("GobEncode(%s): %v", x.String(), err)
		}
		var z BFloat
		if err := z.GobDecode(buf); err != nil {
			t.Fatalf("GobDecode: %v", err)
		}
		if !z.EqualsBitwise(x) {
			t.Fatalf("gob round trip: got %s, want %s (bitwise)", z.String(), x.String())
		}
	}
}

func TestGobDecodeRejectsShortBuffer(t *testing.T) {
	var z BFloat
	if err := z.GobDecode([]byte{1, 2}); err == nil {
		t.Fatalf("GobDecode(short buffer): want error, got nil")
	}
}

func TestGobDecodeRejectsBadVersion(t *testing.T) {
	var z BFloat
	if err := z.GobDecode([]byte{99, 0, 0, 0, 0, 0}); err == nil {
		t.Fatalf("GobDecode(bad version): want error, got nil")
	}
}

func TestTextMarshalRoundTrip(t *testing.T) {
	x := NewFromInt64(7, -1, 16) // 3.5
	text, err := x.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var z BFloat
	if err := z.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q): %v", text, err)
	}
	if z.CompareCanonical(x) != 0 {
		t.Fatalf("text round trip: got %s, want %s", z.String(), x.String())
	}
}

func TestUnmarshalTextRejectsGarbage(t *testing.T) {
	var z BFloat
	if err := z.UnmarshalText([]byte("not a number")); err == nil {
		t.Fatalf("UnmarshalText(garbage): want error, got nil")
	}
}

func TestRatRoundTrip(t *testing.T) {
	x := NewFromInt64(22, -3, 16) // 22/8 == 2.75
	r := x.Rat()
	back, err := RatToBFloat(r)
	if err != nil {
		t.Fatalf("RatToBFloat: %v", err)
	}
	if back.CompareCanonical(x) != 0 {
		t.Fatalf("Rat round trip: got %s, want %s", back.String(), x.String())
	}
}

func TestStringZero(t *testing.T) {
	if got := Zero.String(); got != "0" {
		t.Fatalf("Zero.String() = %q, want %q", got, "0")
	}
}
