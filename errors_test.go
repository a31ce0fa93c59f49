// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import "testing"

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&DivisionByZeroError{Op: "Quo"}, "bfloat: Quo by zero"},
		{&DomainError{Op: "Sqrt", Detail: "argument must be non-negative"}, "bfloat: Sqrt: argument must be non-negative"},
		{&RangeError{Op: "ToInt64Truncating", Detail: "value out of int64 range"}, "bfloat: ToInt64Truncating: range error: value out of int64 range"},
		{&InvalidArgumentError{Op: "ExtendPrecision", Detail: "delta must be non-negative"}, "bfloat: ExtendPrecision: invalid argument: delta must be non-negative"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("%T.Error() = %q, want %q", c.err, got, c.want)
		}
	}
}
