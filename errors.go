// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import "fmt"

// DivisionByZeroError is returned by Quo, DivInt, Rem and Mod when the
// divisor is zero.
type DivisionByZeroError struct {
	Op string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("bfloat: %s by zero", e.Op)
}

// DomainError is returned when an operation is given an argument outside
// its mathematical domain (a negative operand to Sqrt, a negative base with
// an even NthRoot index, and so on).
type DomainError struct {
	Op     string
	Detail string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("bfloat: %s: %s", e.Op, e.Detail)
}

// RangeError is returned by checked integer and decimal conversions when
// the value does not fit in the requested range, and when a BFloat is
// constructed from an IEEE-754 NaN or infinity.
type RangeError struct {
	Op     string
	Detail string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bfloat: %s: range error: %s", e.Op, e.Detail)
}

// InvalidArgumentError is returned when a caller passes a structurally
// invalid argument (a negative precision delta to ExtendPrecision, a
// negative bit count to TruncateByAndRound, and so on).
type InvalidArgumentError struct {
	Op     string
	Detail string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("bfloat: %s: invalid argument: %s", e.Op, e.Detail)
}
