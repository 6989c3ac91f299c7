// Copyright 2021 Goran Devic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nummethods

import (
	"errors"
	"fmt"
)

// Error classes reported by Context methods. The package-level functions
// collapse all of them to the zero sentinel.
var (
	// ErrDomain reports an argument outside the function's domain, such as
	// the logarithm of a non-positive number.
	ErrDomain = errors.New("argument outside domain")

	// ErrRange reports an argument whose result exceeds the representable
	// decomposition range of the digit tables (Exp above 230).
	ErrRange = errors.New("argument outside representable range")

	// ErrDegenerate reports a degenerate evaluation point, such as Tan at
	// an odd multiple of π/2.
	ErrDegenerate = errors.New("degenerate evaluation point")

	// ErrNoConverge reports that a convergence loop hit the iteration
	// ceiling. The accompanying value is the best estimate so far and
	// should be treated as reduced precision.
	ErrNoConverge = errors.New("iteration ceiling reached")
)

// An OpError wraps one of the error classes above with the failing
// operation and its argument.
type OpError struct {
	Op  string // "ln", "exp", "sqrt", "tan" or "atan"
	Arg float64
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("nummethods: %s(%g): %v", e.Op, e.Arg, e.Err)
}

// Unwrap returns the error class, so that errors.Is(err, ErrDomain) and
// friends work on wrapped errors.
func (e *OpError) Unwrap() error { return e.Err }

func opError(op string, arg float64, class error) error {
	return &OpError{Op: op, Arg: arg, Err: class}
}
