// Copyright 2021 Goran Devic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nummethods

import "math"

// Sqrt returns the square root of n computed by Newton-Raphson refinement,
// or 0 if n < 0 or the iteration failed to converge.
func Sqrt(n float64) float64 {
	v, err := defaultContext.Sqrt(n)
	if err != nil {
		return 0
	}
	return v
}

// Sqrt returns the square root of n.
//
// The Babylonian update
//
//	xₖ₊₁ = (xₖ + n/xₖ) / 2
//
// is iterated from the initial guess n/10 (a plain decimal shift right in
// the BCD machines this emulates) until successive iterates agree within
// c's tolerance. The update is a contraction for every positive n, so the
// iteration ceiling only matters for non-finite input.
//
// Sqrt returns ErrDomain if n < 0 and ErrNoConverge, together with the last
// iterate, if the ceiling is reached.
func (c *Context) Sqrt(n float64) (float64, error) {
	if n < 0 {
		return 0, opError("sqrt", n, ErrDomain)
	}
	if n == 0 {
		return 0, nil
	}

	tol := c.Tolerance()
	result := n / 10
	for i := 0; i < c.MaxIter(); i++ {
		last := result
		result = (last + n/last) / 2
		if math.Abs(last-result) <= tol {
			return result, nil
		}
	}
	return result, opError("sqrt", n, ErrNoConverge)
}
