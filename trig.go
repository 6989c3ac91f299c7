// Copyright 2021 Goran Devic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nummethods

import "math"

// reduceAngle maps a non-negative angle into (0, 2π]. Callers handle the
// sign separately.
//
// Multiples of 2π are removed magnitude first: the decimal exponent of n is
// read off by repeated division (the BCD machines get it for free from the
// float format) and 2π×10ᵏ is subtracted for decreasing k, so a huge angle
// does not take millions of unit steps. A final unit-step loop subtracts 2π
// until the value goes non-positive and adds one 2π back.
//
// Note the interval is half-open at the low end: a zero angle reduces to
// 2π, not 0.
//
// The boolean result is false if a loop hit the iteration ceiling (the
// angle was not finite).
func (c *Context) reduceAngle(n float64) (float64, bool) {
	_, tt := tables()
	ceil := c.MaxIter()

	exp := 0
	for t, i := n, 0; t >= 10; i++ {
		if i >= ceil {
			return n, false
		}
		t /= 10
		exp++
	}
	for i := 0; exp > 0; i++ {
		if i >= ceil {
			return n, false
		}
		if scaled := tt.twoPi * math.Pow10(exp); n >= scaled {
			n -= scaled
		} else {
			exp--
		}
	}
	for i := 0; n > 0; i++ {
		if i >= ceil {
			return n, false
		}
		n -= tt.twoPi
	}
	return n + tt.twoPi, true
}
