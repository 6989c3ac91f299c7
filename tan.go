// Copyright 2021 Goran Devic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nummethods

// Tan returns the tangent of n (in radians) computed by CORDIC-style
// rotation, or 0 if n is at a vertical asymptote or the computation failed
// to converge.
func Tan(n float64) float64 {
	v, err := defaultContext.Tan(n)
	if err != nil {
		return 0
	}
	return v
}

// Tan returns the tangent of the angle n, in radians.
//
// The absolute angle is reduced into (0, 2π], then decomposed against the
// arctangent table largest entry first: each entry's angle is subtracted
// while the remainder stays non-negative. The loop always overshoots once,
// so the entry is added back and its digit count decremented, leaving the
// true remainder.
//
// The digits then drive a pseudo-rotation of the vector (x, y) = (1,
// remainder), smallest entry first:
//
//	x' = x - y×ratio
//	y' = y + x×ratio
//
// a shift-and-add rotation that needs no multiplication by arbitrary
// factors. The result is y/x with the argument's sign restored.
//
// Tan returns ErrDegenerate when the rotation drives x to exactly 0 (the
// vertical asymptote at odd multiples of π/2) and ErrNoConverge if a loop
// hits the iteration ceiling.
func (c *Context) Tan(n float64) (float64, error) {
	var (
		_, tt  = tables()
		k      = c.TableLen()
		ceil   = c.MaxIter()
		digits [tableCap]int
		neg    = n < 0
	)

	y, ok := c.reduceAngle(abs(n))
	if !ok {
		return 0, opError("tan", n, ErrNoConverge)
	}

	for j := 0; j < k; j++ {
		for i := 0; y >= 0; i++ {
			if i >= ceil {
				return 0, opError("tan", n, ErrNoConverge)
			}
			y -= tt.atan[j]
			digits[j]++
		}
		// Compensate the final over-subtraction.
		y += tt.atan[j]
		digits[j]--
	}

	x := 1.0
	for j := k - 1; j >= 0; j-- {
		for i := 0; i < digits[j]; i++ {
			xnew := x * tt.ratio[j]
			ynew := y * tt.ratio[j]
			x -= ynew
			y += xnew
		}
	}
	if x == 0 {
		return 0, opError("tan", n, ErrDegenerate)
	}

	result := y / x
	if neg {
		result = -result
	}
	return result, nil
}
