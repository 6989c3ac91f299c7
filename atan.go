// Copyright 2021 Goran Devic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nummethods

// Atan returns the arctangent of n, in radians within (-π/2, π/2), or 0 if
// the computation failed to converge.
func Atan(n float64) float64 {
	v, err := defaultContext.Atan(n)
	if err != nil {
		return 0
	}
	return v
}

// Atan returns the arctangent of n, in radians within (-π/2, π/2).
//
// This runs the Tan rotation in reverse (vectoring mode): starting from
// (x, y) = (1, |n|), each table entry applies
//
//	x' = x + y×ratio
//	y' = y - x×ratio
//
// for as long as y - x×ratio stays non-negative, rotating the vector
// toward the x axis one digit at a time, largest entry first. The residual
// angle y/x is then recombined with the counted arctangents from the least
// significant entry up, and the argument's sign is restored.
//
// Atan is defined for every finite n; ErrNoConverge is returned only if a
// loop hits the iteration ceiling on non-finite input.
func (c *Context) Atan(n float64) (float64, error) {
	var (
		_, tt  = tables()
		k      = c.TableLen()
		ceil   = c.MaxIter()
		digits [tableCap]int
		x      = 1.0
		y      = abs(n)
		neg    = n < 0
	)

	for j := 0; j < k; j++ {
		for i := 0; ; i++ {
			if i >= ceil {
				return 0, opError("atan", n, ErrNoConverge)
			}
			xnew := x * tt.ratio[j]
			ynew := y * tt.ratio[j]
			if y-xnew < 0 {
				break
			}
			x += ynew
			y -= xnew
			digits[j]++
		}
	}

	// The un-rotated residual, then the counted digits from the least
	// significant entry up.
	result := y / x
	for j := k - 1; j >= 0; j-- {
		result += float64(digits[j]) * tt.atan[j]
	}
	if neg {
		result = -result
	}
	return result, nil
}
