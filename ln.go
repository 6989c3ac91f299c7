// Copyright 2021 Goran Devic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nummethods

// Ln returns the natural logarithm of n computed digit by digit, or 0 if
// n <= 0 or the computation failed to converge.
func Ln(n float64) float64 {
	v, err := defaultContext.Ln(n)
	if err != nil {
		return 0
	}
	return v
}

// Ln returns the natural logarithm of n.
//
// The argument is first split as n = a × 10ᵏ with a in [1, 10), each
// decimal order contributing ln 10 (on a BCD mantissa this step is a plain
// read-off of the exponent). The mantissa digits are then extracted one
// table entry at a time: a is multiplied by the entry's ratio for as long
// as the product stays below 10, the count of multiplications being that
// entry's digit. The digits are recombined against the precomputed
// logarithms from the least significant entry up, seeded with the linear
// remainder (10 − a)/10.
//
// Ln returns ErrDomain if n <= 0, and ErrNoConverge, together with the
// partial recombination, if an extraction loop hits the iteration ceiling
// (possible only for non-finite n).
func (c *Context) Ln(n float64) (float64, error) {
	if n <= 0 {
		return 0, opError("ln", n, ErrDomain)
	}

	var (
		lt, _  = tables()
		m      = c.TableLen()
		ceil   = c.MaxIter()
		digits [tableCap]int
		a      = n
		kln10  float64
		capped bool
	)

	for i := 0; a >= 10; i++ {
		if i >= ceil {
			capped = true
			break
		}
		a /= 10
		kln10 += lt.ln10
	}

	for j := 0; j < m && !capped; j++ {
		for i := 0; ; i++ {
			if i >= ceil {
				capped = true
				break
			}
			p := a * lt.ratio[j]
			if p >= 10 {
				break
			}
			a = p
			digits[j]++
		}
	}

	// From the least significant entry to the most significant one, so the
	// small terms are not absorbed by the large ones.
	result := (10 - a) / 10
	for j := m - 1; j >= 0; j-- {
		result += float64(digits[j]) * lt.log[j]
	}
	result = lt.ln10 - result + kln10

	if capped {
		return result, opError("ln", n, ErrNoConverge)
	}
	return result, nil
}
