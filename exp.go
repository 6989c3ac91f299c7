// Copyright 2021 Goran Devic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nummethods

import "math"

// expMaxArg bounds the Exp argument. ln(9e99) ≈ 230, the largest value the
// ln10-entry digit count can decompose; it is a restriction of the digit
// scheme, not of the function.
const expMaxArg = 230

// Exp returns e raised to the power n computed digit by digit, or 0 if
// n > 230 or the computation failed to converge.
func Exp(n float64) float64 {
	v, err := defaultContext.Exp(n)
	if err != nil {
		return 0
	}
	return v
}

// Exp returns e raised to the power n.
//
// This is the algebraic inverse of the Ln table walk: where Ln multiplies
// the mantissa by table ratios, Exp subtracts the precomputed logarithms
// from the (absolute) argument, counting how many times each entry fits
// while the remainder stays non-negative. The table is extended by a
// leading ln 10 entry whose digit count carries the decimal exponent of
// the result.
//
// The mantissa is then rebuilt from the most significant entry down —
// Exp synthesizes a product where Ln synthesizes a sum — by applying
// result = result×ratio + 1 once per digit and shifting right one decimal
// place per entry, starting from the left-aligned remainder. The ln 10
// digits are applied as trailing powers of ten, and a negative argument
// inverts the result (e⁻ˣ = 1/eˣ).
//
// Exp returns ErrRange if n > 230, and ErrNoConverge, together with the
// partial reconstruction, if an extraction loop hits the iteration
// ceiling.
func (c *Context) Exp(n float64) (float64, error) {
	if n > expMaxArg {
		return 0, opError("exp", n, ErrRange)
	}

	var (
		lt, _  = tables()
		k      = c.TableLen()
		ceil   = c.MaxIter()
		digits [tableCap + 1]int
		a      = abs(n)
		neg    = n < 0
		capped bool
	)

	for j := 0; j <= k && !capped; j++ {
		l := lt.ln10
		if j > 0 {
			l = lt.log[j-1]
		}
		for i := 0; ; i++ {
			if i >= ceil {
				capped = true
				break
			}
			s := a - l
			if s < 0 {
				break
			}
			a = s
			digits[j]++
		}
	}

	// Left-align the remainder, then rebuild the mantissa most significant
	// digit first.
	result := a * math.Pow10(k-1)
	for j := k; j > 0; j-- {
		for i := 0; i < digits[j]; i++ {
			result = result*lt.ratio[j-1] + 1
		}
		result /= 10
	}
	result = (result + 0.1) * 10
	for i := 0; i < digits[0]; i++ {
		result *= 10
	}
	if neg {
		result = 1 / result
	}

	if capped {
		return result, opError("exp", n, ErrNoConverge)
	}
	return result, nil
}
