// Copyright 2021 Goran Devic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package nummethods computes elementary transcendental functions — natural
logarithm, exponential, square root, tangent and arctangent — with the
digit-by-digit convergence algorithms used by early BCD pocket calculators.

Unlike a conventional math library, none of the algorithms rely on native
division, multiplication by arbitrary factors, or hardware transcendental
instructions. Each result digit is extracted by repeated subtraction or
comparison against a small precomputed table of constants (ratios near 1 and
their logarithms for Ln/Exp, shrinking angles and their arctangents for
Tan/Atan), and the extracted digits are then recombined from the least
significant contribution up so that floating-point rounding error does not
swamp the small terms. The schemes follow Jacques Laporte's reconstruction of
the HP-35 firmware algorithms:

	http://home.citycable.ch/pierrefleur/Jacques-Laporte/Logarithm_1.htm
	http://home.citycable.ch/pierrefleur/Jacques-Laporte/expx.htm
	http://home.citycable.ch/pierrefleur/Jacques-Laporte/Trigonometry.htm

Square root is the classic Newton-Raphson (Babylonian) refinement, iterated
to a fixed tolerance.

Two call surfaces are provided. The package-level functions

	Ln(x)  Exp(x)  Sqrt(x)  Tan(x)  Atan(x)

keep the historical contract: they return 0 for any input outside the
function's domain (Ln of a non-positive number, Sqrt of a negative number),
beyond its representable range (Exp above 230), or at a degenerate point
(Tan at an odd multiple of π/2). Note that 0 is also a legitimate result for
some inputs; callers that need to tell the two apart should use a Context.

A Context carries the evaluation tunables — constant-table length, Sqrt
convergence tolerance and the iteration ceiling guarding every convergence
loop — and its methods return an explicit error instead of the zero
sentinel:

	c := nummethods.New(7)
	v, err := c.Ln(x)
	if errors.Is(err, nummethods.ErrDomain) { ... }

Table length trades precision for iterations: the default of 7 entries gives
roughly seven significant decimal digits. When an iteration ceiling is
reached (only possible for non-finite or adversarial inputs), the best
estimate so far is returned together with ErrNoConverge.

The constant tables are built once, on first use, and are never mutated
afterwards; all per-call state lives on the stack, so every function is safe
for unlimited concurrent callers.
*/
package nummethods
