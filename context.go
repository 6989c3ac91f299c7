// Copyright 2021 Goran Devic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nummethods

// Defaults used by the zero Context and the package-level functions.
const (
	// DefaultTableLen is the default number of constant-table entries
	// consumed per evaluation. Seven entries give roughly seven
	// significant decimal digits; the setting is empirical, inherited
	// from the calculator firmware the algorithms emulate.
	DefaultTableLen = 7

	// DefaultTolerance is the default Sqrt convergence tolerance.
	DefaultTolerance = 1e-15

	// DefaultMaxIter is the default per-loop iteration ceiling. It is far
	// above what any finite input needs (the worst case, Ln of a subnormal,
	// doubles its way up across some 1080 steps) and exists to guarantee
	// termination on non-finite input.
	DefaultMaxIter = 10000
)

// A Context carries the evaluation tunables: constant-table length, Sqrt
// convergence tolerance and the iteration ceiling applied to every
// convergence loop.
//
// The zero value is a valid Context using the defaults. A Context must not
// be modified once it is shared; all per-call state is stack-local, so a
// single Context may be used from any number of goroutines.
type Context struct {
	tableLen int
	tol      float64
	maxIter  int
}

// New returns a new Context with the given table length and default
// tolerance and iteration ceiling. If tableLen is 0, DefaultTableLen is
// used.
func New(tableLen int) *Context {
	return new(Context).SetTableLen(tableLen)
}

// TableLen returns the working constant-table length of c.
func (c *Context) TableLen() int {
	if c.tableLen == 0 {
		return DefaultTableLen
	}
	return c.tableLen
}

// SetTableLen sets the number of constant-table entries consumed per
// evaluation and returns c.
//
// If n == 0, it is set to DefaultTableLen. If n exceeds the generated
// table capacity, it is clamped to that capacity.
func (c *Context) SetTableLen(n int) *Context {
	switch {
	case n <= 0:
		n = DefaultTableLen
	case n > tableCap:
		n = tableCap
	}
	c.tableLen = n
	return c
}

// Tolerance returns the Sqrt convergence tolerance of c.
func (c *Context) Tolerance() float64 {
	if c.tol == 0 {
		return DefaultTolerance
	}
	return c.tol
}

// SetTolerance sets the Sqrt convergence tolerance and returns c. If tol
// is 0, it is set to DefaultTolerance.
func (c *Context) SetTolerance(tol float64) *Context {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	c.tol = tol
	return c
}

// MaxIter returns the iteration ceiling of c.
func (c *Context) MaxIter() int {
	if c.maxIter == 0 {
		return DefaultMaxIter
	}
	return c.maxIter
}

// SetMaxIter sets the per-loop iteration ceiling and returns c. If n is 0,
// it is set to DefaultMaxIter.
func (c *Context) SetMaxIter(n int) *Context {
	if n <= 0 {
		n = DefaultMaxIter
	}
	c.maxIter = n
	return c
}

// defaultContext backs the package-level functions.
var defaultContext = new(Context)
