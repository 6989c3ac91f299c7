// Copyright 2021 Goran Devic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nummethods

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSqrt(t *testing.T) {
	for _, x := range []float64{54757, 125348, 0.5, 0.00035, 0.02, 1, 2, 3, 1.234e78} {
		got, err := defaultContext.Sqrt(x)
		require.NoError(t, err, "Sqrt(%g)", x)
		require.InEpsilon(t, math.Sqrt(x), got, 1e-13, "Sqrt(%g)", x)

		// Square test: the result must reproduce the argument.
		require.InEpsilon(t, x, got*got, 1e-14, "Sqrt(%g)²", x)
	}

	// 'sqrt(2) to 17 digits' on Wolfram Alpha.
	require.InDelta(t, 1.4142135623730951, Sqrt(2), 1e-14)
}

func TestSqrtSpecial(t *testing.T) {
	v, err := defaultContext.Sqrt(0)
	require.NoError(t, err)
	require.Zero(t, v)

	v, err = defaultContext.Sqrt(-1)
	require.ErrorIs(t, err, ErrDomain)
	require.Zero(t, v)

	require.Zero(t, Sqrt(-1))
	require.Equal(t, 2.0, Sqrt(4))
}

func TestSqrtNoConverge(t *testing.T) {
	// Three iterations cannot reach the tolerance from the n/10 guess.
	c := New(0).SetMaxIter(3)
	v, err := c.Sqrt(54757)
	require.ErrorIs(t, err, ErrNoConverge)
	require.Greater(t, v, 0.0, "best estimate should still be returned")

	_, err = defaultContext.Sqrt(math.Inf(1))
	require.ErrorIs(t, err, ErrNoConverge)
	_, err = defaultContext.Sqrt(math.NaN())
	require.ErrorIs(t, err, ErrNoConverge)
}

func BenchmarkSqrt(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		Sqrt(54757)
	}
}
